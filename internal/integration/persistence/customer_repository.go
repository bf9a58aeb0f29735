package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salon-pos/backend/internal/application/adapter"
)

// customerRepository implements the adapter.CustomerRepository interface.
// Customer insight queries are derived from the sales table.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// DistinctCustomers returns the ids of customers with at least one sale in
// the inclusive calendar-day range.
func (r *customerRepository) DistinctCustomers(ctx context.Context, start, end time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	from, to := dayRange(start, end)

	err := r.db.WithContext(ctx).
		Table("sales").
		Distinct("customer_id").
		Where("sold_at >= ? AND sold_at < ?", from, to).
		Pluck("customer_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct customers: %w", err)
	}

	return ids, nil
}

// FirstSaleDates returns the earliest sale timestamp for each given customer.
func (r *customerRepository) FirstSaleDates(ctx context.Context, customerIDs []uuid.UUID) (map[uuid.UUID]time.Time, error) {
	if len(customerIDs) == 0 {
		return map[uuid.UUID]time.Time{}, nil
	}

	var rows []struct {
		CustomerID uuid.UUID `gorm:"column:customer_id"`
		FirstSale  time.Time `gorm:"column:first_sale"`
	}

	err := r.db.WithContext(ctx).
		Table("sales").
		Select("customer_id, MIN(sold_at) as first_sale").
		Where("customer_id IN ?", customerIDs).
		Group("customer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve first sale dates: %w", err)
	}

	dates := make(map[uuid.UUID]time.Time, len(rows))
	for _, row := range rows {
		dates[row.CustomerID] = row.FirstSale
	}

	return dates, nil
}
