package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	"github.com/salon-pos/backend/internal/integration/persistence/model"
)

// salesRepository implements the adapter.SalesRepository interface.
// All queries are read-only; sales are written by the POS screens.
type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a new sales repository instance.
func NewSalesRepository(db *gorm.DB) adapter.SalesRepository {
	return &salesRepository{
		db: db,
	}
}

// SumCompletedSales returns the total amount of completed sales with sold_at
// inside the inclusive calendar-day range.
func (r *salesRepository) SumCompletedSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	from, to := dayRange(start, end)

	err := r.db.WithContext(ctx).
		Table("sales").
		Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ?", string(entity.SaleStatusCompleted)).
		Where("sold_at >= ? AND sold_at < ?", from, to).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum completed sales: %w", err)
	}

	return result.Total, nil
}

// SumPayments returns advance/balance-due totals over the range. Refunded
// sales are excluded.
func (r *salesRepository) SumPayments(ctx context.Context, start, end time.Time) (adapter.PaymentTotals, error) {
	var result struct {
		Advance decimal.Decimal `gorm:"column:advance"`
		Due     decimal.Decimal `gorm:"column:due"`
	}

	from, to := dayRange(start, end)

	err := r.db.WithContext(ctx).
		Table("sales").
		Select("COALESCE(SUM(advance_paid), 0) as advance, COALESCE(SUM(balance_due), 0) as due").
		Where("status <> ?", string(entity.SaleStatusRefunded)).
		Where("sold_at >= ? AND sold_at < ?", from, to).
		Scan(&result).Error
	if err != nil {
		return adapter.PaymentTotals{}, fmt.Errorf("failed to sum payments: %w", err)
	}

	return adapter.PaymentTotals{
		AdvanceReceived: result.Advance,
		BalanceDue:      result.Due,
	}, nil
}

// ListTransactions returns all sales in the range, ordered by sold_at.
func (r *salesRepository) ListTransactions(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	var models []model.SaleModel

	from, to := dayRange(start, end)

	err := r.db.WithContext(ctx).
		Where("sold_at >= ? AND sold_at < ?", from, to).
		Order("sold_at").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	sales := make([]*entity.Sale, len(models))
	for i := range models {
		sales[i] = models[i].ToEntity()
	}

	return sales, nil
}

// dayRange converts an inclusive calendar-day range into half-open timestamp
// bounds usable against the sold_at column.
func dayRange(start, end time.Time) (time.Time, time.Time) {
	from := entity.NormalizeDay(start)
	to := entity.NormalizeDay(end).AddDate(0, 0, 1)
	return from, to
}
