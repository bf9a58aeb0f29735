package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
)

// bookingRepository implements the adapter.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository instance.
func NewBookingRepository(db *gorm.DB) adapter.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// CountByRange returns completed and total booking counts with scheduled_at
// inside the inclusive calendar-day range.
func (r *bookingRepository) CountByRange(ctx context.Context, start, end time.Time) (adapter.BookingCounts, error) {
	var result struct {
		Completed int64 `gorm:"column:completed"`
		Total     int64 `gorm:"column:total"`
	}

	from, to := dayRange(start, end)

	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as completed, COUNT(*) as total",
			string(entity.BookingStatusCompleted),
		).
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to).
		Scan(&result).Error
	if err != nil {
		return adapter.BookingCounts{}, fmt.Errorf("failed to count bookings: %w", err)
	}

	return adapter.BookingCounts{
		Completed: result.Completed,
		Total:     result.Total,
	}, nil
}
