package adapter

import (
	"context"
	"time"
)

// BookingCounts holds booking totals for a period.
type BookingCounts struct {
	Completed int64
	Total     int64
}

// BookingRepository defines the read-only interface over the booking source.
type BookingRepository interface {
	// CountByRange returns completed and total booking counts with
	// scheduled_at between start and end inclusive.
	CountByRange(ctx context.Context, start, end time.Time) (BookingCounts, error)
}
