// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// DailyBalanceRepository defines the interface for daily balance persistence.
// The balance table is keyed by calendar date; rows are only written through
// Upsert so a recompute for a date replaces the previous snapshot.
type DailyBalanceRepository interface {
	// FindByDate retrieves the balance row for the given calendar day.
	// Returns (nil, nil) when no row exists.
	FindByDate(ctx context.Context, date time.Time) (*entity.DailyBalance, error)

	// FindLatestBefore retrieves the most recent balance row strictly before
	// the given calendar day. Returns (nil, nil) when there is no prior row.
	FindLatestBefore(ctx context.Context, date time.Time) (*entity.DailyBalance, error)

	// Upsert inserts the balance row for its date, replacing any existing row
	// for the same date.
	Upsert(ctx context.Context, balance *entity.DailyBalance) error
}
