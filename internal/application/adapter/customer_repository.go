package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CustomerRepository defines the read-only interface over the customer source.
type CustomerRepository interface {
	// DistinctCustomers returns the ids of customers with at least one sale
	// in the range.
	DistinctCustomers(ctx context.Context, start, end time.Time) ([]uuid.UUID, error)

	// FirstSaleDates returns, for each given customer, the timestamp of their
	// earliest sale. Customers with no sales are absent from the map.
	FirstSaleDates(ctx context.Context, customerIDs []uuid.UUID) (map[uuid.UUID]time.Time, error)
}
