package adapter

import "context"

// ReportCache defines the interface for caching rendered report payloads.
// Implementations must treat unavailability as a miss, never as a failure
// that should abort report building.
type ReportCache interface {
	// Get returns the cached payload for the key, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under the key with the cache's configured TTL.
	Set(ctx context.Context, key string, payload []byte) error
}
