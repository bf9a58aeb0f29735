// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salon-pos/backend/internal/application/adapter"
)

// redisReportCache implements the adapter.ReportCache interface backed by
// Redis. A missing key is a miss, not an error.
type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache creates a new Redis-backed report cache instance.
func NewRedisReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload for the key, or nil on a miss.
func (c *redisReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read report cache: %w", err)
	}
	return payload, nil
}

// Set stores the payload under the key with the configured TTL.
func (c *redisReportCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}
