// Package cache wraps an optional Redis client for caching trip
// search responses. A nil client disables caching entirely.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Client: client, TTL: ttl}
}

// Get returns the cached payload for key, or false when caching is
// disabled, the key is absent, or Redis errors (treated as a miss).
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	data, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a payload best-effort; errors are ignored since the cache
// is an optimization, not a source of truth.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Set(ctx, key, payload, c.TTL)
}
