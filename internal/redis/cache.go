package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/gil10101/sokin-sub000/internal/config"
)

// DefaultTTL matches the legacy service's five-minute cache window.
const DefaultTTL = 5 * time.Minute

// ViewCache is a generic JSON-backed Redis cache for read model projections.
// Bind it to a specific view type T; each instance holds a Redis client and an
// optional TTL (pass 0 for keys that should not expire).
type ViewCache[T any] struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewViewCache creates a ViewCache backed by the provided Redis client.
func NewViewCache[T any](client *goredis.Client, ttl time.Duration) *ViewCache[T] {
	return &ViewCache[T]{client: client, ttl: ttl}
}

// Get retrieves and unmarshals a value from Redis.
// Returns (nil, false) on any miss or deserialisation error.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, false
	}
	return &v, true
}

// Set marshals value and stores it in Redis under key.
// Errors are logged rather than returned — a cache write miss is non-fatal.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		config.Logger().WithField("key", key).Warnf("ViewCache: marshal error: %v", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		config.Logger().WithField("key", key).Warnf("ViewCache: write error: %v", err)
	}
}

// Delete removes a key from Redis.
func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		config.Logger().WithField("key", key).Warnf("ViewCache: delete error: %v", err)
	}
}

// InvalidatePattern removes every key matching a glob-style pattern,
// e.g. "assets:usr-abc123*". Mutating writes call this so the next read
// falls through to Postgres. Errors are logged, never returned: stale
// cache entries expire via TTL anyway.
func (c *Client) InvalidatePattern(ctx context.Context, pattern string) {
	iter := c.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		config.Logger().WithField("pattern", pattern).Warnf("cache: scan error: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.Del(ctx, keys...).Err(); err != nil {
		config.Logger().WithField("pattern", pattern).Warnf("cache: delete error: %v", err)
	}
}
