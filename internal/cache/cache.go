package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the capacity read models.
const (
	KeyPoolStatus = "capacity:status"
	KeyTimeline   = "capacity:timeline"
	KeyDetails    = "capacity:details"
)

// Cache is a best-effort Redis cache for computed capacity views. A nil
// *Cache is valid and disables caching; every failure falls through to a
// recompute, never to an error for the caller.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis. An empty URL returns (nil, nil): caching off.
func New(redisURL string, ttl time.Duration) (*Cache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// GetJSON loads a cached view into dest, reporting whether it was present.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("cache: stale payload for %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON stores a computed view with the configured TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache: marshal %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}

// Invalidate drops the given keys after a mutating operation.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache: invalidate: %v", err)
	}
}

// InvalidateCapacityViews drops every capacity read model at once.
func (c *Cache) InvalidateCapacityViews(ctx context.Context) {
	c.Invalidate(ctx, KeyPoolStatus, KeyTimeline, KeyDetails)
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
