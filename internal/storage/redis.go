package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache holds precomputed JSON payloads under TTL keys. Misses and
// redis errors both degrade to recomputation at the call site.
type ResponseCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{Client: client, TTL: ttl}
}

func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c *ResponseCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
