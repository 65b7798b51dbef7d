package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache stores tenant records in Redis so cache state is shared
// across service instances. Lookup failures degrade to a cache miss; the
// provider remains the source of truth.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis-backed cache. The client's lifecycle is
// owned by the caller; Close here is a no-op.
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client, prefix: "tenant:"}
}

func (c *redisCache) Get(ctx context.Context, id string) (*Tenant, bool) {
	raw, err := c.client.Get(ctx, c.prefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var t Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, false
	}
	return &t, true
}

func (c *redisCache) Set(ctx context.Context, id string, t *Tenant, ttl time.Duration) {
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.prefix+id, raw, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, id string) {
	_ = c.client.Del(ctx, c.prefix+id).Err()
}

func (c *redisCache) Close() error {
	return nil
}
