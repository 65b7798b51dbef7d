package tenant

import (
	"context"
	"sync"
	"time"
)

// Cache stores tenant records between directory lookups.
type Cache interface {
	Get(ctx context.Context, id string) (*Tenant, bool)
	Set(ctx context.Context, id string, t *Tenant, ttl time.Duration)
	Delete(ctx context.Context, id string)
	Close() error
}

type cacheItem struct {
	tenant    *Tenant
	expiresAt time.Time
}

// memoryCache is a TTL map with periodic cleanup. It is the default cache
// for single-instance deployments; multi-instance deployments should use
// the Redis cache so deactivations propagate.
type memoryCache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryCache creates an in-memory cache with a background sweeper.
func NewMemoryCache() Cache {
	c := &memoryCache{
		items: make(map[string]cacheItem),
		stop:  make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *memoryCache) Get(ctx context.Context, id string) (*Tenant, bool) {
	c.mu.RLock()
	item, ok := c.items[id]
	c.mu.RUnlock()
	if !ok || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.tenant, true
}

func (c *memoryCache) Set(ctx context.Context, id string, t *Tenant, ttl time.Duration) {
	c.mu.Lock()
	c.items[id] = cacheItem{tenant: t, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *memoryCache) Delete(ctx context.Context, id string) {
	c.mu.Lock()
	delete(c.items, id)
	c.mu.Unlock()
}

func (c *memoryCache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

func (c *memoryCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for id, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, id)
				}
			}
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

// noopCache disables caching; every directory lookup hits the provider.
type noopCache struct{}

// NewNoopCache creates a cache that stores nothing.
func NewNoopCache() Cache { return noopCache{} }

func (noopCache) Get(context.Context, string) (*Tenant, bool)         { return nil, false }
func (noopCache) Set(context.Context, string, *Tenant, time.Duration) {}
func (noopCache) Delete(context.Context, string)                      {}
func (noopCache) Close() error                                        { return nil }
