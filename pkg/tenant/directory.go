package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultCacheTTL bounds how stale a cached tenant record may be; a
// deactivated tenant keeps serving for at most this long.
const DefaultCacheTTL = 5 * time.Minute

// Directory is a read-through cached view over a tenant Provider.
type Directory struct {
	provider Provider
	cache    Cache
	ttl      time.Duration
}

// NewDirectory creates a directory over provider. A nil cache disables
// caching; a non-positive ttl falls back to DefaultCacheTTL.
func NewDirectory(provider Provider, cache Cache, ttl time.Duration) *Directory {
	if cache == nil {
		cache = NewNoopCache()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Directory{provider: provider, cache: cache, ttl: ttl}
}

// Get returns the tenant record for id, consulting the cache first.
func (d *Directory) Get(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	key := id.String()
	if t, ok := d.cache.Get(ctx, key); ok {
		return t, nil
	}

	t, err := d.provider.TenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.cache.Set(ctx, key, t, d.ttl)
	return t, nil
}

// RequireActive returns the tenant record for id, failing with
// ErrInactiveTenant when the tenant has been deactivated.
func (d *Directory) RequireActive(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	t, err := d.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, ErrInactiveTenant
	}
	return t, nil
}

// Evict removes a tenant from the cache, forcing the next lookup to hit
// the provider. Called after tenant mutations.
func (d *Directory) Evict(ctx context.Context, id uuid.UUID) {
	d.cache.Delete(ctx, id.String())
}

// Close releases cache resources.
func (d *Directory) Close() error {
	return d.cache.Close()
}
