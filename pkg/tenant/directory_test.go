package tenant_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplifthq/uplift/pkg/tenant"
)

type countingProvider struct {
	tenants map[uuid.UUID]*tenant.Tenant
	calls   int
}

func (p *countingProvider) TenantByID(_ context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	p.calls++
	t, ok := p.tenants[id]
	if !ok {
		return nil, tenant.ErrTenantNotFound
	}
	cp := *t
	return &cp, nil
}

func TestDirectoryGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.New()

	t.Run("second lookup served from cache", func(t *testing.T) {
		t.Parallel()

		provider := &countingProvider{tenants: map[uuid.UUID]*tenant.Tenant{
			id: {ID: id, Subdomain: "acme", Name: "Acme", Active: true},
		}}
		dir := tenant.NewDirectory(provider, tenant.NewMemoryCache(), time.Minute)
		defer dir.Close()

		first, err := dir.Get(ctx, id)
		require.NoError(t, err)
		second, err := dir.Get(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("misses are not cached", func(t *testing.T) {
		t.Parallel()

		provider := &countingProvider{tenants: map[uuid.UUID]*tenant.Tenant{}}
		dir := tenant.NewDirectory(provider, tenant.NewMemoryCache(), time.Minute)
		defer dir.Close()

		_, err := dir.Get(ctx, id)
		require.ErrorIs(t, err, tenant.ErrTenantNotFound)
		_, err = dir.Get(ctx, id)
		require.ErrorIs(t, err, tenant.ErrTenantNotFound)
		assert.Equal(t, 2, provider.calls)
	})

	t.Run("eviction forces a provider hit", func(t *testing.T) {
		t.Parallel()

		provider := &countingProvider{tenants: map[uuid.UUID]*tenant.Tenant{
			id: {ID: id, Subdomain: "acme", Name: "Acme", Active: true},
		}}
		dir := tenant.NewDirectory(provider, tenant.NewMemoryCache(), time.Minute)
		defer dir.Close()

		_, err := dir.Get(ctx, id)
		require.NoError(t, err)
		dir.Evict(ctx, id)
		_, err = dir.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, provider.calls)
	})

	t.Run("nil cache falls back to noop", func(t *testing.T) {
		t.Parallel()

		provider := &countingProvider{tenants: map[uuid.UUID]*tenant.Tenant{
			id: {ID: id, Subdomain: "acme", Name: "Acme", Active: true},
		}}
		dir := tenant.NewDirectory(provider, nil, 0)

		_, err := dir.Get(ctx, id)
		require.NoError(t, err)
		_, err = dir.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, provider.calls, "noop cache never serves a hit")
	})
}

func TestDirectoryRequireActive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	activeID := uuid.New()
	inactiveID := uuid.New()

	provider := &countingProvider{tenants: map[uuid.UUID]*tenant.Tenant{
		activeID:   {ID: activeID, Subdomain: "up", Name: "Up", Active: true},
		inactiveID: {ID: inactiveID, Subdomain: "gone", Name: "Gone", Active: false},
	}}
	dir := tenant.NewDirectory(provider, nil, 0)

	got, err := dir.RequireActive(ctx, activeID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	_, err = dir.RequireActive(ctx, inactiveID)
	assert.ErrorIs(t, err, tenant.ErrInactiveTenant)

	_, err = dir.RequireActive(ctx, uuid.New())
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
}

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := tenant.NewMemoryCache()
	defer cache.Close()

	record := &tenant.Tenant{ID: uuid.New(), Subdomain: "acme", Active: true}

	t.Run("stores within ttl", func(t *testing.T) {
		cache.Set(ctx, "a", record, time.Minute)
		got, ok := cache.Get(ctx, "a")
		require.True(t, ok)
		assert.Equal(t, record, got)
	})

	t.Run("expired entries read as misses", func(t *testing.T) {
		cache.Set(ctx, "b", record, -time.Second)
		_, ok := cache.Get(ctx, "b")
		assert.False(t, ok)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		cache.Set(ctx, "c", record, time.Minute)
		cache.Delete(ctx, "c")
		_, ok := cache.Get(ctx, "c")
		assert.False(t, ok)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		c := tenant.NewMemoryCache()
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
	})
}
