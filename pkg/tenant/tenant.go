package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant is the minimal tenant record needed for request-scoped checks.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Subdomain string    `json:"subdomain"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider loads tenant records from a data source.
type Provider interface {
	// TenantByID retrieves a tenant by its identifier.
	// Returns ErrTenantNotFound if no tenant matches.
	TenantByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
}
