package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when a tenant cannot be found.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrInactiveTenant is returned when an operation targets a
	// deactivated tenant.
	ErrInactiveTenant = errors.New("tenant is inactive")
)
