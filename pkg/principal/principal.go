package principal

import (
	"github.com/google/uuid"
)

// Role is the authorization level granted to a principal.
type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	RoleManager      Role = "MANAGER"
	RoleEmployee     Role = "EMPLOYEE"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Principal is the authenticated caller of a single request.
// TenantID is unset only for super admins; every other role belongs to
// exactly one tenant. The value is immutable for the request lifetime.
type Principal struct {
	SubjectID uuid.UUID
	Role      Role
	TenantID  uuid.NullUUID
}

// TenantScope returns the tenant this principal is confined to.
// Super admins have no scope and may operate across tenants; the second
// return value is false for them. A non-super-admin without a tenant is a
// misconfigured identity and also reports false, so nothing downstream
// ever widens its access by accident.
func (p Principal) TenantScope() (uuid.UUID, bool) {
	if p.Role == RoleSuperAdmin || !p.TenantID.Valid {
		return uuid.UUID{}, false
	}
	return p.TenantID.UUID, true
}

// CanErase reports whether the principal is allowed to permanently remove
// user data. Erasure is an administrative capability.
func (p Principal) CanErase() bool {
	return p.Role == RoleSuperAdmin || p.Role == RoleCompanyAdmin
}
