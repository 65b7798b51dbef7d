package tenantscope

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Scope is the resolved tenant filter for one request. It is derived from
// the authenticated principal, never from caller input, and is immutable
// for the request lifetime.
type Scope struct {
	TenantID uuid.UUID
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext attaches a scope to the context.
func WithContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext retrieves the scope from the context. The second return
// value is false for super-admin and anonymous requests, which carry no
// scope.
func FromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(contextKey{}).(Scope)
	return s, ok
}

// MustFromContext retrieves the scope from the context and panics when it
// is absent. Use only on routes that are unreachable without a scoped
// principal.
func MustFromContext(ctx context.Context) Scope {
	s, ok := FromContext(ctx)
	if !ok {
		panic("tenantscope: no scope in context")
	}
	return s
}

// LoggerExtractor returns a logger context extractor that annotates log
// records with the active tenant.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if s, ok := FromContext(ctx); ok {
			return slog.String("tenant_id", s.TenantID.String()), true
		}
		return slog.Attr{}, false
	}
}
