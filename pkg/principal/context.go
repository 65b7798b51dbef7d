package principal

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext attaches a principal to the context.
func WithContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext retrieves the principal from the context.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}

// MustFromContext retrieves the principal from the context and panics when
// it is absent. Use only in handlers mounted behind the extractor on routes
// that cannot be reached anonymously.
func MustFromContext(ctx context.Context) Principal {
	p, ok := FromContext(ctx)
	if !ok {
		panic("principal: no principal in context")
	}
	return p
}

// LoggerExtractor returns a logger context extractor that annotates log
// records with the calling subject and role.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		p, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("principal",
			slog.String("subject_id", p.SubjectID.String()),
			slog.String("role", string(p.Role)),
		), true
	}
}
