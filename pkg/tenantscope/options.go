package tenantscope

import "log/slog"

// config holds guard configuration.
type config struct {
	skipPaths    []string
	maxBodyBytes int64
	logger       *slog.Logger
}

func defaultConfig() *config {
	return &config{
		// Bodies beyond the cap are forwarded untouched instead of being
		// buffered for rewriting; the context scope still pins the tenant.
		maxBodyBytes: 10 << 20,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// Option configures the guard middleware.
type Option func(*config)

// WithSkipPaths sets path prefixes that bypass the guard entirely.
func WithSkipPaths(paths ...string) Option {
	return func(c *config) {
		c.skipPaths = append(c.skipPaths, paths...)
	}
}

// WithMaxBodyBytes caps how much of a request body the guard buffers for
// rewriting. Larger bodies pass through unmodified. Zero means no limit.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		c.maxBodyBytes = n
	}
}

// WithLogger sets a custom logger for the guard.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
