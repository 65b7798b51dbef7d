package core

import (
	"log/slog"
	"net/http"
)

// HandlerFunc is an HTTP handler that reports failures by returning an
// error instead of writing its own failure response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn to http.Handler, normalizing any returned error into
// the canonical envelope. Client errors are logged at warn level, server
// errors at error level; in both cases the full error text stays in the
// logs and only the envelope reaches the caller.
func Handler(log *slog.Logger, fn HandlerFunc) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		status, _ := classify(err)
		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			slog.Any("error", err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		WriteError(w, err)
	})
}

// Recoverer converts panics escaping downstream handlers into the generic
// internal-error envelope instead of tearing down the connection.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					WriteError(w, ErrInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
