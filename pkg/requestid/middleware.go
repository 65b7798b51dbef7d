package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header carries the correlation ID between client, service and response.
const Header = "X-Request-ID"

// maxLength bounds client-supplied IDs so log fields stay readable.
const maxLength = 128

// Middleware reuses a well-formed client-supplied correlation ID or mints
// a fresh UUID, attaches it to the request context and echoes it back in
// the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !wellFormed(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// wellFormed accepts IDs built from letters, digits, dashes and
// underscores only. Anything else is replaced rather than propagated into
// logs and response headers.
func wellFormed(id string) bool {
	if len(id) == 0 || len(id) > maxLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
