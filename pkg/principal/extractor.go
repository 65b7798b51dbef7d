package principal

import (
	"net/http"

	"github.com/google/uuid"
)

// Identity headers set by the trusted authenticator in front of this
// service. Requests reaching the extractor are already authenticated;
// these carry the verified claims forward.
const (
	HeaderSubjectID = "X-Subject-Id"
	HeaderRole      = "X-Role"
	HeaderTenantID  = "X-Tenant-Id"
)

// Extractor derives a principal from an already-authenticated request.
// Returning ok=false means the request carries no identity; that is not an
// error condition.
type Extractor interface {
	Extract(r *http.Request) (Principal, bool)
}

// ExtractorFunc is an adapter to allow the use of ordinary functions as
// Extractors.
type ExtractorFunc func(r *http.Request) (Principal, bool)

// Extract calls the function.
func (f ExtractorFunc) Extract(r *http.Request) (Principal, bool) {
	return f(r)
}

// HeaderExtractor reads the identity headers written by the upstream
// authenticator.
type HeaderExtractor struct{}

// NewHeaderExtractor creates an extractor for trusted identity headers.
func NewHeaderExtractor() *HeaderExtractor {
	return &HeaderExtractor{}
}

// Extract builds a principal from the identity headers. Malformed or
// incomplete identity material yields ok=false so the request proceeds
// anonymously rather than failing here.
func (e *HeaderExtractor) Extract(r *http.Request) (Principal, bool) {
	subject, err := uuid.Parse(r.Header.Get(HeaderSubjectID))
	if err != nil {
		return Principal{}, false
	}

	role := Role(r.Header.Get(HeaderRole))
	if !role.Valid() {
		return Principal{}, false
	}

	p := Principal{SubjectID: subject, Role: role}
	if raw := r.Header.Get(HeaderTenantID); raw != "" {
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			return Principal{}, false
		}
		p.TenantID = uuid.NullUUID{UUID: tenantID, Valid: true}
	}

	return p, true
}

// Middleware attaches the extracted principal to the request context.
// It never rejects: unauthenticated requests pass through untouched and
// are handled by whatever authorization applies downstream.
func Middleware(extractor Extractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := extractor.Extract(r); ok {
				r = r.WithContext(WithContext(r.Context(), p))
			}
			next.ServeHTTP(w, r)
		})
	}
}
