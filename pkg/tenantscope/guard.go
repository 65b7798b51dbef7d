package tenantscope

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/uplifthq/uplift/pkg/principal"
)

// BodyField is the JSON body field the guard pins to the caller's tenant.
// The camelCase key preserves the application's external API contract.
const BodyField = "tenantId"

// Guard returns middleware that pins every mutation to the caller's own
// tenant.
//
// For POST, PUT and PATCH requests from a scoped principal the guard
// overwrites the tenantId body field with the principal's tenant,
// regardless of any value the caller supplied, and attaches the resolved
// Scope to the request context. Super-admin and anonymous requests pass
// through untouched. The guard never rejects a request.
func Guard(opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range cfg.skipPaths {
				if strings.HasPrefix(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			p, ok := principal.FromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			tenantID, scoped := p.TenantScope()
			if !scoped {
				// Cross-tenant capability: nothing is injected, the
				// handler scopes its own queries explicitly.
				next.ServeHTTP(w, r)
				return
			}

			r = r.WithContext(WithContext(r.Context(), Scope{TenantID: tenantID}))

			if isMutation(r.Method) {
				rewriteBody(r, tenantID.String(), cfg)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// rewriteBody replaces the tenant field of a JSON body in place. Bodies
// that are empty, over the buffering cap, or not valid JSON are forwarded
// untouched; the handler still has the context scope as the authoritative
// tenant.
func rewriteBody(r *http.Request, tenantID string, cfg *config) {
	if r.Body == nil || r.Body == http.NoBody {
		return
	}

	reader := io.Reader(r.Body)
	if cfg.maxBodyBytes > 0 {
		// One extra byte distinguishes a body exactly at the cap from one
		// over it.
		reader = io.LimitReader(r.Body, cfg.maxBodyBytes+1)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		cfg.logger.ErrorContext(r.Context(), "tenantscope: failed to read request body", "error", err)
		r.Body = replayBody{io.MultiReader(bytes.NewReader(body), r.Body), r.Body}
		return
	}

	if cfg.maxBodyBytes > 0 && int64(len(body)) > cfg.maxBodyBytes {
		// Oversized body: forward it intact and rewrite nothing. The scope
		// on the context stays the authoritative tenant for the handler.
		r.Body = replayBody{io.MultiReader(bytes.NewReader(body), r.Body), r.Body}
		return
	}
	_ = r.Body.Close()

	if gjson.ValidBytes(body) {
		if rewritten, err := sjson.SetBytes(body, BodyField, tenantID); err == nil {
			body = rewritten
		} else {
			cfg.logger.ErrorContext(r.Context(), "tenantscope: failed to rewrite request body", "error", err)
		}
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	r.ContentLength = int64(len(body))
	r.Header.Set("Content-Length", strconv.Itoa(len(body)))
}

// replayBody stitches an already-buffered prefix back onto the unread
// remainder of the original body.
type replayBody struct {
	io.Reader
	io.Closer
}
