// Package principal models the authenticated caller of a request and its
// tenant affiliation.
//
// A Principal is produced by the external authenticator (session, JWT,
// identity proxy, all outside this repository) and attached to the request
// context by the extraction middleware. Downstream code treats it as
// immutable for the lifetime of the request.
//
// The package deliberately does not verify anything: by the time a request
// reaches the extractor it has already been authenticated upstream. A
// request without identity material simply proceeds without a Principal.
//
// # Usage
//
//	r.Use(principal.Middleware(principal.NewHeaderExtractor()))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		p, ok := principal.FromContext(r.Context())
//		if !ok {
//			// anonymous request
//		}
//		if tenantID, scoped := p.TenantScope(); scoped {
//			// p is confined to tenantID
//		}
//	}
//
// # Tenant scoping
//
// TenantScope is the only way to learn which tenant a principal may touch.
// Super admins carry no tenant and report scoped=false; every other role
// reports its own tenant. Callers branch on the presence of the scope value
// instead of comparing role strings at each call site.
package principal
