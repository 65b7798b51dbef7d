// Package tenantscope enforces the tenant write boundary for multi-tenant
// request handling.
//
// Every mutation passing through the Guard middleware is pinned to the
// caller's own tenant: the guard overwrites the tenantId field of the JSON
// body with the principal's tenant (discarding whatever the caller sent)
// and attaches the resolved Scope to the request context for the
// persistence layer. A crafted payload can therefore never redirect a
// write to another tenant.
//
// Super admins carry no tenant scope and pass through untouched, which is
// what allows explicitly cross-tenant administration. Unauthenticated
// requests are also left alone; rejecting them is the job of upstream
// authentication, not of this guard.
//
// Reads are not rewritten here. Read-side isolation is the persistence
// gateway's contract: every query against a tenant-owned table must carry
// the scope predicate (see the store package).
//
// # Usage
//
//	r.Use(principal.Middleware(principal.NewHeaderExtractor()))
//	r.Use(tenantscope.Guard())
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		scope := tenantscope.MustFromContext(r.Context())
//		rows, err := st.ListSurveys(r.Context(), scope)
//		...
//	}
package tenantscope
