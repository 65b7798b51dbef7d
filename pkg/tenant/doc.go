// Package tenant holds the tenant directory: the minimal tenant record,
// the Provider interface that loads it from storage, and a read-through
// Directory that caches lookups in memory or Redis.
//
// The directory exists so request handlers can cheaply answer "does this
// tenant exist and is it active" without a database round trip per
// request. It is deliberately not the tenant-isolation mechanism; that is
// the tenantscope guard plus the store's scope predicate.
package tenant
