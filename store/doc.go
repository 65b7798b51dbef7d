// Package store is the persistence gateway for tenant-owned data.
//
// It is built around two contracts:
//
//  1. TenantScope: the predicate fragment every query against a
//     tenant-owned table must carry. Store methods that take a
//     tenantscope.Scope apply it themselves, so a handler holding only a
//     scope cannot read or write another tenant's rows through them.
//
//  2. EraseUserData: the atomic cascading erasure of a user's entire data
//     footprint. The deletion order is derived from an explicit dependency
//     graph over the participating tables (see graph.go), not from a
//     hand-maintained list, so adding a table cannot silently break the
//     ordering.
//
// The store does not own the connection pool; it receives a DBTX (in
// practice the process-wide *pgxpool.Pool acquired in main) and issues all
// SQL through it. Tests substitute fakes.
package store
