// Package store is the HTTP client for the hosted record store.
//
// The store is a generic collection-oriented REST backend: one endpoint per
// registered collection, JSON records, server-assigned identifiers and
// timestamps. The client offers uniform CRUD over the five course-admin
// collections plus LoadAll, which fetches all five concurrently and
// produces one atomic record.Snapshot.
//
// # Error contract
//
//   - Any transport failure or non-2xx status surfaces as a single error
//     wrapping ErrRequestFailed. No retries, no partial-success reporting.
//   - If any one of LoadAll's parallel fetches fails, the whole load fails;
//     callers never see a partially populated snapshot.
//   - Expected absences (empty collections, dangling references inside
//     records) are not errors.
//
// The client never caches: the snapshot returned by the last successful
// LoadAll is the only client-side state, and mutations are expected to be
// followed by a fresh LoadAll.
package store
