// Package source retrieves the raw army data documents from object storage.
//
// A load pass fetches the metadata document first (its failure aborts the
// pass) and then fans out the per-source documents over a bounded worker
// pool. Outcomes are collected by a single goroutine and returned as plain
// data, keeping the catalog merge downstream single-writer and making the
// whole pipeline testable with the mock storage client.
//
// # Cache Fallback
//
// When a Cache is attached, every successfully fetched document is stored in
// the local SQLite cache, and a source whose fetch or parse fails is served
// from its last cached copy before being skipped. The metadata document is
// deliberately not cached: a stale faction roster would silently mask a dead
// data endpoint.
package source
