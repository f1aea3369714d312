// Package catalog implements the in-memory army data query engine.
//
// It holds the deduplicated unit catalog, the modifier-aware search engine,
// the ranked autocomplete suggestion generator and the faction hierarchy
// registry. All of it is built once during a single initialization pass from
// the raw source documents and is read-only afterwards, so any number of
// readers may query it concurrently without locking.
//
// # Ingestion
//
// Ingest merges raw unit records per source. Units are deduplicated by ISC
// code: a repeated ISC unions its faction list into the existing unit while
// item indices stay as derived from the first-seen record. Every
// weapon/skill/equipment reference is indexed both as a plain base id and as
// an ItemVariant keyed by (type, id, ordered modifier list).
//
// # Search
//
// Search evaluates AND/OR filter sets. A filter matches a unit when one of
// its variants carries the same type and base id and either the filter
// accepts any modifiers or the modifier lists are positionally equal.
//
// # Suggestions
//
// Suggest filters and ranks the global distinct-variant list, including
// synthesized "(any)" entries for bases that occur with modifiers. The list
// is computed once, guarded by singleflight under concurrent first access.
//
// # Factions
//
// FactionRegistry reconciles the super-group/sub-group hierarchy against the
// set of sources that actually loaded; factions whose documents failed to
// load stay out of the grouped listing.
package catalog
