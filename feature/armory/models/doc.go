// Package models defines the raw JSON document structures delivered by the
// army data sources.
//
// Two document kinds exist:
//
//   - Metadata: the faction roster plus the global id->name tables
//     (weapons, skills, equipment, ammunition).
//   - SourceDocument: one per faction, holding the raw unit records and the
//     per-source filter tables (including the modifier-display "extras").
//
// The documents originate from a scraper and are loosely typed upstream;
// FlexInt absorbs ids that arrive either as numbers or quoted strings, and
// missing nested arrays simply decode to empty slices. Parsing never panics
// on malformed optional sections.
package models
