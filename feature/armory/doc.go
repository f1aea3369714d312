// Package armory implements the army data catalog feature.
//
// It wires the source loader, the unit catalog, the suggestion generator and
// the faction registry into one service initialized by a single load pass:
//
//  1. The metadata document (faction roster, item name tables) is fetched;
//     its failure aborts initialization.
//  2. Every non-discontinued faction's source document is fetched
//     concurrently; failures degrade to "no data for that faction".
//  3. Units are deduplicated by ISC code and indexed, the modifier display
//     table is merged, and the suggestion index is built.
//
// After Init the catalog is read-only and all query methods are safe for
// concurrent use.
//
// # Components
//
//   - Service: Owns the catalog state and exposes the query surface.
//   - Handler: Exposes HTTP endpoints for search, suggestions, factions,
//     unit lookup and wiki links.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /armory/search : Modifier-aware AND/OR unit search.
//   - GET /armory/suggestions?q= : Ranked autocomplete entries.
//   - GET /armory/factions : Grouped faction hierarchy.
//   - GET /armory/factions/:id : Single faction record.
//   - GET /armory/units/:slug : Unit lookup by slug or ISC code.
//   - GET /armory/wiki/:type/:id : Item wiki link.
package armory
