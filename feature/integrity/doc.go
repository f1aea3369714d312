// Package integrity provides health checks over the source data bucket.
//
// Unlike the 'armory' package which consumes the source documents, this
// package validates that the bucket actually holds what the catalog needs.
//
// # Checks Provided
//
//   - Metadata: Verifies that metadata.json exists and parses, and reports
//     the size of each lookup table it carries.
//   - Sources: Reconciles the faction roster from metadata against the
//     documents present in the bucket and in the local cache, flagging
//     expected documents that are missing, orphans that no faction
//     references, and documents that do not parse.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/metadata : Runs the metadata check.
//   - GET /integrity/sources : Runs the source reconciliation.
package integrity
