// Package utils provides common utility functions for the army catalog service.
// It includes helper functions for flexible numeric conversion and slug
// normalization shared across the catalog and source packages.
package utils
