package database

// Config holds configuration for the local document cache.
type Config struct {
	// Path is the filesystem path of the SQLite cache database.
	// ":memory:" opens an in-memory cache that is discarded on exit.
	Path string `mapstructure:"path" default:"army-catalog.db"`
	// Enabled toggles the document cache. When disabled, failed source
	// fetches are skipped instead of falling back to a cached copy.
	Enabled bool `mapstructure:"enabled" default:"true"`
}
