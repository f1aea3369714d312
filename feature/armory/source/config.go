package source

// Config holds configuration for the army data source loader.
type Config struct {
	// Prefix is the object key prefix under which the data documents live,
	// e.g. "data" for data/metadata.json and data/<slug>.json.
	Prefix string `mapstructure:"prefix" default:"data"`
	// PoolSize is the number of concurrent per-source fetches.
	PoolSize int `mapstructure:"pool_size" default:"4"`
}
