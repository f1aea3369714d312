// Package config provides configuration management for the army catalog service.
//
// It utilizes Viper for loading configuration from environment variables and
// .env files.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Source: army data source settings (object prefix, fetch pool size)
//   - Database: local document cache (SQLite) settings
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
