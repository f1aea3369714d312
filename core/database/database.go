package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the local SQLite document cache.
// It returns a *gorm.DB connection or an error if the database cannot be
// opened. The cache is optional, so callers should handle the error gracefully.
func Connect(cfg Config) (*gorm.DB, error) {
	path := cfg.Path
	if path == "" {
		path = "army-catalog.db"
	}

	// Suppress GORM logging; cache misses are reported through the main logger.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open document cache: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQLite serializes writers; a single open connection avoids SQLITE_BUSY
	// during the fan-out load.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
