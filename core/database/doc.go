// Package database handles the local document cache connection.
//
// It provides a wrapper around GORM to open a SQLite database used by the
// source loader as a read-through cache for fetched army data documents.
// A per-source fetch that fails at the transport layer can fall back to the
// last cached copy before the source is declared unavailable.
//
// The cache holds raw documents only; the unit catalog itself is built
// in memory on every initialization and is never persisted.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Document cache unavailable", zap.Error(err))
//	}
package database
