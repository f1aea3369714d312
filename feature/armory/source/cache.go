package source

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CachedDocument is one raw source document persisted in the local cache.
type CachedDocument struct {
	Slug      string    `gorm:"primaryKey"`
	Body      []byte    `gorm:"not null"`
	FetchedAt time.Time `gorm:"not null"`
}

// TableName sets the cache table name.
func (CachedDocument) TableName() string {
	return "source_documents"
}

// Cache is a read-through store for fetched documents. A per-source fetch
// that fails at the transport layer falls back to the last cached copy
// before the source is declared unavailable.
type Cache struct {
	db *gorm.DB
}

// NewCache prepares the cache schema on the given connection.
func NewCache(db *gorm.DB) (*Cache, error) {
	if err := db.AutoMigrate(&CachedDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate document cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Store upserts a document body under its slug.
func (c *Cache) Store(slug string, body []byte) error {
	doc := CachedDocument{Slug: slug, Body: body, FetchedAt: time.Now()}
	return c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).Create(&doc).Error
}

// Get returns the cached body for a slug, or gorm.ErrRecordNotFound.
func (c *Cache) Get(slug string) ([]byte, error) {
	var doc CachedDocument
	if err := c.db.First(&doc, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return doc.Body, nil
}

// Slugs lists every cached document slug.
func (c *Cache) Slugs() ([]string, error) {
	var slugs []string
	if err := c.db.Model(&CachedDocument{}).Order("slug").Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}
