package integrity

import (
	"context"

	"army-catalog/core/storage"
	"army-catalog/feature/armory/source"
	"army-catalog/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles integrity checks over the source bucket.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	cache  *source.Cache
	logger *zap.Logger
}

// NewService creates a new integrity service. The cache may be nil when
// the local database is disabled.
func NewService(client storage.Client, bucket, prefix string, cache *source.Cache, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		cache:  cache,
		logger: logger,
	}
}

// CheckMetadata reports on the metadata object.
func (s *Service) CheckMetadata(ctx context.Context) (*checks.MetadataReport, error) {
	return checks.CheckMetadata(ctx, s.client, s.bucket, s.prefix)
}

// ReconcileSources reports every source document across roster, bucket
// and local cache.
func (s *Service) ReconcileSources(ctx context.Context) ([]checks.SourceResult, error) {
	return checks.ReconcileSources(ctx, s.client, s.bucket, s.prefix, s.cache)
}
