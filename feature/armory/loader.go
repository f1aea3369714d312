package armory

import (
	"army-catalog/core/storage"
	"army-catalog/feature/armory/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the armory feature.
func NewFeature(client storage.Client, bucket string, cfg source.Config, cache *source.Cache, logger *zap.Logger) *Feature {
	ldr := source.NewLoader(client, bucket, cfg, cache, logger)
	svc := NewService(ldr, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service for the CLI commands and the
// startup initialization.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "armory"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
