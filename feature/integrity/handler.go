package integrity

import (
	"army-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/metadata", h.HandleMetadataCheck)
	group.Get("/sources", h.HandleSourcesCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Metadata, Sources) and returns a combined report.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if meta, err := h.service.CheckMetadata(ctx); err != nil {
		report["metadata"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["metadata"] = meta
	}

	if sources, err := h.service.ReconcileSources(ctx); err != nil {
		report["sources"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["sources"] = sources
	}

	return c.JSON(report)
}

// HandleMetadataCheck checks the metadata object.
// @Summary Check Metadata
// @Description Verifies that the metadata object exists in the bucket and parses, and reports its table sizes.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.MetadataReport "Metadata Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/metadata [get]
func (h *Handler) HandleMetadataCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckMetadata(c.Context())
	if err != nil {
		l.Error("Metadata check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Parsable {
		l.Warn("Metadata object is unusable", zap.String("error", report.Error))
	}

	return c.JSON(report)
}

// HandleSourcesCheck reconciles source documents.
// @Summary Reconcile Sources
// @Description Compares the faction roster from metadata against the documents present in the bucket and in the local cache.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {array} checks.SourceResult "Source Results"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	results, err := h.service.ReconcileSources(c.Context())
	if err != nil {
		l.Error("Source reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var missing, malformed int
	for _, r := range results {
		if r.Expected && !r.InBucket {
			missing++
		}
		if r.Malformed {
			malformed++
		}
	}
	if missing > 0 || malformed > 0 {
		l.Warn("Source document issues detected", zap.Int("missing", missing), zap.Int("malformed", malformed))
	}

	return c.JSON(results)
}
