package armory

import (
	"errors"
	"strconv"

	"army-catalog/core/logger"
	"army-catalog/feature/armory/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the armory catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the armory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/armory")
	group.Post("/search", h.HandleSearch)
	group.Get("/suggestions", h.HandleSuggestions)
	group.Get("/factions", h.HandleGroupedFactions)
	group.Get("/factions/:id", h.HandleFactionInfo)
	group.Get("/units/:slug", h.HandleUnitBySlug)
	group.Get("/wiki/:type/:id", h.HandleWikiLink)
}

// SearchRequest is the body of a search call.
type SearchRequest struct {
	Filters  []catalog.Filter `json:"filters"`
	Operator string           `json:"operator"`
}

// HandleSearch evaluates a modifier-aware filter set.
// @Summary Search Units
// @Description Evaluates an AND/OR filter set against the unit catalog. Filters match item variants by type, base id and (unless matchAnyExtra is set) the exact ordered modifier list.
// @Tags armory
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Filter set"
// @Success 200 {array} catalog.Unit "Matching units"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Catalog not initialized"
// @Router /armory/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	op, err := catalog.ParseOperator(req.Operator)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	units, err := h.service.Search(req.Filters, op)
	if err != nil {
		return h.serviceError(c, l, err)
	}

	return c.JSON(units)
}

// HandleSuggestions returns ranked autocomplete entries.
// @Summary Autocomplete Suggestions
// @Description Returns the ranked item-variant suggestions matching the query, including synthesized "(any)" entries. Use limit to truncate to a display page.
// @Tags armory
// @Accept json
// @Produce json
// @Param q query string false "Query text"
// @Param limit query int false "Maximum entries to return (0 = all)"
// @Success 200 {array} catalog.Suggestion "Ranked suggestions"
// @Failure 503 {object} map[string]string "Catalog not initialized"
// @Router /armory/suggestions [get]
func (h *Handler) HandleSuggestions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	suggestions, err := h.service.Suggestions(c.Query("q"))
	if err != nil {
		return h.serviceError(c, l, err)
	}

	if limit, err := strconv.Atoi(c.Query("limit", "0")); err == nil && limit > 0 && limit < len(suggestions) {
		suggestions = suggestions[:limit]
	}

	return c.JSON(suggestions)
}

// HandleGroupedFactions lists the faction hierarchy.
// @Summary Grouped Factions
// @Description Lists every super-group with loaded data, with its vanilla faction and loaded sub-groups sorted by name.
// @Tags armory
// @Accept json
// @Produce json
// @Success 200 {array} catalog.FactionGroup "Faction groups"
// @Failure 503 {object} map[string]string "Catalog not initialized"
// @Router /armory/factions [get]
func (h *Handler) HandleGroupedFactions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	groups, err := h.service.GroupedFactions()
	if err != nil {
		return h.serviceError(c, l, err)
	}

	return c.JSON(groups)
}

// HandleFactionInfo returns a single faction record.
// @Summary Faction Info
// @Description Returns the enriched faction record (short name, hasData flag) for an id.
// @Tags armory
// @Accept json
// @Produce json
// @Param id path int true "Faction id"
// @Success 200 {object} catalog.FactionInfo "Faction"
// @Failure 404 {object} map[string]string "Unknown faction"
// @Failure 503 {object} map[string]string "Catalog not initialized"
// @Router /armory/factions/{id} [get]
func (h *Handler) HandleFactionInfo(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid faction id"})
	}

	info, ok, err := h.service.FactionInfo(id)
	if err != nil {
		return h.serviceError(c, l, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown faction"})
	}

	return c.JSON(info)
}

// HandleUnitBySlug resolves a unit by any of its slug keys.
// @Summary Unit By Slug
// @Description Resolves a unit by its source slug, raw ISC code or normalized ISC slug.
// @Tags armory
// @Accept json
// @Produce json
// @Param slug path string true "Unit slug or ISC code"
// @Success 200 {object} catalog.Unit "Unit"
// @Failure 404 {object} map[string]string "Unknown unit"
// @Failure 503 {object} map[string]string "Catalog not initialized"
// @Router /armory/units/{slug} [get]
func (h *Handler) HandleUnitBySlug(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	unit, err := h.service.UnitBySlug(c.Params("slug"))
	if err != nil {
		return h.serviceError(c, l, err)
	}
	if unit == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown unit"})
	}

	return c.JSON(unit)
}

// HandleWikiLink returns the wiki URL of an item.
// @Summary Item Wiki Link
// @Description Returns the wiki URL registered for a weapon, skill, equipment or ammunition id.
// @Tags armory
// @Accept json
// @Produce json
// @Param type path string true "Item type (weapon, skill, equipment, ammunition)"
// @Param id path int true "Item id"
// @Success 200 {object} map[string]string "Wiki link"
// @Failure 404 {object} map[string]string "No link registered"
// @Failure 503 {object} map[string]string "Catalog not initialized"
// @Router /armory/wiki/{type}/{id} [get]
func (h *Handler) HandleWikiLink(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}

	link, ok, err := h.service.WikiLink(catalog.ItemType(c.Params("type")), id)
	if err != nil {
		return h.serviceError(c, l, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no wiki link registered"})
	}

	return c.JSON(fiber.Map{"link": link})
}

func (h *Handler) serviceError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, ErrNotInitialized) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Armory request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
