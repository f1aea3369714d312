package armory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"army-catalog/feature/armory/catalog"
	"army-catalog/feature/armory/source"

	"go.uber.org/zap"
)

// ErrNotInitialized is returned by query methods before a successful Init.
var ErrNotInitialized = errors.New("armory catalog not initialized")

// Service owns the catalog and the faction registry and exposes the query
// surface consumed by the HTTP handler and the CLI commands.
type Service struct {
	loader *source.Loader
	logger *zap.Logger

	mu       sync.RWMutex
	catalog  *catalog.Catalog
	factions *catalog.FactionRegistry
}

// NewService creates a new armory service.
func NewService(loader *source.Loader, logger *zap.Logger) *Service {
	return &Service{loader: loader, logger: logger}
}

// Init performs one full load pass and swaps in the freshly built catalog and
// faction registry. A metadata failure aborts the pass and leaves any
// previous state untouched; per-source failures only cost those factions
// their data. Init is idempotent: repeating it rebuilds the same catalog.
func (s *Service) Init(ctx context.Context) error {
	res, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("armory initialization failed: %w", err)
	}

	cat := catalog.New(res.Metadata)
	for _, d := range res.Documents {
		if d.Doc.Filters != nil {
			cat.RegisterExtras(d.Doc.Filters.Extras)
		}
		cat.Ingest(d.Doc.Units)
	}
	cat.BuildSuggestions()

	reg := catalog.NewFactionRegistry(res.Metadata.Factions, res.LoadedSlugs)

	s.mu.Lock()
	s.catalog, s.factions = cat, reg
	s.mu.Unlock()

	s.logger.Info("Armory catalog initialized",
		zap.Int("units", cat.UnitCount()),
		zap.Int("sources_loaded", len(res.LoadedSlugs)),
		zap.Any("skipped_records", cat.Skipped()),
	)

	return nil
}

// snapshot returns the current catalog state for lock-free reads.
func (s *Service) snapshot() (*catalog.Catalog, *catalog.FactionRegistry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, nil, ErrNotInitialized
	}
	return s.catalog, s.factions, nil
}

// Search evaluates a modifier-aware filter set against the catalog.
func (s *Service) Search(filters []catalog.Filter, op catalog.Operator) ([]*catalog.Unit, error) {
	cat, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return cat.Search(filters, op), nil
}

// Suggestions returns the full ranked autocomplete list for a query.
func (s *Service) Suggestions(query string) ([]catalog.Suggestion, error) {
	cat, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return cat.Suggest(query), nil
}

// UnitBySlug resolves a unit by slug, ISC code or normalized ISC slug.
func (s *Service) UnitBySlug(slug string) (*catalog.Unit, error) {
	cat, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	u, ok := cat.UnitBySlug(slug)
	if !ok {
		return nil, nil
	}
	return u, nil
}

// UnitCount returns the number of deduplicated catalog entries.
func (s *Service) UnitCount() (int, error) {
	cat, _, err := s.snapshot()
	if err != nil {
		return 0, err
	}
	return cat.UnitCount(), nil
}

// WikiLink returns the wiki URL for an item, if one is registered.
func (s *Service) WikiLink(t catalog.ItemType, id int) (string, bool, error) {
	cat, _, err := s.snapshot()
	if err != nil {
		return "", false, err
	}
	link, ok := cat.WikiLink(t, id)
	return link, ok, nil
}

// FactionInfo returns the enriched faction record for an id.
func (s *Service) FactionInfo(id int) (catalog.FactionInfo, bool, error) {
	_, reg, err := s.snapshot()
	if err != nil {
		return catalog.FactionInfo{}, false, err
	}
	info, ok := reg.Info(id)
	return info, ok, nil
}

// FactionName returns a faction's full name.
func (s *Service) FactionName(id int) (string, error) {
	_, reg, err := s.snapshot()
	if err != nil {
		return "", err
	}
	return reg.Name(id), nil
}

// FactionShortName returns a faction's derived short name.
func (s *Service) FactionShortName(id int) (string, error) {
	_, reg, err := s.snapshot()
	if err != nil {
		return "", err
	}
	return reg.ShortName(id), nil
}

// FactionHasData reports whether a faction's source document loaded.
func (s *Service) FactionHasData(id int) (bool, error) {
	_, reg, err := s.snapshot()
	if err != nil {
		return false, err
	}
	return reg.HasData(id), nil
}

// GroupedFactions returns the super-groups that have any loaded member.
func (s *Service) GroupedFactions() ([]catalog.FactionGroup, error) {
	_, reg, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return reg.Groups(), nil
}
