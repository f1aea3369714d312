package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"army-catalog/core/storage"
	"army-catalog/feature/armory/models"

	"github.com/minio/minio-go/v7"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// MetadataObject is the key of the metadata document under the prefix.
const MetadataObject = "metadata.json"

// Document pairs a source slug with its parsed document, in load order.
type Document struct {
	Slug string
	Doc  *models.SourceDocument
}

// Result is the outcome of a full load pass: the parsed metadata, the
// per-source documents that could be retrieved, and the slugs they belong to.
// It is plain data, so catalog construction can be tested without a network.
type Result struct {
	Metadata    *models.Metadata
	Documents   []Document
	LoadedSlugs map[string]bool
}

// Loader retrieves the army data documents from object storage. Failure of
// the metadata document aborts the load; failure of an individual per-source
// document falls back to the local cache and otherwise degrades to "no data
// for that faction".
type Loader struct {
	client storage.Client
	bucket string
	cfg    Config
	cache  *Cache
	logger *zap.Logger
}

// NewLoader creates a loader. The cache may be nil, in which case failed
// fetches are skipped without a fallback.
func NewLoader(client storage.Client, bucket string, cfg Config, cache *Cache, logger *zap.Logger) *Loader {
	return &Loader{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		cache:  cache,
		logger: logger,
	}
}

// Load performs one full load pass. The metadata document is fetched first;
// its failure is fatal. Per-source documents are then fetched through a
// bounded worker pool, and the parsed results collected by this goroutine
// alone, so the catalog merge downstream stays single-writer.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	raw, err := l.fetch(ctx, MetadataObject)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}

	var meta models.Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	slugs := activeSlugs(meta.Factions)
	docs, loaded := l.loadSources(ctx, slugs)

	l.logger.Info("Source load pass complete",
		zap.Int("factions", len(meta.Factions)),
		zap.Int("sources", len(slugs)),
		zap.Int("loaded", len(docs)),
	)

	return &Result{Metadata: &meta, Documents: docs, LoadedSlugs: loaded}, nil
}

// activeSlugs returns the distinct source slugs of all non-discontinued
// factions, preserving roster order.
func activeSlugs(factions []models.FactionRecord) []string {
	seen := make(map[string]struct{})
	slugs := []string{}
	for _, f := range factions {
		if f.Discontinued || f.Slug == "" {
			continue
		}
		if _, ok := seen[f.Slug]; ok {
			continue
		}
		seen[f.Slug] = struct{}{}
		slugs = append(slugs, f.Slug)
	}
	return slugs
}

type fetchOutcome struct {
	idx  int
	slug string
	doc  *models.SourceDocument
}

// loadSources fan-outs the per-source fetches over an ants pool and collects
// the outcomes. Results are reordered to roster order so repeated loads are
// deterministic regardless of fetch completion order.
func (l *Loader) loadSources(ctx context.Context, slugs []string) ([]Document, map[string]bool) {
	poolSize := l.cfg.PoolSize
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		// Pool creation only fails on invalid sizes; fall back to serial.
		pool = nil
	} else {
		defer pool.Release()
	}

	outcomes := make([]*fetchOutcome, len(slugs))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, slug := range slugs {
		i, slug := i, slug
		task := func() {
			defer wg.Done()
			doc := l.loadSource(ctx, slug)
			mu.Lock()
			outcomes[i] = &fetchOutcome{idx: i, slug: slug, doc: doc}
			mu.Unlock()
		}

		wg.Add(1)
		if pool != nil {
			if err := pool.Submit(task); err != nil {
				wg.Done()
				outcomes[i] = &fetchOutcome{idx: i, slug: slug}
				continue
			}
		} else {
			task()
		}
	}
	wg.Wait()

	docs := []Document{}
	loaded := make(map[string]bool)
	for _, o := range outcomes {
		if o == nil || o.doc == nil {
			continue
		}
		docs = append(docs, Document{Slug: o.slug, Doc: o.doc})
		loaded[o.slug] = true
	}
	return docs, loaded
}

// loadSource fetches and parses one per-source document. On a fetch or parse
// failure it falls back to the cached copy; when that also misses, the source
// is skipped and the faction will carry no data this pass.
func (l *Loader) loadSource(ctx context.Context, slug string) *models.SourceDocument {
	raw, err := l.fetch(ctx, slug+".json")
	if err == nil {
		if doc := parseSource(raw); doc != nil {
			if l.cache != nil {
				if cerr := l.cache.Store(slug, raw); cerr != nil {
					l.logger.Warn("Failed to cache source document",
						zap.String("slug", slug), zap.Error(cerr))
				}
			}
			return doc
		}
		err = fmt.Errorf("malformed document")
	}

	l.logger.Warn("Source unavailable, trying cache",
		zap.String("slug", slug), zap.Error(err))

	if l.cache == nil {
		return nil
	}
	cached, cerr := l.cache.Get(slug)
	if cerr != nil {
		l.logger.Warn("No cached copy, skipping source", zap.String("slug", slug))
		return nil
	}
	return parseSource(cached)
}

func parseSource(raw []byte) *models.SourceDocument {
	var doc models.SourceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return &doc
}

// fetch reads a whole object from the bucket under the configured prefix.
func (l *Loader) fetch(ctx context.Context, name string) ([]byte, error) {
	key := name
	if l.cfg.Prefix != "" {
		key = l.cfg.Prefix + "/" + name
	}

	obj, err := l.client.GetObject(ctx, l.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return raw, nil
}
