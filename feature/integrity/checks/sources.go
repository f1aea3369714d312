package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"army-catalog/core/storage"
	"army-catalog/feature/armory/models"
	"army-catalog/feature/armory/source"

	"github.com/minio/minio-go/v7"
)

// SourceResult reports one faction source document across the three
// locations it can live in: expected by the metadata roster, present in
// the bucket, and present in the local cache.
type SourceResult struct {
	Slug      string `json:"slug"`
	Name      string `json:"name,omitempty"`
	Expected  bool   `json:"expected"`
	InBucket  bool   `json:"inBucket"`
	InCache   bool   `json:"inCache"`
	Malformed bool   `json:"malformed"`
}

// ReconcileSources builds the three source indices concurrently, computes
// the union of their slugs and returns a result per slug, sorted for
// deterministic output. A nil cache counts every document as uncached.
func ReconcileSources(ctx context.Context, client storage.Client, bucket, prefix string, cache *source.Cache) ([]SourceResult, error) {
	var (
		expected  map[string]string
		bucketSet map[string]struct{}
		cacheSet  map[string]struct{}
		expErr    error
		bucketErr error
		cacheErr  error
		wg        sync.WaitGroup
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		expected, expErr = loadExpectedIndex(ctx, client, bucket, prefix)
	}()

	go func() {
		defer wg.Done()
		bucketSet, bucketErr = loadBucketSet(ctx, client, bucket, prefix)
	}()

	go func() {
		defer wg.Done()
		cacheSet, cacheErr = loadCacheSet(cache)
	}()

	wg.Wait()

	if expErr != nil {
		return nil, expErr
	}
	if bucketErr != nil {
		return nil, bucketErr
	}
	if cacheErr != nil {
		return nil, cacheErr
	}

	union := make(map[string]struct{})
	for slug := range expected {
		union[slug] = struct{}{}
	}
	for slug := range bucketSet {
		union[slug] = struct{}{}
	}
	for slug := range cacheSet {
		union[slug] = struct{}{}
	}

	results := make([]SourceResult, 0, len(union))
	for slug := range union {
		name, exp := expected[slug]
		_, inBucket := bucketSet[slug]
		_, inCache := cacheSet[slug]
		results = append(results, SourceResult{
			Slug:     slug,
			Name:     name,
			Expected: exp,
			InBucket: inBucket,
			InCache:  inCache,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Slug < results[j].Slug
	})

	markMalformed(ctx, client, bucket, prefix, results)

	return results, nil
}

// markMalformed fetches every document present in the bucket and flags the
// ones that do not parse as a source document. Fetch errors are left alone;
// presence was already established by the listing.
func markMalformed(ctx context.Context, client storage.Client, bucket, prefix string, results []SourceResult) {
	var wg sync.WaitGroup
	for i := range results {
		if !results[i].InBucket {
			continue
		}

		wg.Add(1)
		go func(r *SourceResult) {
			defer wg.Done()

			obj, err := client.GetObject(ctx, bucket, objectName(prefix, r.Slug+".json"), minio.GetObjectOptions{})
			if err != nil {
				return
			}
			defer obj.Close()

			raw, err := io.ReadAll(obj)
			if err != nil {
				return
			}

			var doc models.SourceDocument
			if err := json.Unmarshal(raw, &doc); err != nil {
				r.Malformed = true
			}
		}(&results[i])
	}
	wg.Wait()
}

// loadExpectedIndex maps every active faction slug from the metadata
// roster to its faction name.
func loadExpectedIndex(ctx context.Context, client storage.Client, bucket, prefix string) (map[string]string, error) {
	obj, err := client.GetObject(ctx, bucket, objectName(prefix, "metadata.json"), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var meta models.Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	expected := make(map[string]string)
	for _, f := range meta.Factions {
		if f.Discontinued || f.Slug == "" {
			continue
		}
		if _, ok := expected[f.Slug]; !ok {
			expected[f.Slug] = f.Name
		}
	}
	return expected, nil
}

// loadBucketSet lists every source document under the prefix, keyed by
// slug. The metadata object is not a source document and is skipped.
func loadBucketSet(ctx context.Context, client storage.Client, bucket, prefix string) (map[string]struct{}, error) {
	listPrefix := ""
	if prefix != "" {
		listPrefix = prefix + "/"
	}

	set := make(map[string]struct{})
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, listPrefix)
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		slug := strings.TrimSuffix(name, ".json")
		if slug == "metadata" || slug == "" {
			continue
		}
		set[slug] = struct{}{}
	}
	return set, nil
}

func loadCacheSet(cache *source.Cache) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	if cache == nil {
		return set, nil
	}

	slugs, err := cache.Slugs()
	if err != nil {
		return nil, fmt.Errorf("failed to list cached documents: %w", err)
	}
	for _, slug := range slugs {
		set[slug] = struct{}{}
	}
	return set, nil
}
