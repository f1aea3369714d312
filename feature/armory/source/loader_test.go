package source_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"army-catalog/core/database"
	"army-catalog/core/storage/mocks"
	"army-catalog/feature/armory/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testMetadataJSON = `{
	"factions": [
		{"id": 1, "parent": 1, "name": "PanOceania", "slug": "panoceania"},
		{"id": 10, "parent": 10, "name": "Yu Jing", "slug": "yujing"},
		{"id": 90, "parent": 90, "name": "Old Army", "slug": "oldarmy", "discontinued": true}
	],
	"weapons": [{"id": 12, "name": "Combi Rifle"}],
	"skills": [], "equips": [], "ammunitions": []
}`

const testSourceJSON = `{"units": [{"id": 1, "isc": "Fusiliers", "name": "Fusiliers", "factions": [1]}]}`

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func newTestCache(t *testing.T) *source.Cache {
	db, err := database.Connect(database.Config{Path: ":memory:"})
	assert.NoError(t, err)
	cache, err := source.NewCache(db)
	assert.NoError(t, err)
	return cache
}

func TestLoader_Load(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
		Return(body(testMetadataJSON), nil)
	client.On("GetObject", mock.Anything, "army-data", "data/panoceania.json", mock.Anything).
		Return(body(testSourceJSON), nil)
	client.On("GetObject", mock.Anything, "army-data", "data/yujing.json", mock.Anything).
		Return(body(testSourceJSON), nil)

	l := source.NewLoader(client, "army-data", source.Config{Prefix: "data", PoolSize: 2}, nil, zap.NewNop())
	res, err := l.Load(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Metadata.Factions, 3)
	// The discontinued faction is never fetched.
	assert.Len(t, res.Documents, 2)
	assert.True(t, res.LoadedSlugs["panoceania"])
	assert.True(t, res.LoadedSlugs["yujing"])
	assert.False(t, res.LoadedSlugs["oldarmy"])

	// Documents come back in roster order regardless of fetch completion.
	assert.Equal(t, "panoceania", res.Documents[0].Slug)
	assert.Equal(t, "yujing", res.Documents[1].Slug)
}

func TestLoader_MetadataFailureIsFatal(t *testing.T) {
	t.Run("FetchError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
			Return(nil, errors.New("connection refused"))

		l := source.NewLoader(client, "army-data", source.Config{Prefix: "data"}, nil, zap.NewNop())
		_, err := l.Load(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load metadata")
	})

	t.Run("ParseError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
			Return(body("{not json"), nil)

		l := source.NewLoader(client, "army-data", source.Config{Prefix: "data"}, nil, zap.NewNop())
		_, err := l.Load(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse metadata")
	})
}

func TestLoader_SourceFailureIsSkipped(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
		Return(body(testMetadataJSON), nil)
	client.On("GetObject", mock.Anything, "army-data", "data/panoceania.json", mock.Anything).
		Return(body(testSourceJSON), nil)
	client.On("GetObject", mock.Anything, "army-data", "data/yujing.json", mock.Anything).
		Return(nil, errors.New("object not found"))

	l := source.NewLoader(client, "army-data", source.Config{Prefix: "data", PoolSize: 1}, nil, zap.NewNop())
	res, err := l.Load(context.Background())

	// The failed source never aborts the pass.
	assert.NoError(t, err)
	assert.Len(t, res.Documents, 1)
	assert.True(t, res.LoadedSlugs["panoceania"])
	assert.False(t, res.LoadedSlugs["yujing"])
}

func TestLoader_MalformedSourceIsSkipped(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
		Return(body(testMetadataJSON), nil)
	client.On("GetObject", mock.Anything, "army-data", "data/panoceania.json", mock.Anything).
		Return(body("{broken"), nil)
	client.On("GetObject", mock.Anything, "army-data", "data/yujing.json", mock.Anything).
		Return(body(testSourceJSON), nil)

	l := source.NewLoader(client, "army-data", source.Config{Prefix: "data", PoolSize: 1}, nil, zap.NewNop())
	res, err := l.Load(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Documents, 1)
	assert.False(t, res.LoadedSlugs["panoceania"])
}

func TestLoader_CacheFallback(t *testing.T) {
	cache := newTestCache(t)
	assert.NoError(t, cache.Store("yujing", []byte(testSourceJSON)))

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
		Return(body(testMetadataJSON), nil)
	client.On("GetObject", mock.Anything, "army-data", "data/panoceania.json", mock.Anything).
		Return(body(testSourceJSON), nil)
	client.On("GetObject", mock.Anything, "army-data", "data/yujing.json", mock.Anything).
		Return(nil, errors.New("connection reset"))

	l := source.NewLoader(client, "army-data", source.Config{Prefix: "data", PoolSize: 1}, cache, zap.NewNop())
	res, err := l.Load(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Documents, 2)
	// The failed source is served from its cached copy and counts as loaded.
	assert.True(t, res.LoadedSlugs["yujing"])
}

func TestCache(t *testing.T) {
	cache := newTestCache(t)

	t.Run("Miss", func(t *testing.T) {
		_, err := cache.Get("panoceania")
		assert.Error(t, err)
	})

	t.Run("StoreAndGet", func(t *testing.T) {
		assert.NoError(t, cache.Store("panoceania", []byte("v1")))
		got, err := cache.Get("panoceania")
		assert.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)
	})

	t.Run("Upsert", func(t *testing.T) {
		assert.NoError(t, cache.Store("panoceania", []byte("v2")))
		got, err := cache.Get("panoceania")
		assert.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("Slugs", func(t *testing.T) {
		assert.NoError(t, cache.Store("ariadna", []byte("v1")))
		slugs, err := cache.Slugs()
		assert.NoError(t, err)
		assert.Equal(t, []string{"ariadna", "panoceania"}, slugs)
	})
}
