package catalog_test

import (
	"sync"
	"testing"

	"army-catalog/feature/armory/catalog"
	"army-catalog/feature/armory/models"

	"github.com/stretchr/testify/assert"
)

func suggestCatalog() *catalog.Catalog {
	c := catalog.New(testMetadata())
	c.RegisterExtras([]models.ExtraRecord{{ID: 6, Name: "-6"}, {ID: 3, Name: "-3"}})
	c.Ingest([]models.RawUnit{
		rawUnit("U1", "Alpha", nil, models.ProfileGroup{
			Profiles: []models.Profile{{
				Skills:  []models.ItemRef{ref(201, 6), ref(201, 3), ref(202)},
				Weapons: []models.ItemRef{ref(12)},
			}},
		}),
		rawUnit("U2", "Bravo", nil, models.ProfileGroup{
			Profiles: []models.Profile{{
				// Same Mimetism [6] variant as U1; must not duplicate.
				Skills: []models.ItemRef{ref(201, 6), ref(201)},
			}},
		}),
	})
	return c
}

func TestSuggest_RankingAnyVariantFirst(t *testing.T) {
	c := suggestCatalog()

	got := c.Suggest("Mime")
	assert.NotEmpty(t, got)

	// The synthesized any-variant entry ranks first.
	assert.True(t, got[0].AnyVariant)
	assert.Equal(t, "Mimetism (any)", got[0].Display)

	// Then the unmodified variant, then specific variants by descending
	// first modifier.
	assert.Equal(t, "Mimetism", got[1].Display)
	assert.Equal(t, "Mimetism (-6)", got[2].Display)
	assert.Equal(t, "Mimetism (-3)", got[3].Display)
	assert.Len(t, got, 4)
}

func TestSuggest_DistinctVariants(t *testing.T) {
	c := suggestCatalog()

	got := c.Suggest("mimetism")
	// [6], [3], [], plus the synthesized any entry: shared variants across
	// units are enumerated exactly once.
	assert.Len(t, got, 4)
}

func TestSuggest_NoAnyVariantWithoutModifiers(t *testing.T) {
	c := suggestCatalog()

	got := c.Suggest("Martial Arts")
	assert.Len(t, got, 1)
	assert.False(t, got[0].AnyVariant)
	assert.Equal(t, "Martial Arts", got[0].Display)
}

func TestSuggest_ExactNameBeforeOthers(t *testing.T) {
	c := catalog.New(&models.Metadata{
		Weapons: []models.ItemRecord{
			{ID: 1, Name: "Rifle"},
			{ID: 2, Name: "Rifle Grenade"},
		},
	})
	c.Ingest([]models.RawUnit{
		rawUnit("U", "Unit", nil, models.ProfileGroup{
			Profiles: []models.Profile{{Weapons: []models.ItemRef{ref(2), ref(1)}}},
		}),
	})

	got := c.Suggest("rifle")
	assert.Len(t, got, 2)
	// "Rifle" matches the query exactly and outranks the alphabetically
	// earlier-inserted "Rifle Grenade".
	assert.Equal(t, "Rifle", got[0].Name)
	assert.Equal(t, "Rifle Grenade", got[1].Name)
}

func TestSuggest_CaseInsensitiveFilter(t *testing.T) {
	c := suggestCatalog()

	assert.Equal(t, c.Suggest("MIMETISM"), c.Suggest("mimetism"))
	assert.Empty(t, c.Suggest("no such item"))
}

func TestSuggest_ModifierDisplayFallback(t *testing.T) {
	c := catalog.New(testMetadata())
	// No extras registered: modifier 6 renders as its raw integer.
	c.Ingest([]models.RawUnit{
		rawUnit("U", "Unit", nil, models.ProfileGroup{
			Profiles: []models.Profile{{Skills: []models.ItemRef{ref(201, 6)}}},
		}),
	})

	got := c.Suggest("Mimetism")
	assert.Equal(t, "Mimetism (any)", got[0].Display)
	assert.Equal(t, "Mimetism (6)", got[1].Display)
}

func TestSuggest_ConcurrentFirstAccess(t *testing.T) {
	c := suggestCatalog()

	var wg sync.WaitGroup
	results := make([][]catalog.Suggestion, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Suggest("Mime")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestBuildSuggestions_Explicit(t *testing.T) {
	c := suggestCatalog()
	c.BuildSuggestions()

	got := c.Suggest("Combi")
	assert.Len(t, got, 1)
	assert.Equal(t, "Combi Rifle", got[0].Name)
}
