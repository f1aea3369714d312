package catalog_test

import (
	"testing"

	"army-catalog/feature/armory/catalog"
	"army-catalog/feature/armory/models"

	"github.com/stretchr/testify/assert"
)

func faction(id, parent int, name, slug string) models.FactionRecord {
	return models.FactionRecord{
		ID:     models.FlexInt(id),
		Parent: models.FlexInt(parent),
		Name:   name,
		Slug:   slug,
	}
}

func TestShortFactionName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Override", "PanOceania", "PanO"},
		{"OverrideNA2", "Non-Aligned Armies", "NA2"},
		{"SuffixStrip", "Varuna Division", "Varuna"},
		{"LongMultiWord", "Some Long Expeditionary Force", "Some"},
		{"ShortEnough", "Steel Phalanx", "Steel Phalanx"},
		{"LeadingQualifier", "Imperial Service Army", "Service"},
		{"SingleWord", "Ariadna", "Ariadna"},
		{"AllStripped", "The Force", "The"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ShortFactionName(tt.in))
		})
	}
}

func TestFactionRegistry_Grouping(t *testing.T) {
	records := []models.FactionRecord{
		faction(1, 1, "PanOceania", "panoceania"),
		faction(2, 1, "Varuna Division", "varuna"),
		faction(3, 1, "Svalarheima", "svalarheima"),
		faction(10, 10, "Yu Jing", "yujing"),
		faction(11, 10, "Invincible Army", "invincible"),
	}

	loaded := map[string]bool{
		"panoceania": true,
		"varuna":     true,
		"svalarheima": false, // source failed to load
		"invincible": true,
		// yujing itself not loaded
	}

	r := catalog.NewFactionRegistry(records, loaded)
	groups := r.Groups()

	assert.Len(t, groups, 2)
	// Sorted by name: PanOceania before Yu Jing.
	pano, yujing := groups[0], groups[1]

	assert.Equal(t, "PanOceania", pano.Name)
	assert.Equal(t, "PanO", pano.ShortName)
	assert.NotNil(t, pano.Vanilla)
	// The failed sub-group is absent but does not block the group.
	assert.Len(t, pano.SubGroups, 1)
	assert.Equal(t, "Varuna Division", pano.SubGroups[0].Name)

	// Yu Jing's own source failed but a sub-group loaded, so it still lists.
	assert.Equal(t, "Yu Jing", yujing.Name)
	assert.Nil(t, yujing.Vanilla)
	assert.Len(t, yujing.SubGroups, 1)
}

func TestFactionRegistry_GroupWithNoDataExcluded(t *testing.T) {
	records := []models.FactionRecord{
		faction(1, 1, "PanOceania", "panoceania"),
	}

	r := catalog.NewFactionRegistry(records, map[string]bool{})
	assert.Empty(t, r.Groups())
}

func TestFactionRegistry_PlaceholderParent(t *testing.T) {
	// Sub-group referencing a parent missing from the roster entirely.
	records := []models.FactionRecord{
		faction(21, 20, "Shock Army", "shock"),
	}

	r := catalog.NewFactionRegistry(records, map[string]bool{"shock": true})
	groups := r.Groups()

	assert.Len(t, groups, 1)
	assert.Equal(t, "Unknown", groups[0].Name)
	assert.Nil(t, groups[0].Vanilla)
	assert.Len(t, groups[0].SubGroups, 1)
}

func TestFactionRegistry_SubGroupsSorted(t *testing.T) {
	records := []models.FactionRecord{
		faction(1, 1, "PanOceania", "panoceania"),
		faction(2, 1, "Varuna Division", "varuna"),
		faction(3, 1, "Acontecimento", "acontecimento"),
	}
	loaded := map[string]bool{"panoceania": true, "varuna": true, "acontecimento": true}

	r := catalog.NewFactionRegistry(records, loaded)
	groups := r.Groups()

	assert.Len(t, groups, 1)
	assert.Equal(t, "Acontecimento", groups[0].SubGroups[0].Name)
	assert.Equal(t, "Varuna Division", groups[0].SubGroups[1].Name)
}

func TestFactionRegistry_Lookups(t *testing.T) {
	records := []models.FactionRecord{
		faction(1, 1, "PanOceania", "panoceania"),
		faction(2, 1, "Varuna Division", "varuna"),
	}
	loaded := map[string]bool{"panoceania": true}

	r := catalog.NewFactionRegistry(records, loaded)

	assert.Equal(t, "PanOceania", r.Name(1))
	assert.Equal(t, "PanO", r.ShortName(1))
	assert.True(t, r.HasData(1))
	assert.False(t, r.HasData(2))

	info, ok := r.Info(2)
	assert.True(t, ok)
	assert.False(t, info.IsSuperGroup())
	assert.Equal(t, "Varuna", info.ShortName)

	_, ok = r.Info(99)
	assert.False(t, ok)
	assert.Equal(t, "", r.Name(99))
	assert.False(t, r.HasData(99))
}
