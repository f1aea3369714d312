package models_test

import (
	"encoding/json"
	"testing"

	"army-catalog/feature/armory/models"

	"github.com/stretchr/testify/assert"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"Number", `42`, 42},
		{"QuotedNumber", `"42"`, 42},
		{"Float", `12.0`, 12},
		{"Garbage", `"n/a"`, 0},
		{"Null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f models.FlexInt
			err := json.Unmarshal([]byte(tt.in), &f)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, f.Int())
		})
	}
}

func TestRawUnit_Decode(t *testing.T) {
	raw := `{
		"id": "123",
		"isc": "Fusiliers",
		"name": "Fusiliers",
		"factions": [101, "102"],
		"profileGroups": [{
			"profiles": [{"weapons": [{"id": 12}], "skills": [{"id": 201, "extra": [6]}]}],
			"options": [{"weapons": [{"id": 13, "extra": ["7", 8]}], "points": 10}, {"weapons": [{"id": 14}]}]
		}]
	}`

	var u models.RawUnit
	err := json.Unmarshal([]byte(raw), &u)
	assert.NoError(t, err)
	assert.Equal(t, 123, u.ID.Int())
	assert.Equal(t, []int{101, 102}, models.Ints(u.Factions))
	assert.Equal(t, "", u.Validate())

	pg := u.ProfileGroups[0]
	assert.Equal(t, 201, pg.Profiles[0].Skills[0].ID.Int())
	assert.Equal(t, []int{6}, models.Ints(pg.Profiles[0].Skills[0].Extra))
	assert.Equal(t, []int{7, 8}, models.Ints(pg.Options[0].Weapons[0].Extra))
	assert.Equal(t, 10, pg.Options[0].Points.Int())
	assert.Nil(t, pg.Options[1].Points)
}

func TestRawUnit_MissingSections(t *testing.T) {
	var u models.RawUnit
	err := json.Unmarshal([]byte(`{"isc": "ISC", "name": "Unit"}`), &u)
	assert.NoError(t, err)
	assert.Empty(t, u.ProfileGroups)
	assert.Empty(t, u.Factions)
	assert.Equal(t, "", u.Validate())
}

func TestRawUnit_Validate(t *testing.T) {
	assert.Equal(t, "missing isc", models.RawUnit{Name: "Unit"}.Validate())
	assert.Equal(t, "missing name", models.RawUnit{ISC: "ISC"}.Validate())
}

func TestSourceDocument_Decode(t *testing.T) {
	raw := `{
		"units": [],
		"filters": {"extras": [{"id": 6, "name": "-6"}, {"id": "7", "name": "+1 SWC"}]},
		"fireteamChart": {"teams": []}
	}`

	var doc models.SourceDocument
	err := json.Unmarshal([]byte(raw), &doc)
	assert.NoError(t, err)
	assert.Len(t, doc.Filters.Extras, 2)
	assert.Equal(t, 7, doc.Filters.Extras[1].ID.Int())
	assert.NotEmpty(t, doc.FireteamChart)
}

func TestMetadata_Decode(t *testing.T) {
	raw := `{
		"factions": [{"id": 1, "parent": 1, "name": "PanOceania", "slug": "panoceania"}],
		"weapons": [{"id": 12, "name": "Combi Rifle", "wiki": "https://example.org/combi"}],
		"skills": [],
		"equips": [{"id": 30, "name": "Multispectral Visor"}],
		"ammunitions": [{"id": 5, "name": "AP"}]
	}`

	var meta models.Metadata
	err := json.Unmarshal([]byte(raw), &meta)
	assert.NoError(t, err)
	assert.Equal(t, 1, meta.Factions[0].ID.Int())
	assert.Equal(t, "Combi Rifle", meta.Weapons[0].Name)
	assert.Len(t, meta.Ammunitions, 1)
}
