package models

import (
	"encoding/json"

	"army-catalog/core/utils"
)

// FlexInt is an int that tolerates the numeric encoding drift in scraped army
// documents: ids arrive as JSON numbers in some sources and quoted strings in
// others. Anything unparsable decodes to zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexInt(utils.ToInt(v))
	return nil
}

// Int returns the plain int value.
func (f FlexInt) Int() int {
	return int(f)
}

// Ints converts a FlexInt slice to a plain int slice, preserving order.
// A nil input yields an empty (non-nil) slice so modifier lists are never nil.
func Ints(in []FlexInt) []int {
	out := make([]int, 0, len(in))
	for _, v := range in {
		out = append(out, v.Int())
	}
	return out
}

// Metadata represents the structure of metadata.json: the faction roster and
// the global id->name tables for weapons, skills, equipment and ammunition.
type Metadata struct {
	Factions    []FactionRecord `json:"factions"`
	Weapons     []ItemRecord    `json:"weapons"`
	Skills      []ItemRecord    `json:"skills"`
	Equips      []ItemRecord    `json:"equips"`
	Ammunitions []ItemRecord    `json:"ammunitions"`
}

// FactionRecord is a single faction entry from the metadata document.
// A faction whose id equals its parent id is a super-group; all other
// factions are sub-groups of their parent.
type FactionRecord struct {
	ID           FlexInt `json:"id"`
	Parent       FlexInt `json:"parent"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Discontinued bool    `json:"discontinued,omitempty"`
	Logo         string  `json:"logo,omitempty"`
}

// ItemRecord is a single weapon/skill/equipment/ammunition name entry.
type ItemRecord struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
	Wiki string  `json:"wiki,omitempty"`
}

// SourceDocument represents one per-faction data document.
// The fireteam chart section is carried by the upstream documents but is not
// consumed here; it is decoded into a raw message so callers that need it can
// forward it untouched.
type SourceDocument struct {
	Units         []RawUnit       `json:"units"`
	Filters       *FilterData     `json:"filters,omitempty"`
	FireteamChart json.RawMessage `json:"fireteamChart,omitempty"`
}

// FilterData holds the per-source filter tables. Extras entries define the
// modifier-display lookup (modifier id -> human readable string, e.g. "+1 SWC").
type FilterData struct {
	Extras []ExtraRecord `json:"extras"`
}

// ExtraRecord maps a modifier id to its display string.
type ExtraRecord struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
}

// RawUnit is a unit's raw shape as delivered by a source document.
type RawUnit struct {
	ID            FlexInt        `json:"id"`
	ISC           string         `json:"isc"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug,omitempty"`
	Factions      []FlexInt      `json:"factions"`
	ProfileGroups []ProfileGroup `json:"profileGroups"`
}

// Validate checks if the raw unit has the minimum required fields.
// It returns an empty string when valid, or the reason otherwise.
func (u RawUnit) Validate() string {
	if u.ISC == "" {
		return "missing isc"
	}
	if u.Name == "" {
		return "missing name"
	}
	return ""
}

// ProfileGroup groups the profiles and loadout options of a unit.
type ProfileGroup struct {
	Profiles []Profile `json:"profiles"`
	Options  []Option  `json:"options"`
}

// ItemRef is a reference to a weapon, skill or equipment item, optionally
// carrying an ordered list of modifier ids ("extras"). Order is significant:
// modifier lists are compared and keyed positionally.
type ItemRef struct {
	ID    FlexInt   `json:"id"`
	Extra []FlexInt `json:"extra,omitempty"`
}

// Profile is a stat line of a unit carrying its item references.
type Profile struct {
	Skills  []ItemRef `json:"skills"`
	Equip   []ItemRef `json:"equip"`
	Weapons []ItemRef `json:"weapons"`
}

// Option is a selectable loadout of a unit. In addition to item references it
// carries the points cost of the selection. Points is a pointer so an option
// without a points key contributes nothing to the unit's points range.
type Option struct {
	Skills  []ItemRef `json:"skills"`
	Equip   []ItemRef `json:"equip"`
	Weapons []ItemRef `json:"weapons"`
	Points  *FlexInt  `json:"points,omitempty"`
}
