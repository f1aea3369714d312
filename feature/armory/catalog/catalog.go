package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"army-catalog/feature/armory/models"

	"golang.org/x/sync/singleflight"
)

// ItemType identifies the kind of item a variant or filter refers to.
type ItemType string

const (
	ItemWeapon    ItemType = "weapon"
	ItemSkill     ItemType = "skill"
	ItemEquipment ItemType = "equipment"
	// ItemAmmo exists for name and wiki lookups only; ammunition never
	// appears as a unit item variant.
	ItemAmmo ItemType = "ammunition"
)

// ItemVariant is a resolved (type, base id, ordered modifiers) configuration
// of an item reference, e.g. Mimetism with the -6 modifier. Two variants are
// the same variant iff type, id and the modifier list compare equal
// element-by-element.
type ItemVariant struct {
	Type   ItemType `json:"type"`
	ID     int      `json:"id"`
	Extras []int    `json:"extras"`
	Name   string   `json:"name"`
}

// Key returns the identity key of the variant. Modifier order is preserved:
// (201, [6,7]) and (201, [7,6]) are distinct variants.
func (v ItemVariant) Key() string {
	parts := make([]string, 0, len(v.Extras))
	for _, e := range v.Extras {
		parts = append(parts, fmt.Sprintf("%d", e))
	}
	return fmt.Sprintf("%s:%d:%s", v.Type, v.ID, strings.Join(parts, ","))
}

// Unit is a deduplicated catalog entry. Units are unique per ISC code and
// immutable once the catalog is initialized.
type Unit struct {
	ID         int           `json:"id"`
	ISC        string        `json:"isc"`
	Name       string        `json:"name"`
	Slug       string        `json:"slug"`
	FactionIDs []int         `json:"factions"`
	Variants   []ItemVariant `json:"variants"`
	MinPoints  int           `json:"minPoints"`
	MaxPoints  int           `json:"maxPoints"`

	factionSet map[int]struct{}
	weaponIDs  map[int]struct{}
	skillIDs   map[int]struct{}
	equipIDs   map[int]struct{}
	variantSet map[string]struct{}
}

// HasWeapon reports whether the unit carries the weapon in any profile or option.
func (u *Unit) HasWeapon(id int) bool {
	_, ok := u.weaponIDs[id]
	return ok
}

// HasSkill reports whether the unit carries the skill in any profile or option.
func (u *Unit) HasSkill(id int) bool {
	_, ok := u.skillIDs[id]
	return ok
}

// HasEquipment reports whether the unit carries the equipment in any profile or option.
func (u *Unit) HasEquipment(id int) bool {
	_, ok := u.equipIDs[id]
	return ok
}

// InFaction reports whether the unit belongs to the faction group.
func (u *Unit) InFaction(id int) bool {
	_, ok := u.factionSet[id]
	return ok
}

// refreshFactionIDs recomputes the exported sorted faction list from the set.
func (u *Unit) refreshFactionIDs() {
	u.FactionIDs = make([]int, 0, len(u.factionSet))
	for id := range u.factionSet {
		u.FactionIDs = append(u.FactionIDs, id)
	}
	sort.Ints(u.FactionIDs)
}

// Catalog is the immutable, queryable store of deduplicated units plus the
// global name tables. It is built once during initialization and safe for
// concurrent readers afterwards.
type Catalog struct {
	units  []*Unit
	byISC  map[string]*Unit
	bySlug map[string]*Unit

	names map[ItemType]map[int]string
	wikis map[ItemType]map[int]string

	// extras is the modifier-display table merged from the per-source
	// filter sections, first-seen mapping wins.
	extras map[int]string

	// skipped counts raw records rejected during ingestion, by reason.
	skipped map[string]int

	suggestMu sync.RWMutex
	suggestSF singleflight.Group
	suggested []Suggestion
}

// New creates an empty catalog with name tables resolved from the metadata
// document. A nil metadata is tolerated; every lookup then degrades to its
// fallback value.
func New(meta *models.Metadata) *Catalog {
	c := &Catalog{
		byISC:  make(map[string]*Unit),
		bySlug: make(map[string]*Unit),
		names: map[ItemType]map[int]string{
			ItemWeapon:    {},
			ItemSkill:     {},
			ItemEquipment: {},
			ItemAmmo:      {},
		},
		wikis: map[ItemType]map[int]string{
			ItemWeapon:    {},
			ItemSkill:     {},
			ItemEquipment: {},
			ItemAmmo:      {},
		},
		extras:  make(map[int]string),
		skipped: make(map[string]int),
	}

	if meta != nil {
		c.registerItems(ItemWeapon, meta.Weapons)
		c.registerItems(ItemSkill, meta.Skills)
		c.registerItems(ItemEquipment, meta.Equips)
		c.registerItems(ItemAmmo, meta.Ammunitions)
	}

	return c
}

func (c *Catalog) registerItems(t ItemType, records []models.ItemRecord) {
	for _, r := range records {
		c.names[t][r.ID.Int()] = r.Name
		if r.Wiki != "" {
			c.wikis[t][r.ID.Int()] = r.Wiki
		}
	}
}

// ItemName resolves the display name of an item. Unknown ids resolve to the
// deterministic fallback "<Type> <id>", e.g. "Weapon 999".
func (c *Catalog) ItemName(t ItemType, id int) string {
	if name, ok := c.names[t][id]; ok {
		return name
	}
	return fmt.Sprintf("%s %d", titleCase(string(t)), id)
}

// WikiLink returns the wiki URL registered for an item, if any.
func (c *Catalog) WikiLink(t ItemType, id int) (string, bool) {
	link, ok := c.wikis[t][id]
	return link, ok
}

// ExtraDisplay resolves the display string of a modifier id. Unknown ids
// fall back to the raw integer.
func (c *Catalog) ExtraDisplay(id int) string {
	if s, ok := c.extras[id]; ok {
		return s
	}
	return fmt.Sprintf("%d", id)
}

// Units returns all catalog entries in ingestion order.
func (c *Catalog) Units() []*Unit {
	return c.units
}

// UnitCount returns the number of deduplicated units.
func (c *Catalog) UnitCount() int {
	return len(c.units)
}

// UnitByISC looks up a unit by its exact ISC code.
func (c *Catalog) UnitByISC(isc string) (*Unit, bool) {
	u, ok := c.byISC[isc]
	return u, ok
}

// UnitBySlug looks up a unit by any of its registered slug keys: the source
// slug, the raw ISC code, or the normalized ISC slug.
func (c *Catalog) UnitBySlug(slug string) (*Unit, bool) {
	u, ok := c.bySlug[slug]
	return u, ok
}

// Skipped returns the count of raw records rejected during ingestion,
// keyed by rejection reason.
func (c *Catalog) Skipped() map[string]int {
	return c.skipped
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
