package catalog

import (
	"army-catalog/core/utils"
	"army-catalog/feature/armory/models"
)

// RegisterExtras merges a source's modifier-display table into the catalog.
// The first-seen mapping for a given id wins across sources.
func (c *Catalog) RegisterExtras(extras []models.ExtraRecord) {
	for _, e := range extras {
		id := e.ID.Int()
		if _, seen := c.extras[id]; !seen {
			c.extras[id] = e.Name
		}
	}
}

// Ingest merges a batch of raw unit records into the catalog. It is
// idempotent per batch: a record whose ISC code is already known merges its
// faction list into the existing unit instead of creating a duplicate.
// Item indices always derive from the first-seen record; subsequent
// occurrences of an ISC never extend them.
func (c *Catalog) Ingest(units []models.RawUnit) {
	for _, raw := range units {
		if reason := raw.Validate(); reason != "" {
			c.skipped[reason]++
			continue
		}

		if existing, ok := c.byISC[raw.ISC]; ok {
			c.mergeFactions(existing, raw)
			continue
		}

		c.addUnit(raw)
	}
}

// mergeFactions unions the incoming faction ids into the existing unit.
func (c *Catalog) mergeFactions(u *Unit, raw models.RawUnit) {
	changed := false
	for _, fid := range models.Ints(raw.Factions) {
		if _, ok := u.factionSet[fid]; !ok {
			u.factionSet[fid] = struct{}{}
			changed = true
		}
	}
	if changed {
		u.refreshFactionIDs()
	}
}

// addUnit constructs a new catalog entry from a first-seen raw record.
func (c *Catalog) addUnit(raw models.RawUnit) {
	u := &Unit{
		ID:         raw.ID.Int(),
		ISC:        raw.ISC,
		Name:       raw.Name,
		Variants:   []ItemVariant{},
		factionSet: make(map[int]struct{}),
		weaponIDs:  make(map[int]struct{}),
		skillIDs:   make(map[int]struct{}),
		equipIDs:   make(map[int]struct{}),
		variantSet: make(map[string]struct{}),
	}

	for _, fid := range models.Ints(raw.Factions) {
		u.factionSet[fid] = struct{}{}
	}
	u.refreshFactionIDs()

	pointsSeen := false
	for _, pg := range raw.ProfileGroups {
		for _, p := range pg.Profiles {
			c.indexRefs(u, ItemWeapon, p.Weapons)
			c.indexRefs(u, ItemSkill, p.Skills)
			c.indexRefs(u, ItemEquipment, p.Equip)
		}
		for _, opt := range pg.Options {
			c.indexRefs(u, ItemWeapon, opt.Weapons)
			c.indexRefs(u, ItemSkill, opt.Skills)
			c.indexRefs(u, ItemEquipment, opt.Equip)

			if opt.Points == nil {
				continue
			}
			pts := opt.Points.Int()
			if !pointsSeen {
				u.MinPoints, u.MaxPoints = pts, pts
				pointsSeen = true
				continue
			}
			if pts < u.MinPoints {
				u.MinPoints = pts
			}
			if pts > u.MaxPoints {
				u.MaxPoints = pts
			}
		}
	}

	c.units = append(c.units, u)
	c.byISC[raw.ISC] = u
	c.registerSlugs(u, raw.Slug)
}

// indexRefs adds each reference's base id to the matching id set and upserts
// its variant. The first occurrence of a (type, id, modifiers) key wins;
// later identical keys are no-ops.
func (c *Catalog) indexRefs(u *Unit, t ItemType, refs []models.ItemRef) {
	for _, ref := range refs {
		id := ref.ID.Int()

		switch t {
		case ItemWeapon:
			u.weaponIDs[id] = struct{}{}
		case ItemSkill:
			u.skillIDs[id] = struct{}{}
		case ItemEquipment:
			u.equipIDs[id] = struct{}{}
		}

		v := ItemVariant{
			Type:   t,
			ID:     id,
			Extras: models.Ints(ref.Extra),
			Name:   c.ItemName(t, id),
		}
		key := v.Key()
		if _, seen := u.variantSet[key]; seen {
			continue
		}
		u.variantSet[key] = struct{}{}
		u.Variants = append(u.Variants, v)
	}
}

// registerSlugs indexes the unit under every slug key that must resolve back
// to it: the source slug when present, the raw ISC code, and the normalized
// ISC slug. Existing keys are never overwritten, so the first unit registered
// under a key keeps it.
func (c *Catalog) registerSlugs(u *Unit, sourceSlug string) {
	keys := []string{u.ISC, utils.Slugify(u.ISC)}
	if sourceSlug != "" {
		keys = append([]string{sourceSlug}, keys...)
		u.Slug = sourceSlug
	} else {
		u.Slug = utils.Slugify(u.ISC)
	}

	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, taken := c.bySlug[key]; !taken {
			c.bySlug[key] = u
		}
	}
}
