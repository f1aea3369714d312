package catalog

import (
	"sort"
	"strings"

	"army-catalog/feature/armory/models"
)

// FactionInfo is a faction record enriched with its derived short display
// name and the HasData flag, set iff the faction's source document was
// successfully loaded.
type FactionInfo struct {
	ID           int    `json:"id"`
	ParentID     int    `json:"parent"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ShortName    string `json:"shortName"`
	Discontinued bool   `json:"discontinued"`
	HasData      bool   `json:"hasData"`
}

// IsSuperGroup reports whether the faction is a super-group, i.e. its own parent.
func (f FactionInfo) IsSuperGroup() bool {
	return f.ID == f.ParentID
}

// FactionGroup is one super-group with its loaded members. Vanilla is the
// super-group's own faction when its source loaded; SubGroups holds only
// sub-groups whose sources loaded, sorted by name.
type FactionGroup struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	ShortName string        `json:"shortName"`
	Vanilla   *FactionInfo  `json:"vanilla,omitempty"`
	SubGroups []FactionInfo `json:"subGroups"`
}

// FactionRegistry reconciles the two-level faction hierarchy against the set
// of successfully loaded sources. It is built once and read-only afterwards.
type FactionRegistry struct {
	infos  map[int]FactionInfo
	groups map[int]*FactionGroup
}

// shortNameOverrides maps full faction names to explicit short names that the
// derivation rules cannot produce.
var shortNameOverrides = map[string]string{
	"PanOceania":         "PanO",
	"Non-Aligned Armies": "NA2",
}

// shortNameSuffixes are trailing organizational words stripped when deriving
// a short name.
var shortNameSuffixes = map[string]struct{}{
	"Force":     {},
	"Army":      {},
	"Division":  {},
	"Corps":     {},
	"Company":   {},
	"Taskforce": {},
	"Brigade":   {},
	"Command":   {},
}

// shortNamePrefixes are leading qualifiers stripped when deriving a short name.
var shortNamePrefixes = map[string]struct{}{
	"The":      {},
	"Imperial": {},
	"Royal":    {},
}

// ShortFactionName derives a compact display name for a faction. An explicit
// override wins; otherwise known trailing suffixes and leading qualifiers are
// stripped, and a result still longer than 15 characters with multiple words
// collapses to its first word.
func ShortFactionName(name string) string {
	if short, ok := shortNameOverrides[name]; ok {
		return short
	}

	words := strings.Fields(name)
	for len(words) > 1 {
		if _, ok := shortNameSuffixes[words[len(words)-1]]; !ok {
			break
		}
		words = words[:len(words)-1]
	}
	for len(words) > 1 {
		if _, ok := shortNamePrefixes[words[0]]; !ok {
			break
		}
		words = words[1:]
	}

	short := strings.Join(words, " ")
	if len(short) > 15 && len(words) > 1 {
		return words[0]
	}
	if short == "" {
		return name
	}
	return short
}

// NewFactionRegistry builds the registry from the metadata faction roster and
// the set of source slugs the loader successfully retrieved.
func NewFactionRegistry(records []models.FactionRecord, loadedSlugs map[string]bool) *FactionRegistry {
	r := &FactionRegistry{
		infos:  make(map[int]FactionInfo),
		groups: make(map[int]*FactionGroup),
	}

	for _, rec := range records {
		info := FactionInfo{
			ID:           rec.ID.Int(),
			ParentID:     rec.Parent.Int(),
			Name:         rec.Name,
			Slug:         rec.Slug,
			ShortName:    ShortFactionName(rec.Name),
			Discontinued: rec.Discontinued,
			HasData:      loadedSlugs[rec.Slug],
		}
		r.infos[info.ID] = info
	}

	// Super-groups first, so sub-groups always find their parent when one
	// exists in the roster regardless of record order.
	for _, info := range r.infos {
		if !info.IsSuperGroup() {
			continue
		}
		group := &FactionGroup{
			ID:        info.ID,
			Name:      info.Name,
			ShortName: info.ShortName,
			SubGroups: []FactionInfo{},
		}
		if info.HasData {
			vanilla := info
			group.Vanilla = &vanilla
		}
		r.groups[info.ID] = group
	}

	for _, info := range r.infos {
		if info.IsSuperGroup() || !info.HasData {
			continue
		}
		group, ok := r.groups[info.ParentID]
		if !ok {
			// Parent record missing from the roster; synthesize a
			// placeholder group rather than dropping the sub-group.
			name := "Unknown"
			if parent, found := r.infos[info.ParentID]; found {
				name = parent.Name
			}
			group = &FactionGroup{
				ID:        info.ParentID,
				Name:      name,
				ShortName: ShortFactionName(name),
				SubGroups: []FactionInfo{},
			}
			r.groups[info.ParentID] = group
		}
		group.SubGroups = append(group.SubGroups, info)
	}

	for _, group := range r.groups {
		sort.Slice(group.SubGroups, func(i, j int) bool {
			return group.SubGroups[i].Name < group.SubGroups[j].Name
		})
	}

	return r
}

// Info returns the faction record for an id.
func (r *FactionRegistry) Info(id int) (FactionInfo, bool) {
	info, ok := r.infos[id]
	return info, ok
}

// Name returns the faction's full name, or the empty string for unknown ids.
func (r *FactionRegistry) Name(id int) string {
	return r.infos[id].Name
}

// ShortName returns the faction's derived short name, or the empty string for
// unknown ids.
func (r *FactionRegistry) ShortName(id int) string {
	return r.infos[id].ShortName
}

// HasData reports whether the faction's source document was loaded.
func (r *FactionRegistry) HasData(id int) bool {
	return r.infos[id].HasData
}

// Groups returns every super-group that has either a loaded vanilla faction
// or at least one loaded sub-group, sorted by name.
func (r *FactionRegistry) Groups() []FactionGroup {
	groups := []FactionGroup{}
	for _, g := range r.groups {
		if g.Vanilla == nil && len(g.SubGroups) == 0 {
			continue
		}
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	return groups
}
