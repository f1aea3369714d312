package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Suggestion is one autocomplete entry. AnyVariant entries are synthesized
// per (type, id) that has at least one modified variant and represent "match
// this base item regardless of modifiers".
type Suggestion struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Display    string   `json:"displayName"`
	Type       ItemType `json:"type"`
	Extras     []int    `json:"extras"`
	AnyVariant bool     `json:"anyVariant"`
}

// BuildSuggestions computes the global distinct-variant list eagerly. Calling
// it after ingestion avoids the lazy build on the first query; it is safe to
// skip, in which case the first Suggest call builds the list exactly once.
func (c *Catalog) BuildSuggestions() {
	c.suggestions()
}

// Suggest returns the ranked suggestion entries whose base name contains the
// query, case-insensitively. The full ranked set is returned; truncating to a
// display page is the caller's concern.
func (c *Catalog) Suggest(query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))

	matched := []Suggestion{}
	for _, s := range c.suggestions() {
		if strings.Contains(strings.ToLower(s.Name), q) {
			matched = append(matched, s)
		}
	}

	rankSuggestions(matched, q)
	return matched
}

// suggestions returns the cached distinct-variant list, building it under a
// singleflight guard so concurrent first access performs the work once.
func (c *Catalog) suggestions() []Suggestion {
	c.suggestMu.RLock()
	built := c.suggested
	c.suggestMu.RUnlock()
	if built != nil {
		return built
	}

	result, _, _ := c.suggestSF.Do("build", func() (any, error) {
		c.suggestMu.RLock()
		cached := c.suggested
		c.suggestMu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		list := c.buildSuggestions()

		c.suggestMu.Lock()
		c.suggested = list
		c.suggestMu.Unlock()
		return list, nil
	})

	return result.([]Suggestion)
}

// buildSuggestions enumerates every distinct variant across the catalog and
// synthesizes the any-variant entries.
func (c *Catalog) buildSuggestions() []Suggestion {
	seen := make(map[string]struct{})
	// hasModified tracks (type, id) bases owning at least one variant with a
	// non-empty modifier list.
	hasModified := make(map[string]bool)
	baseSeen := make(map[string]ItemVariant)
	baseOrder := []string{}

	list := []Suggestion{}
	for _, u := range c.units {
		for _, v := range u.Variants {
			baseKey := string(v.Type) + ":" + strconv.Itoa(v.ID)
			if _, ok := baseSeen[baseKey]; !ok {
				baseSeen[baseKey] = v
				baseOrder = append(baseOrder, baseKey)
			}
			if len(v.Extras) > 0 {
				hasModified[baseKey] = true
			}

			key := v.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			list = append(list, Suggestion{
				ID:      v.ID,
				Name:    v.Name,
				Display: c.variantDisplay(v),
				Type:    v.Type,
				Extras:  v.Extras,
			})
		}
	}

	for _, baseKey := range baseOrder {
		if !hasModified[baseKey] {
			continue
		}
		v := baseSeen[baseKey]
		list = append(list, Suggestion{
			ID:         v.ID,
			Name:       v.Name,
			Display:    v.Name + " (any)",
			Type:       v.Type,
			Extras:     []int{},
			AnyVariant: true,
		})
	}

	return list
}

// variantDisplay renders the variant's display name: the base name with each
// modifier's display string appended in parentheses.
func (c *Catalog) variantDisplay(v ItemVariant) string {
	var b strings.Builder
	b.WriteString(v.Name)
	for _, e := range v.Extras {
		b.WriteString(" (")
		b.WriteString(c.ExtraDisplay(e))
		b.WriteString(")")
	}
	return b.String()
}

// rankSuggestions sorts entries with the strict comparator, in priority order:
//  1. base name equals the query exactly (case-insensitive) first;
//  2. entries group by base name alphabetically;
//  3. within a base name the any-variant entry first, then the unmodified
//     variant, then specific variants by descending first modifier.
func rankSuggestions(list []Suggestion, q string) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]

		aName, bName := strings.ToLower(a.Name), strings.ToLower(b.Name)
		aExact, bExact := aName == q, bName == q
		if aExact != bExact {
			return aExact
		}

		if aName != bName {
			return aName < bName
		}

		if a.AnyVariant != b.AnyVariant {
			return a.AnyVariant
		}

		aPlain, bPlain := len(a.Extras) == 0, len(b.Extras) == 0
		if aPlain != bPlain {
			return aPlain
		}
		if !aPlain && a.Extras[0] != b.Extras[0] {
			return a.Extras[0] > b.Extras[0]
		}

		return a.Type < b.Type
	})
}
