package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Operator combines multiple filters in a search.
type Operator string

const (
	OpAnd Operator = "and"
	OpOr  Operator = "or"
)

// ParseOperator normalizes a textual operator. Anything other than "and" or
// "or" (case-insensitive) is rejected.
func ParseOperator(s string) (Operator, error) {
	switch Operator(strings.ToLower(s)) {
	case OpAnd:
		return OpAnd, nil
	case OpOr:
		return OpOr, nil
	default:
		return "", fmt.Errorf("unknown operator %q", s)
	}
}

// Filter is a single search criterion. A unit satisfies the filter iff at
// least one of its item variants has the same type and base id, and either
// MatchAnyExtra is set or the modifier lists compare equal positionally
// (two empty lists are equal).
type Filter struct {
	Type          ItemType `json:"type"`
	ID            int      `json:"id"`
	Extras        []int    `json:"extras"`
	MatchAnyExtra bool     `json:"matchAnyExtra"`
}

// Matches reports whether the unit satisfies the filter.
func (f Filter) Matches(u *Unit) bool {
	for _, v := range u.Variants {
		if v.Type != f.Type || v.ID != f.ID {
			continue
		}
		if f.MatchAnyExtra {
			return true
		}
		if extrasEqual(f.Extras, v.Extras) {
			return true
		}
	}
	return false
}

// extrasEqual compares modifier lists positionally. Order matters; the lists
// are never normalized before comparison.
func extrasEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Search evaluates a filter set against the catalog. With OpAnd every filter
// must be satisfied by the unit; with OpOr at least one. An empty filter set
// yields an empty result, not the full catalog. The result is ordered by
// unit name, then ISC for stability.
func (c *Catalog) Search(filters []Filter, op Operator) []*Unit {
	results := []*Unit{}
	if len(filters) == 0 {
		return results
	}

	for _, u := range c.units {
		if matchesAll(u, filters, op) {
			results = append(results, u)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].ISC < results[j].ISC
	})

	return results
}

func matchesAll(u *Unit, filters []Filter, op Operator) bool {
	for _, f := range filters {
		matched := f.Matches(u)
		if op == OpOr && matched {
			return true
		}
		if op != OpOr && !matched {
			return false
		}
	}
	return op != OpOr
}
