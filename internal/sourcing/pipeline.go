package sourcing

import (
	"sort"
	"strings"

	"stagecraft-crm/models"
)

// CountByStatus aggregates vendors into a status -> count map for the
// pipeline summary. Statuses with no vendors are omitted entirely.
func CountByStatus(vendors []models.SourcedVendor) map[string]int {
	counts := make(map[string]int)
	for _, v := range vendors {
		counts[v.Status]++
	}
	return counts
}

// SortVendors orders vendors for display and export: priority descending,
// then most recently created first. Vendors without a priority sort as zero.
// The sort is stable so equal rows keep their incoming order.
func SortVendors(vendors []models.SourcedVendor) {
	sort.SliceStable(vendors, func(i, j int) bool {
		pi, pj := 0, 0
		if vendors[i].Priority != nil {
			pi = *vendors[i].Priority
		}
		if vendors[j].Priority != nil {
			pj = *vendors[j].Priority
		}
		if pi != pj {
			return pi > pj
		}
		return vendors[i].CreatedAt.After(vendors[j].CreatedAt)
	})
}

// CategoryGroup is one report section: a category and its vendors in display
// order.
type CategoryGroup struct {
	Category string
	Vendors  []models.SourcedVendor
}

// GroupByCategory splits vendors into report sections by category, keeping
// their incoming order within each section. Vendors without a category land
// in a trailing "Other" bucket. Named categories appear in alphabetical
// order.
func GroupByCategory(vendors []models.SourcedVendor) []CategoryGroup {
	byCategory := make(map[string][]models.SourcedVendor)
	var names []string
	var other []models.SourcedVendor

	for _, v := range vendors {
		cat := strings.TrimSpace(v.Category)
		if cat == "" {
			other = append(other, v)
			continue
		}
		if _, ok := byCategory[cat]; !ok {
			names = append(names, cat)
		}
		byCategory[cat] = append(byCategory[cat], v)
	}
	sort.Strings(names)

	groups := make([]CategoryGroup, 0, len(names)+1)
	for _, name := range names {
		groups = append(groups, CategoryGroup{Category: name, Vendors: byCategory[name]})
	}
	if len(other) > 0 {
		groups = append(groups, CategoryGroup{Category: "Other", Vendors: other})
	}
	return groups
}

// SelectNewCandidates returns the candidates whose names do not
// case-insensitively match any existing vendor. Candidates that duplicate
// each other within the same batch are also collapsed to the first
// occurrence. Candidates with a blank name are skipped.
func SelectNewCandidates(existing []models.SourcedVendor, candidates []Candidate) []Candidate {
	taken := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		taken[strings.ToLower(v.Name)] = struct{}{}
	}

	var fresh []Candidate
	for _, c := range candidates {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := taken[key]; ok {
			continue
		}
		taken[key] = struct{}{}
		fresh = append(fresh, c)
	}
	return fresh
}

// Candidate is one vendor suggestion from a saved research result. Every
// field except Name is optional.
type Candidate struct {
	Name       string   `json:"name"`
	Type       string   `json:"type,omitempty"`
	Address    string   `json:"address,omitempty"`
	Website    string   `json:"website,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	PriceRange string   `json:"priceRange,omitempty"`
	Capacity   string   `json:"capacity,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}
