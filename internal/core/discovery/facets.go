package discovery

import (
	"cmp"
	"slices"
)

// FacetCount is how many listings a facet value would yield
type FacetCount struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

// Facets carries per value counts for every filter widget
// each facet is counted against the listings matching all the other active predicates
// so selecting one value never zeroes out its siblings
type Facets struct {
	Total         int          `json:"total"`
	Domains       []FacetCount `json:"domains"`
	LocationModes []FacetCount `json:"location_modes"`
	Durations     []FacetCount `json:"durations"`
	Skills        []FacetCount `json:"skills"`
	Bounds        StipendRange `json:"bounds"`
}

// ComputeFacets counts facet values over listings for spec
func ComputeFacets(listings []Listing, spec FilterSpec) (Facets, error) {
	if err := spec.Validate(); err != nil {
		return Facets{}, err
	}
	ps := spec.compile()

	domains := map[Domain]int{}
	modes := map[LocationMode]int{}
	durations := map[Duration]int{}
	skills := map[string]int{}
	total := 0

	for _, l := range listings {
		if matchAll(ps, l, "") {
			total++
		}
		if matchAll(ps, l, FacetDomain) {
			domains[l.Domain]++
		}
		if matchAll(ps, l, FacetLocationMode) {
			modes[l.LocationMode]++
		}
		if matchAll(ps, l, FacetDuration) {
			durations[l.Duration]++
		}
		if matchAll(ps, l, FacetSkills) {
			// a listing naming the same skill twice still counts once
			seen := map[string]struct{}{}
			for _, sk := range l.Skills {
				if _, dup := seen[sk]; dup {
					continue
				}
				seen[sk] = struct{}{}
				skills[sk]++
			}
		}
	}

	out := Facets{
		Total:         total,
		Domains:       enumCounts(Domains, domains, spec.Domains),
		LocationModes: enumCounts(LocationModes, modes, spec.LocationModes),
		Durations:     enumCounts(Durations, durations, selectedDuration(spec.Duration)),
		Skills:        skillCounts(skills, spec.Skills),
		Bounds:        Bounds(listings),
	}
	return out, nil
}

// enumCounts reports every known value in its canonical order, zero counts included
func enumCounts[T ~string](known []T, counts map[T]int, selected []T) []FacetCount {
	out := make([]FacetCount, 0, len(known))
	for _, k := range known {
		out = append(out, FacetCount{
			Value:    string(k),
			Count:    counts[k],
			Selected: slices.Contains(selected, k),
		})
	}
	return out
}

// skillCounts orders by count then name, selected skills always appear
func skillCounts(counts map[string]int, selected []string) []FacetCount {
	for _, s := range selected {
		if _, ok := counts[s]; !ok {
			counts[s] = 0
		}
	}
	out := make([]FacetCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, FacetCount{Value: k, Count: n, Selected: slices.Contains(selected, k)})
	}
	slices.SortFunc(out, func(a, b FacetCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

func selectedDuration(d Duration) []Duration {
	if d == "" {
		return nil
	}
	return []Duration{d}
}
