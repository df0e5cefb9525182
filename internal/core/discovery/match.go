package discovery

import "strings"

// predicate is one active facet compiled against a spec
type predicate struct {
	facet Facet
	match func(Listing) bool
}

// compile turns the active parts of s into predicates
// stipend is always present, the rest only when selected
func (s FilterSpec) compile() []predicate {
	var ps []predicate

	if q := Fold(strings.TrimSpace(s.Search)); q != "" {
		ps = append(ps, predicate{FacetSearch, func(l Listing) bool {
			return strings.Contains(Fold(l.Title), q) ||
				strings.Contains(Fold(l.Company), q) ||
				strings.Contains(Fold(string(l.Domain)), q)
		}})
	}

	if len(s.Domains) > 0 {
		set := toSet(s.Domains)
		ps = append(ps, predicate{FacetDomain, func(l Listing) bool {
			_, ok := set[l.Domain]
			return ok
		}})
	}

	if len(s.LocationModes) > 0 {
		set := toSet(s.LocationModes)
		ps = append(ps, predicate{FacetLocationMode, func(l Listing) bool {
			_, ok := set[l.LocationMode]
			return ok
		}})
	}

	// bucket equality, "3-6" never matches a "1-3" listing
	if s.Duration != "" {
		d := s.Duration
		ps = append(ps, predicate{FacetDuration, func(l Listing) bool { return l.Duration == d }})
	}

	r := s.Stipend
	ps = append(ps, predicate{FacetStipend, func(l Listing) bool { return r.Contains(l.Stipend) }})

	// any overlap is enough
	if len(s.Skills) > 0 {
		set := toSet(s.Skills)
		ps = append(ps, predicate{FacetSkills, func(l Listing) bool {
			for _, sk := range l.Skills {
				if _, ok := set[sk]; ok {
					return true
				}
			}
			return false
		}})
	}

	return ps
}

// Matches reports whether l satisfies every active predicate of s
func (s FilterSpec) Matches(l Listing) bool {
	return matchAll(s.compile(), l, "")
}

// Failing lists the facets whose predicate rejects l
func (s FilterSpec) Failing(l Listing) []Facet {
	var out []Facet
	for _, p := range s.compile() {
		if !p.match(l) {
			out = append(out, p.facet)
		}
	}
	return out
}

// matchAll evaluates ps against l, skipping the predicate for except
func matchAll(ps []predicate, l Listing, except Facet) bool {
	for _, p := range ps {
		if p.facet == except {
			continue
		}
		if !p.match(l) {
			return false
		}
	}
	return true
}

func toSet[T comparable](vs []T) map[T]struct{} {
	m := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		m[v] = struct{}{}
	}
	return m
}
