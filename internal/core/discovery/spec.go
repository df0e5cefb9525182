package discovery

import (
	"slices"
	"strings"
)

// Facet names one filterable dimension
type Facet string

// facets in evaluation order
const (
	FacetSearch       Facet = "search"
	FacetDomain       Facet = "domain"
	FacetLocationMode Facet = "location_mode"
	FacetDuration     Facet = "duration"
	FacetStipend      Facet = "stipend"
	FacetSkills       Facet = "skills"
)

// StipendRange is an inclusive [Min, Max] stipend window
type StipendRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v is inside the range, bounds included
func (r StipendRange) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Bounds returns the stipend range spanning every listing
// an empty candidate set yields [0, 0]
func Bounds(listings []Listing) StipendRange {
	if len(listings) == 0 {
		return StipendRange{}
	}
	r := StipendRange{Min: listings[0].Stipend, Max: listings[0].Stipend}
	for _, l := range listings[1:] {
		r.Min = min(r.Min, l.Stipend)
		r.Max = max(r.Max, l.Stipend)
	}
	return r
}

// FilterSpec is the complete description of a query
// treat it as a value: every helper in this package returns a fresh spec
type FilterSpec struct {
	Search        string         `json:"search"`
	Domains       []Domain       `json:"domains"`
	LocationModes []LocationMode `json:"location_modes"`
	Duration      Duration       `json:"duration"`
	Stipend       StipendRange   `json:"stipend"`
	Skills        []string       `json:"skills"`
}

// Default returns the cleared spec for a candidate set with the given stipend bounds
func Default(bounds StipendRange) FilterSpec {
	return FilterSpec{
		Domains:       []Domain{},
		LocationModes: []LocationMode{},
		Skills:        []string{},
		Stipend:       bounds,
	}
}

// DefaultFor is Default over the bounds of listings
func DefaultFor(listings []Listing) FilterSpec { return Default(Bounds(listings)) }

// Validate reports structural problems as ErrInvalidFilterSpec
func (s FilterSpec) Validate() error {
	if s.Stipend.Min > s.Stipend.Max {
		return invalidSpec("stipend", "stipend min %d exceeds max %d", s.Stipend.Min, s.Stipend.Max)
	}
	for _, d := range s.Domains {
		if !d.Valid() {
			return invalidSpec("domains", "unknown domain %q", d)
		}
	}
	for _, m := range s.LocationModes {
		if !m.Valid() {
			return invalidSpec("location_modes", "unknown location mode %q", m)
		}
	}
	if s.Duration != "" && !s.Duration.Valid() {
		return invalidSpec("duration", "unknown duration %q", s.Duration)
	}
	return nil
}

// Clone returns a deep copy so callers can derive a new spec safely
func (s FilterSpec) Clone() FilterSpec {
	c := s
	c.Domains = slices.Clone(s.Domains)
	c.LocationModes = slices.Clone(s.LocationModes)
	c.Skills = slices.Clone(s.Skills)
	return c
}

// Equal compares two specs with set semantics on the set-typed fields
func (s FilterSpec) Equal(o FilterSpec) bool {
	return strings.TrimSpace(s.Search) == strings.TrimSpace(o.Search) &&
		s.Duration == o.Duration &&
		s.Stipend == o.Stipend &&
		sameSet(s.Domains, o.Domains) &&
		sameSet(s.LocationModes, o.LocationModes) &&
		sameSet(s.Skills, o.Skills)
}

// Active lists the facets that narrow results
// stipend counts only when it differs from the candidate bounds
func (s FilterSpec) Active(bounds StipendRange) []Facet {
	out := []Facet{}
	// same test the search predicate uses, invisible runes alone do not narrow
	if Fold(s.Search) != "" {
		out = append(out, FacetSearch)
	}
	if len(s.Domains) > 0 {
		out = append(out, FacetDomain)
	}
	if len(s.LocationModes) > 0 {
		out = append(out, FacetLocationMode)
	}
	if s.Duration != "" {
		out = append(out, FacetDuration)
	}
	if s.Stipend != bounds {
		out = append(out, FacetStipend)
	}
	if len(s.Skills) > 0 {
		out = append(out, FacetSkills)
	}
	return out
}

// HasActive reports whether any facet narrows results
func (s FilterSpec) HasActive(bounds StipendRange) bool { return len(s.Active(bounds)) > 0 }

func sameSet[T comparable](a, b []T) bool {
	as := make(map[T]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[T]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}
