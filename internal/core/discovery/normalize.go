package discovery

import (
	"slices"
	"strings"
)

// the helpers below never touch their receiver
// each returns a new spec with exactly one facet changed

// ToggleDomain adds d when absent and removes it when present
func (s FilterSpec) ToggleDomain(d Domain) FilterSpec {
	c := s.Clone()
	c.Domains = toggle(c.Domains, d)
	return c
}

// ToggleLocationMode adds m when absent and removes it when present
func (s FilterSpec) ToggleLocationMode(m LocationMode) FilterSpec {
	c := s.Clone()
	c.LocationModes = toggle(c.LocationModes, m)
	return c
}

// ToggleSkill adds skill when absent and removes it when present
func (s FilterSpec) ToggleSkill(skill string) FilterSpec {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return s.Clone()
	}
	c := s.Clone()
	c.Skills = toggle(c.Skills, skill)
	return c
}

// WithSearch replaces the search text
func (s FilterSpec) WithSearch(q string) FilterSpec {
	c := s.Clone()
	c.Search = q
	return c
}

// WithDuration replaces the duration bucket, "" clears it
func (s FilterSpec) WithDuration(d Duration) FilterSpec {
	c := s.Clone()
	c.Duration = d
	return c
}

// WithStipendRange replaces the stipend window
func (s FilterSpec) WithStipendRange(r StipendRange) FilterSpec {
	c := s.Clone()
	c.Stipend = r
	return c
}

// Cleared returns the canonical default spec for bounds
// the receiver is only there so call sites read naturally
func (s FilterSpec) Cleared(bounds StipendRange) FilterSpec { return Default(bounds) }

// toggle works on a fresh slice, in and out never share a backing array
// removal drops every copy of v, a hand built spec may repeat values
func toggle[T comparable](in []T, v T) []T {
	if slices.Contains(in, v) {
		return slices.DeleteFunc(slices.Clone(in), func(x T) bool { return x == v })
	}
	return append(slices.Clone(in), v)
}
