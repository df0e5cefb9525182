package discovery

import (
	"strconv"
	"strings"
	"time"
)

// Recency is when a listing was posted
// sources either know the instant or only a relative age like "3d ago"
type Recency struct {
	At  time.Time `json:"at,omitzero"`
	Ago string    `json:"ago,omitempty"`
}

// PostedAt builds an absolute recency
func PostedAt(t time.Time) Recency { return Recency{At: t.UTC()} }

// PostedAgo builds a relative recency
func PostedAgo(s string) Recency { return Recency{Ago: strings.TrimSpace(s)} }

// IsZero reports whether nothing is known about the posting time
func (r Recency) IsZero() bool { return r.At.IsZero() && r.Ago == "" }

// Resolve returns the posting instant, using now to anchor relative ages
// ok is false when the recency is empty or the age cannot be parsed
func (r Recency) Resolve(now time.Time) (time.Time, bool) {
	if !r.At.IsZero() {
		return r.At, true
	}
	if r.Ago == "" {
		return time.Time{}, false
	}
	d, err := ParseAge(r.Ago)
	if err != nil {
		return time.Time{}, false
	}
	return now.Add(-d), true
}

var ageUnits = map[string]time.Duration{
	"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
	"w": 7 * 24 * time.Hour, "wk": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
	"mo": 30 * 24 * time.Hour, "month": 30 * 24 * time.Hour, "months": 30 * 24 * time.Hour,
}

// ParseAge parses relative ages such as "3d ago", "2 weeks ago", "5h" and "just now"
func ParseAge(s string) (time.Duration, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.TrimSpace(strings.TrimSuffix(t, "ago"))
	switch t {
	case "just now", "now", "today":
		return 0, nil
	case "yesterday":
		return 24 * time.Hour, nil
	case "":
		return 0, invalidSpec("posted", "empty age")
	}

	// split "3d" or "3 d" into number and unit
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, invalidSpec("posted", "age %q has no count", s)
	}
	n, err := strconv.Atoi(t[:i])
	if err != nil {
		return 0, invalidSpec("posted", "age %q: %v", s, err)
	}
	unit, ok := ageUnits[strings.TrimSpace(t[i:])]
	if !ok {
		return 0, invalidSpec("posted", "age %q has unknown unit", s)
	}
	return time.Duration(n) * unit, nil
}
