// Package discovery is the internship discovery engine
// it filters, orders, paginates and facets an already resolved candidate set
// every operation here is a pure function of its inputs
package discovery

import (
	"strconv"
	"strings"
	"time"

	perr "internhub/internal/platform/errors"
)

// Domain is the category a listing belongs to
type Domain string

// known domains, in the order filter widgets show them
const (
	DomainSoftwareDevelopment Domain = "Software Development"
	DomainDataScience         Domain = "Data Science"
	DomainMarketing           Domain = "Marketing"
	DomainDesign              Domain = "Design"
	DomainBusinessDevelopment Domain = "Business Development"
	DomainContentWriting      Domain = "Content Writing"
	DomainHumanResources      Domain = "Human Resources"
	DomainFinance             Domain = "Finance"
	DomainOperations          Domain = "Operations"
)

// Domains lists every known domain
var Domains = []Domain{
	DomainSoftwareDevelopment,
	DomainDataScience,
	DomainMarketing,
	DomainDesign,
	DomainBusinessDevelopment,
	DomainContentWriting,
	DomainHumanResources,
	DomainFinance,
	DomainOperations,
}

// Valid reports whether d is one of the known domains
func (d Domain) Valid() bool {
	for _, k := range Domains {
		if d == k {
			return true
		}
	}
	return false
}

// ParseDomain maps free-form input onto a known domain, ignoring case and spacing
func ParseDomain(s string) (Domain, bool) {
	key := compactKey(s)
	for _, k := range Domains {
		if compactKey(string(k)) == key {
			return k, true
		}
	}
	return "", false
}

// LocationMode is where the work happens
type LocationMode string

// known location modes
const (
	ModeRemote LocationMode = "remote"
	ModeOnSite LocationMode = "on-site"
	ModeHybrid LocationMode = "hybrid"
)

// LocationModes lists every known location mode
var LocationModes = []LocationMode{ModeRemote, ModeOnSite, ModeHybrid}

// Valid reports whether m is one of the known location modes
func (m LocationMode) Valid() bool {
	return m == ModeRemote || m == ModeOnSite || m == ModeHybrid
}

// ParseLocationMode accepts "On-site", "onsite", "in office" style spellings
func ParseLocationMode(s string) (LocationMode, bool) {
	switch compactKey(s) {
	case "remote", "wfh", "workfromhome":
		return ModeRemote, true
	case "onsite", "inoffice", "office":
		return ModeOnSite, true
	case "hybrid":
		return ModeHybrid, true
	}
	return "", false
}

// Duration is a duration bucket in months
type Duration string

// known duration buckets
const (
	DurationShort  Duration = "1-3"
	DurationMedium Duration = "3-6"
	DurationLong   Duration = "6+"
)

// Durations lists every known duration bucket
var Durations = []Duration{DurationShort, DurationMedium, DurationLong}

// Valid reports whether d is one of the known buckets
func (d Duration) Valid() bool {
	return d == DurationShort || d == DurationMedium || d == DurationLong
}

// ParseDuration accepts a bucket label or a month count like "3 months"
// month counts land in the lowest bucket that contains them
func ParseDuration(s string) (Duration, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return "", false
	}
	for _, d := range Durations {
		if t == string(d) || strings.TrimSuffix(t, " months") == string(d) {
			return d, true
		}
	}
	f := strings.Fields(t)
	n, err := strconv.Atoi(f[0])
	if err != nil || n < 1 {
		return "", false
	}
	if len(f) > 1 && !strings.HasPrefix(f[1], "month") {
		return "", false
	}
	switch {
	case n <= 3:
		return DurationShort, true
	case n <= 6:
		return DurationMedium, true
	default:
		return DurationLong, true
	}
}

// Verifier records the college that vouched for a listing
type Verifier struct {
	College    string    `json:"college"`
	VerifiedAt time.Time `json:"verified_at"`
	Rating     int       `json:"rating,omitempty"`
	Comment    string    `json:"comment,omitempty"`
}

// Listing is one internship opportunity
// a listing is built by a data source and never modified by the engine
type Listing struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Company      string       `json:"company"`
	Domain       Domain       `json:"domain"`
	LocationMode LocationMode `json:"location_mode"`
	City         string       `json:"city,omitempty"`
	Stipend      int          `json:"stipend"`
	Duration     Duration     `json:"duration"`
	Skills       []string     `json:"skills"`
	Verified     bool         `json:"verified"`
	VerifiedBy   *Verifier    `json:"verified_by,omitempty"`
	Posted       Recency      `json:"posted"`
	Description  string       `json:"description,omitempty"`
	StartDate    *time.Time   `json:"start_date,omitempty"`
	ClosesAt     *time.Time   `json:"closes_at,omitempty"`
}

// Validate checks the invariants every data source must uphold
func (l Listing) Validate() error {
	switch {
	case strings.TrimSpace(l.ID) == "":
		return invalidListing("id", "listing id is required")
	case strings.TrimSpace(l.Title) == "":
		return invalidListing("title", "listing %s has no title", l.ID)
	case l.Stipend < 0:
		return invalidListing("stipend", "listing %s has negative stipend %d", l.ID, l.Stipend)
	case !l.Domain.Valid():
		return invalidListing("domain", "listing %s has unknown domain %q", l.ID, l.Domain)
	case !l.LocationMode.Valid():
		return invalidListing("location_mode", "listing %s has unknown location mode %q", l.ID, l.LocationMode)
	case !l.Duration.Valid():
		return invalidListing("duration", "listing %s has unknown duration %q", l.ID, l.Duration)
	}
	return nil
}

// HasSkill reports whether the listing requires skill
func (l Listing) HasSkill(skill string) bool {
	for _, s := range l.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

func invalidListing(field, format string, a ...any) error {
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, format, a...), field)
}

// compactKey lowercases and drops spaces, dashes and underscores
func compactKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
