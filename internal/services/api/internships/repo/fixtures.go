package repo

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"internhub/internal/core/discovery"
	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
	"internhub/internal/services/api/internships/domain"

	"gopkg.in/yaml.v3"
)

// fixtureFile is the on disk shape of a fixtures file
type fixtureFile struct {
	Internships []fixture `yaml:"internships"`
}

type fixture struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Domain       string   `yaml:"domain"`
	LocationMode string   `yaml:"location_mode"`
	City         string   `yaml:"city"`
	Stipend      int      `yaml:"stipend"`
	Duration     string   `yaml:"duration"`
	Skills       []string `yaml:"skills"`
	Verified     bool     `yaml:"verified"`
	VerifiedBy   string   `yaml:"verified_by"`
	Posted       string   `yaml:"posted"`
	Description  string   `yaml:"description"`
	StartDate    string   `yaml:"start_date"`
	ClosesAt     string   `yaml:"closes_at"`
	Status       string   `yaml:"status"`
	ContactEmail string   `yaml:"contact_email"`
}

// LoadFixtures reads and validates a fixtures file
func LoadFixtures(path string) ([]domain.Posting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "internships: open fixtures %s", path)
	}
	defer f.Close()
	return ParseFixtures(f)
}

// ParseFixtures decodes fixtures from r
// domain, mode and duration are parsed leniently, everything else must be exact
func ParseFixtures(r io.Reader) ([]domain.Posting, error) {
	var ff fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ff); err != nil && err != io.EOF {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "internships: decode fixtures")
	}

	out := make([]domain.Posting, 0, len(ff.Internships))
	seen := make(map[string]struct{}, len(ff.Internships))
	for i, fx := range ff.Internships {
		p, err := fx.posting()
		if err != nil {
			return nil, perr.WithOp(err, fmt.Sprintf("fixture %d", i))
		}
		if _, dup := seen[p.ID]; dup {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "internships: duplicate fixture id %s", p.ID), "id")
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

func (fx fixture) posting() (domain.Posting, error) {
	l := discovery.Listing{
		ID:          strings.TrimSpace(fx.ID),
		Title:       strings.TrimSpace(fx.Title),
		Company:     strings.TrimSpace(fx.Company),
		City:        fx.City,
		Stipend:     fx.Stipend,
		Skills:      fx.Skills,
		Verified:    fx.Verified,
		Description: fx.Description,
	}
	if l.Skills == nil {
		l.Skills = []string{}
	}

	// unparseable values stay as typed so Validate names the field
	var ok bool
	if l.Domain, ok = discovery.ParseDomain(fx.Domain); !ok {
		l.Domain = discovery.Domain(fx.Domain)
	}
	if l.LocationMode, ok = discovery.ParseLocationMode(fx.LocationMode); !ok {
		l.LocationMode = discovery.LocationMode(fx.LocationMode)
	}
	if l.Duration, ok = discovery.ParseDuration(fx.Duration); !ok {
		l.Duration = discovery.Duration(fx.Duration)
	}

	if fx.Posted != "" {
		if t, err := parseWhen(fx.Posted); err == nil {
			l.Posted = discovery.PostedAt(t)
		} else {
			l.Posted = discovery.PostedAgo(fx.Posted)
		}
	}
	if fx.VerifiedBy != "" {
		l.VerifiedBy = &discovery.Verifier{College: fx.VerifiedBy}
	}

	var err error
	if l.StartDate, err = optionalWhen(fx.StartDate, "start_date"); err != nil {
		return domain.Posting{}, err
	}
	if l.ClosesAt, err = optionalWhen(fx.ClosesAt, "closes_at"); err != nil {
		return domain.Posting{}, err
	}
	if err := l.Validate(); err != nil {
		return domain.Posting{}, err
	}

	status := domain.Status(strings.ToLower(strings.TrimSpace(fx.Status)))
	switch status {
	case "":
		status = domain.StatusPending
		if fx.Verified {
			status = domain.StatusApproved
		}
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusClosed:
	default:
		return domain.Posting{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "unknown status %q", fx.Status), "status")
	}

	return domain.Posting{Listing: l, Status: status, ContactEmail: fx.ContactEmail}, nil
}

func parseWhen(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func optionalWhen(s, field string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseWhen(s)
	if err != nil {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "bad %s %q, want YYYY-MM-DD or RFC3339", field, s), field)
	}
	t = t.UTC()
	return &t, nil
}

// Fixtures is a read-only Repo over postings loaded once at startup
type Fixtures struct {
	postings []domain.Posting
}

// NewFixtures returns a binder that ignores the Queryer and serves postings
func NewFixtures(postings []domain.Posting) repokit.Binder[Repo] {
	return repokit.BindFunc[Repo](func(repokit.Queryer) Repo {
		return &Fixtures{postings: slices.Clone(postings)}
	})
}

var errReadOnly = perr.Unavailablef("internships: fixtures source is read-only")

// Candidates implements Repo
func (f *Fixtures) Candidates(context.Context) ([]domain.Posting, error) {
	out := make([]domain.Posting, 0, len(f.postings))
	for _, p := range f.postings {
		if p.Status.Candidate() {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get implements Repo
func (f *Fixtures) Get(_ context.Context, id string) (domain.Posting, error) {
	for _, p := range f.postings {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Posting{}, perr.NotFoundf("internship %s not found", id)
}

// Pending implements Repo
func (f *Fixtures) Pending(context.Context) ([]domain.Posting, error) {
	out := []domain.Posting{}
	for _, p := range f.postings {
		if p.Status == domain.StatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}

// Insert implements Repo
func (f *Fixtures) Insert(context.Context, domain.Posting) error { return errReadOnly }

// Upsert implements Repo
func (f *Fixtures) Upsert(context.Context, domain.Posting) error { return errReadOnly }

// Review implements Repo
func (f *Fixtures) Review(context.Context, string, domain.Status, discovery.Verifier) error {
	return errReadOnly
}

// CloseExpired implements Repo
func (f *Fixtures) CloseExpired(context.Context, time.Time) (int64, error) { return 0, errReadOnly }
