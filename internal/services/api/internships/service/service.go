// Package service contains internships workflows
package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"internhub/internal/core/discovery"
	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/store"
	"internhub/internal/services/api/internships/domain"
	"internhub/internal/services/api/internships/repo"
)

// Service defines the service contract for internships
type Service interface {
	domain.ServicePort
	domain.ListingsPort
	domain.CuratorPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	snap     *snapshots
	events   *recorder
	pageSize int
	now      func() time.Time
}

// Option configures Svc
type Option func(*Svc)

// WithCache keeps candidate snapshots in c for ttl
func WithCache(c store.Cache, key string, ttl time.Duration) Option {
	return func(s *Svc) {
		if c != nil {
			s.snap = &snapshots{c: c, key: key, ttl: ttl}
		}
	}
}

// WithEvents records every search into table
func WithEvents(ch store.Clickhouse, table string) Option {
	return func(s *Svc) {
		if ch != nil {
			s.events = &recorder{ch: ch, table: table}
		}
	}
}

// WithPageSize overrides the default page size used when a request leaves it out
func WithPageSize(n int) Option {
	return func(s *Svc) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithClock overrides time.Now, tests mostly
func WithClock(now func() time.Time) Option { return func(s *Svc) { s.now = now } }

// New creates a new internships service
// db may be nil for read-only sources such as fixtures
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if binder == nil {
		panic("internships.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:     binder.Bind(db),
		binder:   binder,
		db:       db,
		pageSize: discovery.DefaultPageSize,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// candidates returns the discovery candidate set, through the snapshot cache when enabled
func (s *Svc) candidates(ctx context.Context) ([]domain.Posting, error) {
	if ps, ok := s.snap.load(ctx); ok {
		return ps, nil
	}
	gen := s.snap.generation()
	ps, err := s.Repo.Candidates(ctx)
	if err != nil {
		return nil, err
	}
	s.snap.store(ctx, ps, gen)
	return ps, nil
}

func listings(ps []domain.Posting) []discovery.Listing {
	out := make([]discovery.Listing, len(ps))
	for i, p := range ps {
		out[i] = p.Listing
	}
	return out
}

// Search runs one discovery query over the candidate set
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResult, error) {
	ps, err := s.candidates(ctx)
	if err != nil {
		return domain.SearchResult{}, err
	}
	ls := listings(ps)
	bounds := discovery.Bounds(ls)

	spec, err := SpecFrom(in.Spec, bounds)
	if err != nil {
		return domain.SearchResult{}, err
	}
	page := 1
	if in.Page != nil {
		page = *in.Page
	}
	size := in.PageSize
	if size == 0 {
		size = s.pageSize
	}

	pg, err := discovery.Query(ls, spec, page,
		discovery.WithPageSize(size),
		discovery.WithOrder(discovery.Order(in.Order)),
		discovery.WithNow(s.now()),
	)
	if err != nil {
		return domain.SearchResult{}, err
	}

	s.events.record(ctx, s.now(), spec, discovery.Order(in.Order), pg)

	return domain.SearchResult{
		Items:  pg.Items,
		Active: spec.Active(bounds),
		Empty:  pg.Empty(),
		Page:   pg,
	}, nil
}

// Facets counts values per facet for the given spec
func (s *Svc) Facets(ctx context.Context, in domain.FacetsInput) (discovery.Facets, error) {
	ps, err := s.candidates(ctx)
	if err != nil {
		return discovery.Facets{}, err
	}
	ls := listings(ps)
	spec, err := SpecFrom(in.Spec, discovery.Bounds(ls))
	if err != nil {
		return discovery.Facets{}, err
	}
	return discovery.ComputeFacets(ls, spec)
}

// Toggle flips one set-typed facet value and returns the next spec
func (s *Svc) Toggle(ctx context.Context, in domain.ToggleInput) (domain.SpecResult, error) {
	bounds, err := s.bounds(ctx)
	if err != nil {
		return domain.SpecResult{}, err
	}
	spec, err := SpecFrom(in.Spec, bounds)
	if err != nil {
		return domain.SpecResult{}, err
	}

	switch discovery.Facet(in.Facet) {
	case discovery.FacetDomain:
		d, ok := discovery.ParseDomain(in.Value)
		if !ok {
			return domain.SpecResult{}, perr.WithField(perr.InvalidArgf("unknown domain %q", in.Value), "value")
		}
		spec = spec.ToggleDomain(d)
	case discovery.FacetLocationMode:
		m, ok := discovery.ParseLocationMode(in.Value)
		if !ok {
			return domain.SpecResult{}, perr.WithField(perr.InvalidArgf("unknown location mode %q", in.Value), "value")
		}
		spec = spec.ToggleLocationMode(m)
	case "skill", discovery.FacetSkills:
		spec = spec.ToggleSkill(in.Value)
	default:
		return domain.SpecResult{}, perr.WithField(perr.InvalidArgf("facet %q cannot be toggled", in.Facet), "facet")
	}
	return domain.SpecResult{Spec: spec, Active: spec.Active(bounds), Bounds: bounds}, nil
}

// Clear returns the default spec for the current candidate set
func (s *Svc) Clear(ctx context.Context) (domain.SpecResult, error) {
	bounds, err := s.bounds(ctx)
	if err != nil {
		return domain.SpecResult{}, err
	}
	spec := discovery.Default(bounds)
	return domain.SpecResult{Spec: spec, Active: spec.Active(bounds), Bounds: bounds}, nil
}

func (s *Svc) bounds(ctx context.Context) (discovery.StipendRange, error) {
	ps, err := s.candidates(ctx)
	if err != nil {
		return discovery.StipendRange{}, err
	}
	return discovery.Bounds(listings(ps)), nil
}

// SpecFrom turns wire input into a filter spec
// missing stipend bounds fall back to bounds, the candidate set's full range
func SpecFrom(in domain.SpecInput, bounds discovery.StipendRange) (discovery.FilterSpec, error) {
	spec := discovery.Default(bounds).WithSearch(in.Search)

	for _, v := range in.Domains {
		d, ok := discovery.ParseDomain(v)
		if !ok {
			return discovery.FilterSpec{}, perr.WithField(perr.InvalidArgf("unknown domain %q", v), "spec.domains")
		}
		if !slices.Contains(spec.Domains, d) {
			spec = spec.ToggleDomain(d)
		}
	}
	for _, v := range in.LocationModes {
		m, ok := discovery.ParseLocationMode(v)
		if !ok {
			return discovery.FilterSpec{}, perr.WithField(perr.InvalidArgf("unknown location mode %q", v), "spec.location_modes")
		}
		if !slices.Contains(spec.LocationModes, m) {
			spec = spec.ToggleLocationMode(m)
		}
	}
	if in.Duration != "" {
		d, ok := discovery.ParseDuration(in.Duration)
		if !ok {
			return discovery.FilterSpec{}, perr.WithField(perr.InvalidArgf("unknown duration %q", in.Duration), "spec.duration")
		}
		spec = spec.WithDuration(d)
	}
	for _, v := range in.Skills {
		if !slices.Contains(spec.Skills, strings.TrimSpace(v)) {
			spec = spec.ToggleSkill(v)
		}
	}

	// a one sided window widens the open side past the given bound
	// so only an explicitly inverted pair is invalid
	if st := in.Stipend; st != nil {
		r := bounds
		switch {
		case st.Min != nil && st.Max != nil:
			r = discovery.StipendRange{Min: *st.Min, Max: *st.Max}
		case st.Min != nil:
			r.Min, r.Max = *st.Min, max(r.Max, *st.Min)
		case st.Max != nil:
			r.Min, r.Max = min(r.Min, *st.Max), *st.Max
		}
		spec = spec.WithStipendRange(r)
	}
	return spec, spec.Validate()
}
