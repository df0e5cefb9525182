// Package module wires internships into the API using modkit
package module

import (
	"fmt"

	modkit "internhub/internal/modkit"
	"internhub/internal/modkit/httpkit"
	"internhub/internal/modkit/repokit"
	"internhub/internal/platform/logger"
	ihttp "internhub/internal/services/api/internships/http"
	irepo "internhub/internal/services/api/internships/repo"
	isvc "internhub/internal/services/api/internships/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	b    modkit.Built

	ports any
	svc   isvc.Service
}

// New constructs the internships module
// it panics when the pg source is selected without a database, or the fixtures file is unreadable
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("internships"), modkit.WithPrefix("/internships")}, opts...)...)

	var (
		binder repokit.Binder[irepo.Repo]
		db     repokit.TxRunner
	)
	switch o.Source {
	case SourceFixtures:
		ps, err := irepo.LoadFixtures(o.Fixtures)
		if err != nil {
			panic(fmt.Sprintf("internships: %v", err))
		}
		binder = irepo.NewFixtures(ps)
		logger.Named("internships").Info().Str("file", o.Fixtures).Int("postings", len(ps)).Msg("serving fixtures")
	default:
		if deps.PG == nil {
			panic("internships: source pg needs SERVICE_PGSQL_URL")
		}
		binder, db = irepo.NewPG(), repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(o.StatementTimeout))
	}

	svc := isvc.New(db, binder,
		isvc.WithPageSize(o.PageSize),
		isvc.WithCache(deps.RDS, o.CacheKey, o.CacheTTL),
		isvc.WithEvents(deps.CH, o.EventsTable),
	)

	return &Module{deps: deps, b: b, svc: svc, ports: Ports{Listings: svc, Curator: svc}}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { ihttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Service exposes the service for binaries that drive it directly
func (m *Module) Service() isvc.Service { return m.svc }
