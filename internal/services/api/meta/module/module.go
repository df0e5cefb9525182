// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "internhub/internal/modkit"
	"internhub/internal/modkit/httpkit"
	"internhub/internal/modkit/repokit"
	metahttp "internhub/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module, service names the binary in health and version payloads
func New(deps modkit.Deps, service string, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	checks := map[string]repokit.Pinger{}
	add := func(name string, seam any) {
		if p, ok := seam.(repokit.Pinger); ok {
			checks[name] = p
		}
	}
	add("pg", deps.PG)
	add("ch", deps.CH)
	add("rds", deps.RDS)

	return &Module{b: b, deps: metahttp.Deps{
		ServiceName: service,
		StartedAt:   time.Now(),
		Checks:      checks,
		Timeout:     deps.Cfg.Prefix("CORE_API_").MayDuration("READY_TIMEOUT", 2*time.Second),
	}}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Ports implements the modkit.Module interface, meta exposes none
func (m *Module) Ports() any { return nil }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }
