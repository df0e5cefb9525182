// Package module wires up the curator as a modkit.Module
package module

import (
	"internhub/internal/modkit"
	"internhub/internal/modkit/httpkit"
	modreg "internhub/internal/modkit/module"

	arepo "internhub/internal/services/api/applications/repo"
	imod "internhub/internal/services/api/internships/module"
	irepo "internhub/internal/services/api/internships/repo"
	cdom "internhub/internal/services/curator/domain"
	"internhub/internal/services/curator/guardrails"
	csvc "internhub/internal/services/curator/service"
)

// Ports exported by the curator module
type Ports struct {
	Runner cdom.RunnerPort
}

// Module implements modkit.Module for the curator
type Module struct {
	ports Ports
	opts  Options
}

// New constructs the curator over a postgres backed internships module
// the internships module shares the api's cache key so sweeps invalidate what the api serves
func New(deps modkit.Deps, o Options) *Module {
	if deps.PG == nil {
		panic("curator: module needs postgres")
	}

	iopts := imod.FromConfig(deps.Cfg)
	iopts.Source = imod.SourcePG
	internships := imod.New(deps, iopts)
	modreg.Register(internships.Name(), internships.Ports())
	port := modreg.MustPortsOf[imod.Ports](internships).Curator

	var lease guardrails.Lease
	if o.EnableLeases {
		lease = guardrails.MakeAdvisoryLease(deps.PG, o.LeaseKey)
	}

	svc := csvc.New(deps.PG, port, csvc.Config{
		Schedule:   o.Schedule,
		RunOnStart: o.RunOnStart,
	}, lease, irepo.EnsureSchema, arepo.EnsureSchema)

	return &Module{ports: Ports{Runner: svc}, opts: o}
}

// Name returns the module name
func (m *Module) Name() string { return "curator" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Fixtures returns the configured fixtures path
func (m *Module) Fixtures() string { return m.opts.Fixtures }

// MountRoutes is a no-op, the curator has no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
