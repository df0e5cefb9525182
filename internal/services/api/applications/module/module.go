// Package module wires applications into the API using modkit
package module

import (
	modkit "internhub/internal/modkit"
	"internhub/internal/modkit/httpkit"
	ahttp "internhub/internal/services/api/applications/http"
	arepo "internhub/internal/services/api/applications/repo"
	asvc "internhub/internal/services/api/applications/service"
	idom "internhub/internal/services/api/internships/domain"
)

// Ports declares what applications needs from other modules
type Ports struct {
	Listings idom.ListingsPort
}

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	svc asvc.Service
}

// New constructs the applications module
// it needs postgres and a listings port injected with modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("applications"), modkit.WithPrefix("/applications")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Listings == nil {
		panic("applications: module needs Ports{Listings} via WithPorts")
	}
	if deps.PG == nil {
		panic("applications: module needs postgres")
	}
	return &Module{b: b, svc: asvc.New(deps.PG, arepo.NewPG(), p.Listings)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { ahttp.Register(rr, m.svc) })
}

// Ports returns nothing, applications offers no ports
func (m *Module) Ports() any { return nil }

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
