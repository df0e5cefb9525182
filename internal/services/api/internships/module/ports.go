package module

import (
	idom "internhub/internal/services/api/internships/domain"
)

// Ports is what internships offers other modules
type Ports struct {
	Listings idom.ListingsPort
	Curator  idom.CuratorPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
