// Package modkit assembles feature modules: shared deps in, routes and ports out
package modkit

import (
	"net/http"

	"internhub/internal/modkit/module"
	phttp "internhub/internal/platform/net/http"
	str "internhub/internal/platform/strings"
)

// Module is module.Module, re-exported so feature packages import one kit
type Module = module.Module

// Built is a module's resolved name, mount point and wiring
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Option edits a Built before the module keeps it
type Option func(*Built)

// WithName names the module in logs and the ports registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the path the module is mounted under
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module scoped middleware
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports of a module it depends on
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithRegister mounts extra endpoints next to the module's own
func WithRegister(fn func(phttp.Router)) Option { return func(b *Built) { b.Register = fn } }

// Build applies opts in order
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Mount routes own, then any WithRegister extras, under the prefix
// it panics on an empty prefix
func (b Built) Mount(r phttp.Router, own func(phttp.Router)) {
	r.Route(str.MustPrefix(b.Prefix), func(sub phttp.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		own(sub)
		if b.Register != nil {
			b.Register(sub)
		}
	})
}
