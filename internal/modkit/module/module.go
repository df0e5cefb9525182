// Package module is the contract between modkit and feature modules
// it also carries the bootstrap registry modules use to find each other's ports
package module

import (
	"reflect"
	"sync"

	phttp "internhub/internal/platform/net/http"
)

// Module is a feature mounted under the api root
// Ports is whatever the module exposes to its siblings, usually a struct of interfaces
type Module interface {
	Name() string
	Ports() any
	MountRoutes(r phttp.Router)
}

// PortsOf finds a T in m's ports, either the bundle itself or one of its exported fields
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		if f := rv.Field(i); f.CanInterface() {
			if v, ok := f.Interface().(T); ok {
				return v, true
			}
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for wiring code, a missing port is a programming error
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module: requested port not found on module " + m.Name())
	}
	return v
}

var registry sync.Map // module name -> ports

// Register publishes ports under name, a second call replaces the first
func Register(name string, ports any) { registry.Store(name, ports) }

// PortsAs loads the ports registered under name as T
func PortsAs[T any](name string) (T, bool) {
	v, ok := registry.Load(name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Reset forgets every registration, tests only
func Reset() { registry.Clear() }
