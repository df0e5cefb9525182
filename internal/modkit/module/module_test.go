package module

import (
	"testing"

	phttp "internhub/internal/platform/net/http"
	"internhub/internal/platform/testkit"
)

type lookup interface{ Lookup(string) bool }

type lookupFn func(string) bool

func (f lookupFn) Lookup(id string) bool { return f(id) }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	yes := lookupFn(func(string) bool { return true })

	if _, ok := PortsOf[lookup](fakeModule{name: "empty"}); ok {
		t.Fatalf("module without ports should not resolve")
	}

	got, ok := PortsOf[lookup](fakeModule{ports: lookup(yes)})
	if !ok || !got.Lookup("x") {
		t.Fatalf("direct port not resolved")
	}

	type bundle struct {
		Listings lookup
		Count    int
	}
	got, ok = PortsOf[lookup](fakeModule{ports: bundle{Listings: yes}})
	if !ok || !got.Lookup("x") {
		t.Fatalf("port inside a bundle not resolved")
	}

	// unexported fields are not ports
	type hidden struct{ listings lookup }
	if _, ok = PortsOf[lookup](fakeModule{ports: hidden{listings: yes}}); ok {
		t.Fatalf("unexported field resolved as a port")
	}
}

func TestMustPortsOf_PanicNamesModule(t *testing.T) {
	t.Parallel()

	got := testkit.MustPanic(t, func() { _ = MustPortsOf[lookup](fakeModule{name: "internships"}) })
	if got != "module: requested port not found on module internships" {
		t.Fatalf("panic value = %v", got)
	}
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("internships", 1)
	Register("internships", 2)

	if n, ok := PortsAs[int]("internships"); !ok || n != 2 {
		t.Fatalf("expected last register to win, got %d %v", n, ok)
	}
	if _, ok := PortsAs[string]("internships"); ok {
		t.Fatalf("type mismatch resolved")
	}
	if _, ok := PortsAs[int]("applications"); ok {
		t.Fatalf("unregistered module resolved")
	}
}
