// Package testkit holds helpers shared by package tests
package testkit

import (
	"sync"
	"testing"
)

// catch runs fn and reports what it panicked with, if it did
func catch(fn func()) (v any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			v, panicked = r, true
		}
	}()
	fn()
	return nil, false
}

// MustPanic fails the test unless fn panics and returns the panic value
func MustPanic(t testing.TB, fn func()) any {
	t.Helper()
	v, ok := catch(fn)
	if !ok {
		t.Fatalf("expected a panic")
	}
	return v
}

// MustNotPanic fails the test if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	if v, ok := catch(fn); ok {
		t.Fatalf("unexpected panic: %v", v)
	}
}

// Swap replaces *target until the test ends
// use it on package level seams such as dial or clock vars
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	old := *target
	*target = v
	t.Cleanup(func() { *target = old })
}

var serial sync.Mutex

// Serial holds a process wide lock for the rest of the test
// tests that Swap shared seams take it so parallel tests never see each other's fakes
func Serial(t testing.TB) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
