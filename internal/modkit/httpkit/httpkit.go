// Package httpkit is the http surface feature modules build against
// modules import it instead of the platform http package and chi
package httpkit

import (
	"net/http"
	"strings"

	phttp "internhub/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type (
	Router   = phttp.Router
	Handler  = phttp.Handler
	Response = phttp.Response
	Envelope = phttp.Envelope
	Page     = phttp.Page
)

func OK(data any) Response      { return phttp.OK(data) }
func Created(data any) Response { return phttp.Created(data) }
func NoContent() Response       { return phttp.NoContent() }
func Error(err error) Response  { return phttp.Error(err) }

// List is a 200 with items and a page block built from the counts
func List(items any, total, totalPages, page, size int) Response {
	return phttp.List(items, phttp.NewPage(total, totalPages, page, size))
}

// JSON decodes and validates a T body before fn sees it
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call wraps a handler that reads no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// Param reads a chi path parameter, "" when the route has none
func Param(r *http.Request, name string) string { return chi.URLParam(r, name) }

// MountAPI routes /api/<version> through mw and hands the subrouter to mount
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/"), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI at v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
