// Package middleware is the http middleware the api stack is assembled from
// chi and go-chi/cors do the work, callers never import them directly
package middleware

import (
	"net/http"
	"time"

	pstrings "internhub/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the standard net/http middleware shape
type Middleware = func(http.Handler) http.Handler

func RequestID() Middleware    { return chimw.RequestID }
func RealIP() Middleware       { return chimw.RealIP }
func NoCache() Middleware      { return chimw.NoCache }
func StripSlashes() Middleware { return chimw.StripSlashes }

// Timeout cancels the request context after d and answers 504 if nothing was written
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips and deflates responses at level for the usual text types
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// CORSOptions are the go-chi/cors knobs the api uses, empty lists take defaults
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{"Accept", "Content-Type", "X-Request-ID"}
)

// CORS allows any origin unless AllowedOrigins is set
// credentials are only honoured alongside an explicit origin list
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, corsMethods),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, corsHeaders),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		AllowCredentials: o.AllowCredentials && len(o.AllowedOrigins) > 0,
		MaxAge:           o.MaxAge,
	})
}
