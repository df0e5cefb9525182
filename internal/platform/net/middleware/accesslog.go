package middleware

import (
	"net/http"
	"slices"
	"time"

	"internhub/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions tunes AccessLogZerolog
type AccessLogOptions struct {
	Slow time.Duration // at or above this a 2xx-4xx logs at warn, 0 never
	Skip []string      // exact paths never logged, probes
}

// AccessLogZerolog writes one line per request on the request scoped logger
// 5xx is error level, the route field is the chi pattern so ids do not explode cardinality
func AccessLogZerolog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(opt.Skip, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log := logger.C(r.Context())
			evt := log.Info()
			if status >= http.StatusInternalServerError {
				evt = log.Error()
			} else if opt.Slow > 0 && took >= opt.Slow {
				evt = log.Warn()
			}

			var route string
			if rc := chi.RouteContext(r.Context()); rc != nil {
				route = rc.RoutePattern()
			}
			evt.Int("status", status).
				Dur("elapsed", took).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", route).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}
