package middleware

import (
	"net/http"

	"internhub/internal/platform/logger"
	pnet "internhub/internal/platform/net"
)

// BindLogger puts chi's request id on the logger context and the X-Request-ID response header
// it goes after RequestID
func BindLogger() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := pnet.RequestID(r.Context()); id != "" {
				w.Header().Set("X-Request-ID", id)
				r = r.WithContext(logger.WithRequest(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
