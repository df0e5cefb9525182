package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/logger"
	pnet "internhub/internal/platform/net"
	phttp "internhub/internal/platform/net/http"
)

// RecoverJSON answers a handler panic with the 500 error envelope and logs the stack
// http.ErrAbortHandler is re-panicked so the server drops the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")
			phttp.JSON(w, http.StatusInternalServerError,
				phttp.ErrorEnvelope(perr.PanicErrf("internal error"), pnet.RequestID(r.Context())))
		}()
		next.ServeHTTP(w, r)
	})
}
