package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"internhub/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration
}

// CommonStack returns the baseline api middleware slice
// the ids come first so access log and recover lines carry them
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.SlowRequest <= 0 {
		o.SlowRequest = 500 * time.Millisecond
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.BindLogger(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: o.SlowRequest,
			Skip: []string{"/api/v1/meta/health"},
		}),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
