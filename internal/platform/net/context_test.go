package net_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "internhub/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	base := context.Background()
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID(background) = %q, want empty", got)
	}
	// blank id leaves ctx alone
	if got := pnet.WithRequestID(base, ""); got != base {
		t.Fatalf("WithRequestID with blank id returned a new ctx")
	}
	if got := pnet.RequestID(pnet.WithRequestID(base, "req-1")); got != "req-1" {
		t.Fatalf("RequestID = %q, want %q", got, "req-1")
	}
}

func TestRequestID_SeesChiMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	h := chimw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "from-client")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "from-client" {
		t.Fatalf("expected request id from-client got %q", seen)
	}
}
