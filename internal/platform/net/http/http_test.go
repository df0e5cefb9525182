package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"internhub/internal/platform/config"
	perr "internhub/internal/platform/errors"
	phttp "internhub/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchIn struct {
	Query string `json:"query" validate:"max=10"`
	Page  int    `json:"page" validate:"gte=1"`
}

func newRouter() phttp.Router { return phttp.AdaptChi(chi.NewRouter()) }

func do(t *testing.T, r phttp.Router, method, path, body string) (int, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	if rec.Code == http.StatusNoContent {
		return rec.Code, phttp.Envelope{}
	}
	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestJSONHandler_ValidatesAndWraps(t *testing.T) {
	t.Parallel()

	r := newRouter()
	phttp.PostJSON(r, "/search", func(_ *http.Request, in searchIn) (any, error) {
		return map[string]any{"echo": in.Query}, nil
	})

	code, env := do(t, r, http.MethodPost, "/search", `{"query":"go","page":1}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"echo": "go"}, env.Data)

	code, env = do(t, r, http.MethodPost, "/search", `{"query":"go","page":0}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)
	assert.Equal(t, "page", env.Field)

	code, env = do(t, r, http.MethodPost, "/search", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeJSON, env.Code)
}

func TestJSONHandler_ResponsePassthroughAndErrors(t *testing.T) {
	t.Parallel()

	r := newRouter()
	phttp.GetJSON(r, "/list", func(*http.Request) (any, error) {
		return phttp.List([]string{"a", "b"}, phttp.NewPage(12, 6, 2, 2)), nil
	})
	phttp.GetJSON(r, "/created", func(*http.Request) (any, error) { return phttp.Created("x"), nil })
	phttp.DeleteJSON(r, "/gone", func(*http.Request) (any, error) { return phttp.NoContent(), nil })
	phttp.GetJSON(r, "/bad", func(*http.Request) (any, error) {
		return nil, perr.WithField(perr.InvalidArgf("stipend min exceeds max"), "stipend")
	})
	phttp.GetJSON(r, "/conflict", func(*http.Request) (any, error) { return nil, perr.Conflictf("already reviewed") })

	code, env := do(t, r, http.MethodGet, "/list", "")
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Page)
	assert.Equal(t, 12, env.Page.Total)
	assert.True(t, env.Page.HasPrev)
	assert.True(t, env.Page.HasNext)
	assert.Len(t, env.Data, 2)

	code, _ = do(t, r, http.MethodGet, "/created", "")
	assert.Equal(t, http.StatusCreated, code)

	code, _ = do(t, r, http.MethodDelete, "/gone", "")
	assert.Equal(t, http.StatusNoContent, code)

	code, env = do(t, r, http.MethodGet, "/bad", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "stipend", env.Field)
	assert.Equal(t, "stipend min exceeds max", env.Error)

	code, _ = do(t, r, http.MethodGet, "/conflict", "")
	assert.Equal(t, http.StatusConflict, code)
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	p := phttp.NewPage(0, 0, 1, 10)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)

	p = phttp.NewPage(23, 3, 3, 10)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestAdaptChi_RouteGroupAndParams(t *testing.T) {
	t.Parallel()

	r := newRouter()
	hits := 0
	r.Route("/api", func(api phttp.Router) {
		api.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				hits++
				next.ServeHTTP(w, req)
			})
		})
		api.Group(func(g phttp.Router) {
			g.Get("/items/{id}", func(w http.ResponseWriter, req *http.Request) {
				_, _ = io.WriteString(w, chi.URLParam(req, "id"))
			})
		})
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/42", nil))
	assert.Equal(t, "42", rec.Body.String())
	assert.Equal(t, 1, hits)
}

func TestMountProfiler(t *testing.T) {
	t.Parallel()

	on := newRouter()
	phttp.MountProfiler(on, "/debug", true)
	rec := httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	off := newRouter()
	phttp.MountProfiler(off, "/debug", false)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")

	srv := phttp.NewServer(config.New())
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
