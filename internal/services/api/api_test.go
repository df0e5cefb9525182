package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"internhub/internal/modkit/module"
	"internhub/internal/platform/config"
	phttp "internhub/internal/platform/net/http"
	"internhub/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mounted(t *testing.T) http.Handler {
	t.Helper()
	testkit.Serial(t)
	_, file, _, _ := runtime.Caller(0)
	t.Setenv("CORE_INTERNSHIPS_SOURCE", "fixtures")
	t.Setenv("CORE_INTERNSHIPS_FIXTURES", filepath.Join(filepath.Dir(file), "..", "..", "..", "fixtures", "internships.yaml"))
	module.Reset()
	t.Cleanup(module.Reset)

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{Config: config.New(), EnableSwagger: true})
	return r.Mux()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestMount_FixturesWithoutPostgres(t *testing.T) {
	h := mounted(t)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/meta/health", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/v1/internships/search", `{"page_size":2}`).Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/api/v1/applications", "").Code, "applications needs postgres")

	_, ok := module.PortsAs[any]("internships")
	assert.True(t, ok)
}

func TestMount_DocsCarryBuild(t *testing.T) {
	h := mounted(t)

	rec := do(h, http.MethodGet, "/api/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	build := spec["info"].(map[string]any)["x-build"].(map[string]any)
	assert.Equal(t, "internhub-api", build["service"])
}
