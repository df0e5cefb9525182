package module

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	modkit "internhub/internal/modkit"
	"internhub/internal/platform/config"
	phttp "internhub/internal/platform/net/http"
	"internhub/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippedFixtures() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "..", "fixtures", "internships.yaml")
}

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_INTERNSHIPS_SOURCE", "fixtures")
	t.Setenv("CORE_INTERNSHIPS_PAGE_SIZE", "25")
	t.Setenv("CORE_INTERNSHIPS_CACHE_TTL", "30s")

	o := FromConfig(config.New())
	assert.Equal(t, SourceFixtures, o.Source)
	assert.Equal(t, 25, o.PageSize)
	assert.Equal(t, 30*time.Second, o.CacheTTL)
	assert.Equal(t, "search_events", o.EventsTable)
	assert.NotEmpty(t, o.CacheKey)
}

func TestNew_PGSourceNeedsDatabase(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(modkit.Deps{}, Options{Source: SourcePG}) })
}

func TestNew_BadFixturesPanics(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() {
		New(modkit.Deps{}, Options{Source: SourceFixtures, Fixtures: filepath.Join(t.TempDir(), "none.yaml")})
	})
}

func TestModule_MountsUnderPrefix(t *testing.T) {
	t.Parallel()

	m := New(modkit.Deps{}, Options{Source: SourceFixtures, Fixtures: shippedFixtures(), PageSize: 5})
	assert.Equal(t, "internships", m.Name())

	ports, ok := m.Ports().(Ports)
	require.True(t, ok)
	assert.NotNil(t, ports.Listings)
	assert.NotNil(t, ports.Curator)

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/internships/search", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page_size":5`)

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internships/frontend-techcorp", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
