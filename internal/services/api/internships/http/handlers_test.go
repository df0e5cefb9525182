package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "internhub/internal/platform/errors"
	phttp "internhub/internal/platform/net/http"
	ihttp "internhub/internal/services/api/internships/http"
	"internhub/internal/services/api/internships/repo"
	"internhub/internal/services/api/internships/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalog = `
internships:
  - {id: fe, title: Frontend Developer Intern, company: TechCorp, domain: Software Development, location_mode: remote, stipend: 15000, duration: 3-6, skills: [React], verified: true, verified_by: IIT Delhi}
  - {id: ds, title: Data Science Intern, company: DataViz, domain: Data Science, location_mode: hybrid, stipend: 25000, duration: 6+, skills: [Python]}
  - {id: mk, title: Marketing Intern, company: Marketing Pro, domain: Marketing, location_mode: on-site, stipend: 10000, duration: 1-3, skills: [Social Media]}
`

func router(t *testing.T) phttp.Router {
	t.Helper()
	ps, err := repo.ParseFixtures(strings.NewReader(catalog))
	require.NoError(t, err)

	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/internships", func(rr phttp.Router) {
		ihttp.Register(rr, service.New(nil, repo.NewFixtures(ps)))
	})
	return r
}

func do(t *testing.T, r phttp.Router, method, path, body string) (int, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.Mux().ServeHTTP(rec, req)
	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestSearch_PageBlock(t *testing.T) {
	t.Parallel()

	r := router(t)
	code, env := do(t, r, http.MethodPost, "/internships/search", `{"spec":{"domains":["Data Science","marketing"]},"page_size":1,"order":"stipend_asc"}`)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Page)
	assert.Equal(t, 2, env.Page.Total)
	assert.Equal(t, 2, env.Page.TotalPages)
	assert.True(t, env.Page.HasNext)
	assert.False(t, env.Page.HasPrev)

	data := env.Data.(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "mk", items[0].(map[string]any)["id"])
	assert.Equal(t, []any{"domain"}, data["active"])
	assert.Equal(t, false, data["empty"])
}

func TestSearch_ValidationErrors(t *testing.T) {
	t.Parallel()

	r := router(t)

	code, env := do(t, r, http.MethodPost, "/internships/search", `{"spec":{"domains":["Alchemy"]}}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)

	code, env = do(t, r, http.MethodPost, "/internships/search", `{"order":"random"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)

	code, env = do(t, r, http.MethodPost, "/internships/search", `{"spec":{"stipend":{"min":9,"max":1}}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, perr.ErrorCodeInvalidArgument, env.Code)
	assert.Equal(t, "stipend", env.Field)

	for _, body := range []string{`{"page":0}`, `{"page":-2}`} {
		code, env = do(t, r, http.MethodPost, "/internships/search", body)
		assert.Equal(t, http.StatusUnprocessableEntity, code, body)
		assert.Equal(t, perr.ErrorCodeInvalidArgument, env.Code, body)
		assert.Equal(t, "page", env.Field, body)
		assert.Nil(t, env.Data, body)
	}

	code, env = do(t, r, http.MethodPost, "/internships/search", `{"spec":{"stipend":{"min":90000}}}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, env.Data.(map[string]any)["empty"])
}

func TestFacetsToggleClear(t *testing.T) {
	t.Parallel()

	r := router(t)

	code, env := do(t, r, http.MethodPost, "/internships/facets", `{"spec":{"location_modes":["remote"]}}`)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, env.Data.(map[string]any)["total"])

	code, env = do(t, r, http.MethodPost, "/internships/filters/toggle", `{"facet":"skill","value":"Python"}`)
	require.Equal(t, http.StatusOK, code)
	spec := env.Data.(map[string]any)["spec"].(map[string]any)
	assert.Equal(t, []any{"Python"}, spec["skills"])

	code, _ = do(t, r, http.MethodPost, "/internships/filters/toggle", `{"facet":"duration","value":"1-3"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, r, http.MethodPost, "/internships/filters/clear", ``)
	require.Equal(t, http.StatusOK, code)
	bounds := env.Data.(map[string]any)["bounds"].(map[string]any)
	assert.EqualValues(t, 10000, bounds["min"])
	assert.EqualValues(t, 25000, bounds["max"])
}

func TestGetPendingAndWrites(t *testing.T) {
	t.Parallel()

	r := router(t)

	code, env := do(t, r, http.MethodGet, "/internships/fe", ``)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Frontend Developer Intern", env.Data.(map[string]any)["title"])

	code, env = do(t, r, http.MethodGet, "/internships/nope", ``)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, perr.ErrorCodeNotFound, env.Code)

	code, env = do(t, r, http.MethodGet, "/internships/pending", ``)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, env.Data.([]any), 2)

	body := `{"title":"Ops Intern","company":"Acme","domain":"Operations","location_mode":"on-site","duration":"1-3",
"description":"d","stipend":1000,"skills":["Excel"],"closes_at":"2099-01-01T00:00:00Z","contact_email":"hr@acme.example"}`
	code, env = do(t, r, http.MethodPost, "/internships", body)
	assert.Equal(t, http.StatusServiceUnavailable, code, "fixtures are read-only")
	assert.Equal(t, perr.ErrorCodeUnavailable, env.Code)

	code, env = do(t, r, http.MethodPost, "/internships", `{"title":"x","contact_email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)

	code, _ = do(t, r, http.MethodPost, "/internships/mk/review", `{"college":"IIT","decision":"approve","rating":4}`)
	assert.Equal(t, http.StatusServiceUnavailable, code)

	code, _ = do(t, r, http.MethodPost, "/internships/mk/review", `{"college":"IIT","decision":"approve","rating":9}`)
	assert.Equal(t, http.StatusBadRequest, code)
}
