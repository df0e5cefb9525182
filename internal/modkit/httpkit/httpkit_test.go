package httpkit_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"internhub/internal/modkit/httpkit"
	phttp "internhub/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	Text string `json:"text" validate:"required"`
}

func newAPI(t *testing.T) http.Handler {
	t.Helper()

	root := phttp.AdaptChi(chi.NewRouter())
	httpkit.MountAPIV1(root, httpkit.CommonStack(httpkit.StackOptions{}), func(api httpkit.Router) {
		httpkit.Get(api, "/items", func(*http.Request) (any, error) {
			return httpkit.List([]int{1, 2, 3}, 13, 5, 2, 3), nil
		})
		httpkit.PostJSON(api, "/notes", func(_ *http.Request, in note) (any, error) {
			return httpkit.Created(in), nil
		})
		httpkit.Get(api, "/explode", func(*http.Request) (any, error) { panic("nope") })
	})
	return root.Mux()
}

func TestMountAPIV1_CommonStack(t *testing.T) {
	t.Parallel()

	h := newAPI(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/", nil))
	require.Equal(t, http.StatusOK, rec.Code, "trailing slash is stripped")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var env httpkit.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Page)
	assert.Equal(t, httpkit.Page{Total: 13, TotalPages: 5, Page: 2, PageSize: 3, HasPrev: true, HasNext: true}, *env.Page)
	assert.Equal(t, env.RequestID, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notes", strings.NewReader(`{"text":"hi"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notes", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/explode", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMountAPI_TrimsVersionSlash(t *testing.T) {
	t.Parallel()

	root := phttp.AdaptChi(chi.NewRouter())
	httpkit.MountAPI(root, "/v2", nil, func(api httpkit.Router) {
		httpkit.Delete(api, "/x", func(*http.Request) (any, error) { return httpkit.NoContent(), nil })
	})

	rec := httptest.NewRecorder()
	root.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v2/x", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
