package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"internhub/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T) map[string]any {
	t.Helper()
	rec := httptest.NewRecorder()
	serveDocJSON()(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	return spec
}

func TestServeDocJSON_GeneratedSpec(t *testing.T) {
	testkit.Serial(t)

	spec := serve(t)
	assert.Equal(t, "3.0.3", spec["openapi"])

	info := spec["info"].(map[string]any)
	assert.Equal(t, "InternHub API", info["title"])

	paths := spec["paths"].(map[string]any)
	search := paths["/internships/search"].(map[string]any)["post"].(map[string]any)
	resps := search["responses"].(map[string]any)
	assert.Contains(t, resps, "400")
	assert.Contains(t, resps, "422")
	assert.Contains(t, resps, "500")

	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, "ErrorResponse")
	assert.Contains(t, schemas, "discovery.Facets")
}

func TestServeDocJSON_SwaggerTwoIsLifted(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &docReader, func() string {
		return `{"swagger":"2.0","info":{"title":"x"},"paths":{"/a":{"get":{}}}}`
	})

	spec := serve(t)
	assert.Equal(t, "3.0.3", spec["openapi"])
	assert.NotContains(t, spec, "swagger")
	assert.Equal(t, []any{map[string]any{"url": "/api/v1"}}, spec["servers"])
}

func TestServeDocJSON_Mutators(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &mutators, nil)

	Register(func(spec map[string]any) { spec["x-mutated"] = true })
	Register(nil)
	assert.Len(t, mutators, 1)
	assert.Equal(t, true, serve(t)["x-mutated"])
}

func TestServeDocJSON_BadDoc(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &docReader, func() string { return "{" })

	rec := httptest.NewRecorder()
	serveDocJSON()(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
