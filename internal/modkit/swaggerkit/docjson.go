package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"internhub/internal/platform/config"

	docs "internhub/internal/services/api/docs"
)

// SpecMutator edits the decoded document before it is served
type SpecMutator func(spec map[string]any)

var (
	mutators []SpecMutator

	// docReader is swapped in tests
	docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
)

// Register adds m to the mutators run on every doc.json request, nil is ignored
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

type jsonObj = map[string]any

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec jsonObj
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		asOAS30(spec, "/api/v1")
		if suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
			if info := obj(spec, "info"); info != nil {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + suffix
				}
			}
		}
		schemas := child(child(spec, "components"), "schemas")
		if _, ok := schemas["ErrorResponse"]; !ok {
			schemas["ErrorResponse"] = errorResponseSchema
		}
		eachOperation(spec, func(responses jsonObj) {
			for code, r := range defaultResponses {
				if _, ok := responses[code]; !ok {
					responses[code] = r
				}
			}
		})
		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// asOAS30 pins the version to 3.0.3 since http-swagger's ui renders neither 2.0 nor 3.1
// and adds a servers entry when the document has none
func asOAS30(spec jsonObj, baseURL string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); v == "" || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{jsonObj{"url": baseURL}}
	}
}

func obj(m jsonObj, key string) jsonObj {
	v, _ := m[key].(jsonObj)
	return v
}

// child returns m[key] as an object, creating it when missing
func child(m jsonObj, key string) jsonObj {
	if v := obj(m, key); v != nil {
		return v
	}
	v := jsonObj{}
	m[key] = v
	return v
}

// eachOperation calls fn with the responses object of every path operation
func eachOperation(spec jsonObj, fn func(responses jsonObj)) {
	for _, p := range obj(spec, "paths") {
		item, ok := p.(jsonObj)
		if !ok {
			continue
		}
		for _, o := range item {
			if op, ok := o.(jsonObj); ok {
				fn(child(op, "responses"))
			}
		}
	}
}

var errorResponseSchema = jsonObj{
	"type":        "object",
	"description": "Standard error response",
	"properties": jsonObj{
		"status_code": jsonObj{"type": "integer", "format": "int32"},
		"status":      jsonObj{"type": "string"},
		"code":        jsonObj{"type": "integer", "format": "int32"},
		"error":       jsonObj{"type": "string"},
		"field":       jsonObj{"type": "string"},
		"request_id":  jsonObj{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

func errorResponse(description string, example jsonObj) jsonObj {
	example["request_id"] = "579f33bf50b1/abc-000001"
	return jsonObj{
		"description": description,
		"content": jsonObj{
			"application/json": jsonObj{
				"schema":  jsonObj{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// defaultResponses fill in what an operation does not document itself
var defaultResponses = map[string]jsonObj{
	"400": errorResponse("Bad Request", jsonObj{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        5,
		"error":       "order must be one of [recent stipend_desc stipend_asc title]",
		"field":       "order",
	}),
	"500": errorResponse("Internal Server Error", jsonObj{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "panic recovered",
	}),
}
