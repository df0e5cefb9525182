package httpkit

import (
	"net/http"

	phttp "internhub/internal/platform/net/http"
)

// PostJSON routes POST path to h with a validated T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// PatchJSON routes PATCH path to h with a validated T body
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PatchJSON(r, path, h)
}

// Get routes GET path to h
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// Delete routes DELETE path to h
func Delete(r Router, path string, h func(*http.Request) (any, error)) { phttp.DeleteJSON(r, path, h) }
