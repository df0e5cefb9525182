package bind

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/logger"
)

// JSONOptions tune ParseJSON, the zero value is not the default, see defaults
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// defaults is a 1MB limit with unknown fields rejected and a body required
var defaults = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

// bodiless methods may send nothing at all
func bodiless(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return true
	}
	return false
}

// ParseJSON decodes one JSON value from the body into T and validates it
// every failure is a perr JSON or Validation error, so handlers can return it unchanged
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var out, zero T
	o := defaults
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	var src io.Reader = r.Body
	if o.MaxBytes > 0 {
		src = io.LimitReader(src, o.MaxBytes)
	}
	br := bufio.NewReader(src)
	if _, err := br.Peek(1); errors.Is(err, io.EOF) {
		if o.AllowEmptyBody || bodiless(r.Method) {
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(br)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&out); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(out); err != nil {
		return zero, err
	}
	return out, nil
}
