// Package http is internhub's json transport: one envelope for every reply, chi for routing
package http

import (
	"encoding/json"
	"net/http"

	perr "internhub/internal/platform/errors"
	pnet "internhub/internal/platform/net"
	"internhub/internal/platform/net/http/bind"
)

// Envelope wraps every body the api writes
// success fills Data and sometimes Page, failure fills Code, Error and maybe Field
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
	Page       *Page          `json:"page,omitempty"`
}

// Page is the paging block next to list data
type Page struct {
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// NewPage fills in HasPrev and HasNext, an empty result has neither
func NewPage(total, totalPages, page, size int) Page {
	return Page{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   size,
		HasPrev:    totalPages > 0 && page > 1,
		HasNext:    page < totalPages,
	}
}

// JSON writes v with status
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorEnvelope is the failure body for err, status and code come from its perr code
func ErrorEnvelope(err error, reqID string) Envelope {
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       wire.Code,
		Error:      wire.Message,
		Field:      wire.Field,
		RequestID:  reqID,
	}
}

// Response is what handlers return instead of writing, Status 0 means 200
// an error Body picks its own status
type Response struct {
	Status int
	Body   any
	Page   *Page
}

func OK(data any) Response      { return Response{Status: http.StatusOK, Body: data} }
func Created(data any) Response { return Response{Status: http.StatusCreated, Body: data} }
func NoContent() Response       { return Response{Status: http.StatusNoContent} }
func Error(err error) Response  { return Response{Body: err} }

// List is a 200 with items as data and page beside it
func List(items any, page Page) Response {
	return Response{Status: http.StatusOK, Body: items, Page: &page}
}

func (resp Response) write(w http.ResponseWriter, r *http.Request) {
	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		JSON(w, perr.HTTPStatus(err), ErrorEnvelope(err, reqID))
		return
	}
	status := resp.Status
	switch status {
	case 0:
		status = http.StatusOK
	case http.StatusNoContent:
		w.WriteHeader(status)
		return
	}
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       resp.Body,
		Page:       resp.Page,
	})
}

// result turns a handler's return into a Response, a returned Response passes through
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// JSONHandler binds and validates a T body, then replies with whatever fn returns
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			Error(err).write(w, r)
			return
		}
		result(fn(r, in)).write(w, r)
	}
}

// JSONHandlerNoBody is JSONHandler for routes without a body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return func(w http.ResponseWriter, r *http.Request) { result(fn(r)).write(w, r) }
}

func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

func DeleteJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, JSONHandlerNoBody(h))
}

func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(h))
}

func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Patch(path, JSONHandler(h))
}
