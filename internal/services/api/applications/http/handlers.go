// Package http provides http transport for applications
package http

import (
	stdhttp "net/http"
	"sync"

	"internhub/internal/modkit/httpkit"
	"internhub/internal/platform/net/http/bind"
	"internhub/internal/services/api/applications/domain"
	svc "internhub/internal/services/api/applications/service"
)

var enumsOnce sync.Once

func registerValidators() {
	enumsOnce.Do(func() {
		err := bind.RegisterEnum("application_status", "{0} must be Applied, Under Review, Accepted or Rejected", func(s string) bool {
			_, ok := domain.ParseStatus(s)
			return ok
		})
		if err != nil {
			panic("applications: register validator: " + err.Error())
		}
	})
}

// Register mounts applications endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	registerValidators()

	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ApplyInput](r, "/", h.apply)
	httpkit.Get(r, "/", h.list)
	httpkit.PatchJSON[domain.StatusInput](r, "/{id}/status", h.move)
}

type handlers struct{ svc svc.Service }

// @Summary Apply to an internship
// @Description The listing must exist and still accept applications. One application per student and listing.
// @Tags Applications
// @Accept json
// @Produce json
// @Param payload body domain.ApplyInput true "Application"
// @Success 201 {object} domain.Application "created"
// @Router /applications [post]
func (h *handlers) apply(r *stdhttp.Request, in domain.ApplyInput) (any, error) {
	a, err := h.svc.Apply(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(a), nil
}

// @Summary A student's applications
// @Tags Applications
// @Produce json
// @Param student_id query string true "Student id"
// @Success 200 {object} domain.ListResult "ok"
// @Router /applications [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in := domain.ListInput{StudentID: r.URL.Query().Get("student_id")}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), in)
}

// @Summary Move an application
// @Description Applied to Under Review or Rejected, Under Review to Accepted or Rejected
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path string true "Application id"
// @Param payload body domain.StatusInput true "Next status"
// @Success 200 {object} domain.Application "ok"
// @Router /applications/{id}/status [patch]
func (h *handlers) move(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.svc.Move(r.Context(), httpkit.Param(r, "id"), in)
}
