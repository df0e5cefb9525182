// Package http provides http transport for internships
package http

import (
	stdhttp "net/http"
	"sync"

	"internhub/internal/core/discovery"
	"internhub/internal/modkit/httpkit"
	"internhub/internal/platform/net/http/bind"
	"internhub/internal/services/api/internships/domain"
	svc "internhub/internal/services/api/internships/service"
)

var enumsOnce sync.Once

// RegisterValidators teaches the shared validator the internship enums
// safe to call more than once
func RegisterValidators() {
	enumsOnce.Do(func() {
		must(bind.RegisterEnum("internship_domain", "{0} must be a known internship domain", func(s string) bool {
			_, ok := discovery.ParseDomain(s)
			return ok
		}))
		must(bind.RegisterEnum("internship_mode", "{0} must be remote, on-site or hybrid", func(s string) bool {
			_, ok := discovery.ParseLocationMode(s)
			return ok
		}))
		must(bind.RegisterEnum("internship_duration", "{0} must be 1-3, 3-6 or 6+", func(s string) bool {
			_, ok := discovery.ParseDuration(s)
			return ok
		}))
	})
}

func must(err error) {
	if err != nil {
		panic("internships: register validator: " + err.Error())
	}
}

// Register mounts internships endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	RegisterValidators()

	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.FacetsInput](r, "/facets", h.facets)
	httpkit.PostJSON[domain.ToggleInput](r, "/filters/toggle", h.toggle)
	r.Post("/filters/clear", httpkit.Call(h.clear))
	httpkit.Get(r, "/pending", h.pending)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PostJSON[domain.PostingInput](r, "/", h.post)
	httpkit.PostJSON[domain.ReviewInput](r, "/{id}/review", h.review)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /internships/search Internships internshipsSearch
// @Summary Search internships
// @Description Filters the candidate set, orders it and returns one page. Omitted stipend bounds default to the full range.
// @Tags Internships
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Filter spec and page"
// @Success 200 {object} domain.SearchResult "ok"
// @Router /internships/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	res, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return nil, err
	}
	p := res.Page
	return httpkit.List(res, p.TotalCount, p.TotalPages, p.Page, p.PageSize), nil
}

// @Summary Facet counts
// @Description Per value counts for each facet, computed over listings matching every other active facet
// @Tags Internships
// @Accept json
// @Produce json
// @Param payload body domain.FacetsInput true "Filter spec"
// @Success 200 {object} discovery.Facets "ok"
// @Router /internships/facets [post]
func (h *handlers) facets(r *stdhttp.Request, in domain.FacetsInput) (any, error) {
	return h.svc.Facets(r.Context(), in)
}

// @Summary Toggle a facet value
// @Tags Internships
// @Accept json
// @Produce json
// @Param payload body domain.ToggleInput true "Spec, facet and value"
// @Success 200 {object} domain.SpecResult "ok"
// @Router /internships/filters/toggle [post]
func (h *handlers) toggle(r *stdhttp.Request, in domain.ToggleInput) (any, error) {
	return h.svc.Toggle(r.Context(), in)
}

// @Summary Cleared filter spec
// @Tags Internships
// @Produce json
// @Success 200 {object} domain.SpecResult "ok"
// @Router /internships/filters/clear [post]
func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	return h.svc.Clear(r.Context())
}

// @Summary Postings awaiting review
// @Tags Internships
// @Produce json
// @Success 200 {array} domain.Posting "ok"
// @Router /internships/pending [get]
func (h *handlers) pending(r *stdhttp.Request) (any, error) {
	return h.svc.Pending(r.Context())
}

// @Summary Get one internship
// @Tags Internships
// @Produce json
// @Param id path string true "Internship id"
// @Success 200 {object} domain.Posting "ok"
// @Router /internships/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Post an internship
// @Description New postings are pending and unverified until a college reviews them
// @Tags Internships
// @Accept json
// @Produce json
// @Param payload body domain.PostingInput true "Posting"
// @Success 201 {object} domain.Posting "created"
// @Router /internships [post]
func (h *handlers) post(r *stdhttp.Request, in domain.PostingInput) (any, error) {
	p, err := h.svc.Post(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(p), nil
}

// @Summary Review a pending internship
// @Tags Internships
// @Accept json
// @Produce json
// @Param id path string true "Internship id"
// @Param payload body domain.ReviewInput true "Review"
// @Success 200 {object} domain.Posting "ok"
// @Router /internships/{id}/review [post]
func (h *handlers) review(r *stdhttp.Request, in domain.ReviewInput) (any, error) {
	return h.svc.Review(r.Context(), httpkit.Param(r, "id"), in)
}
