package domain

import (
	"time"

	"internhub/internal/core/discovery"
)

// StipendInput is an optional stipend window, a nil bound means the candidate set's bound
type StipendInput struct {
	Min *int `json:"min,omitempty" example:"10000"`
	Max *int `json:"max,omitempty" example:"25000"`
}

// SpecInput is the wire form of a discovery filter spec
type SpecInput struct {
	Search        string        `json:"search,omitempty" validate:"max=200" example:"react"`
	Domains       []string      `json:"domains,omitempty" validate:"max=9,dive,internship_domain" example:"Software Development"`
	LocationModes []string      `json:"location_modes,omitempty" validate:"max=3,dive,internship_mode" example:"remote"`
	Duration      string        `json:"duration,omitempty" validate:"omitempty,internship_duration" example:"3-6"`
	Stipend       *StipendInput `json:"stipend,omitempty"`
	Skills        []string      `json:"skills,omitempty" validate:"max=50,dive,required,max=60" example:"React"`
}

// SearchInput is the body of POST /internships/search
// Page is 1 based, nil means the first page, 0 and below are rejected by the engine
type SearchInput struct {
	Spec     SpecInput `json:"spec"`
	Page     *int      `json:"page,omitempty" example:"1"`
	PageSize int       `json:"page_size,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
	Order    string    `json:"order,omitempty" validate:"omitempty,oneof=recent stipend_desc stipend_asc title" example:"recent"`
}

// SearchResult is one page of discovery results
type SearchResult struct {
	Items  []discovery.Listing `json:"items"`
	Active []discovery.Facet   `json:"active"`
	Empty  bool                `json:"empty"`

	// Page is carried in the envelope page block, not in data
	Page discovery.Page `json:"-"`
}

// FacetsInput is the body of POST /internships/facets
type FacetsInput struct {
	Spec SpecInput `json:"spec"`
}

// ToggleInput flips one value of a set-typed facet
type ToggleInput struct {
	Spec  SpecInput `json:"spec"`
	Facet string    `json:"facet" validate:"required,oneof=domain location_mode skill" example:"skill"`
	Value string    `json:"value" validate:"required,max=60" example:"React"`
}

// SpecResult is a normalized spec plus the predicates it activates
type SpecResult struct {
	Spec   discovery.FilterSpec   `json:"spec"`
	Active []discovery.Facet      `json:"active"`
	Bounds discovery.StipendRange `json:"bounds"`
}

// PostingInput is what a company submits to list an internship
type PostingInput struct {
	Title        string     `json:"title" validate:"required,max=200" example:"Frontend Developer Intern"`
	Company      string     `json:"company" validate:"required,max=200" example:"TechCorp Solutions"`
	Domain       string     `json:"domain" validate:"required,internship_domain" example:"Software Development"`
	LocationMode string     `json:"location_mode" validate:"required,internship_mode" example:"remote"`
	Duration     string     `json:"duration" validate:"required,internship_duration" example:"3-6"`
	City         string     `json:"city,omitempty" validate:"max=120" example:"Bangalore"`
	Description  string     `json:"description" validate:"required,max=5000"`
	Stipend      int        `json:"stipend" validate:"gte=0" example:"15000"`
	Skills       []string   `json:"skills" validate:"required,min=1,max=30,dive,required,max=60" example:"React"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	ClosesAt     time.Time  `json:"closes_at" validate:"required"`
	ContactEmail string     `json:"contact_email" validate:"required,email,max=254" example:"hr@techcorp.example"`
}

// ReviewInput is a college's review of a pending posting
type ReviewInput struct {
	College  string `json:"college" validate:"required,max=200" example:"IIT Delhi"`
	Decision string `json:"decision" validate:"required,oneof=approve reject" example:"approve"`
	Comment  string `json:"comment,omitempty" validate:"max=2000"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
}
