package domain

import (
	"context"
	"time"

	"internhub/internal/core/discovery"
)

// ServicePort is what the http layer needs from the internships service
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (SearchResult, error)
	Facets(ctx context.Context, in FacetsInput) (discovery.Facets, error)
	Toggle(ctx context.Context, in ToggleInput) (SpecResult, error)
	Clear(ctx context.Context) (SpecResult, error)
	Get(ctx context.Context, id string) (Posting, error)
	Post(ctx context.Context, in PostingInput) (Posting, error)
	Pending(ctx context.Context) ([]Posting, error)
	Review(ctx context.Context, id string, in ReviewInput) (Posting, error)
}

// ListingsPort lets other modules look postings up without importing the service
type ListingsPort interface {
	Posting(ctx context.Context, id string) (Posting, error)
}

// CuratorPort is the maintenance surface the curator drives
type CuratorPort interface {
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
	Seed(ctx context.Context, postings []Posting) (int, error)
	Invalidate(ctx context.Context) error
}
