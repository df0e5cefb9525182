package domain

import (
	"context"
)

// ServicePort is what the http layer needs from the applications service
type ServicePort interface {
	Apply(ctx context.Context, in ApplyInput) (Application, error)
	List(ctx context.Context, in ListInput) (ListResult, error)
	Move(ctx context.Context, id string, in StatusInput) (Application, error)
}
