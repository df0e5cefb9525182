package discovery

import (
	perr "internhub/internal/platform/errors"
)

// sentinels, match with errors.Is
var (
	// ErrInvalidFilterSpec means the spec is structurally invalid
	// an inverted stipend range or a value outside a known enumeration
	ErrInvalidFilterSpec = perr.New(perr.ErrorCodeInvalidArgument, "invalid filter spec")

	// ErrInvalidPageRequest means the page number is below 1
	// an overflowing page is not an error
	ErrInvalidPageRequest = perr.New(perr.ErrorCodeInvalidArgument, "invalid page request")
)

func invalidSpec(field, format string, a ...any) error {
	return perr.WithField(perr.Wrapf(ErrInvalidFilterSpec, perr.ErrorCodeInvalidArgument, format, a...), field)
}

func invalidPage(format string, a ...any) error {
	return perr.WithField(perr.Wrapf(ErrInvalidPageRequest, perr.ErrorCodeInvalidArgument, format, a...), "page")
}
