// Package strings holds small string and slice helpers shared across layers
package strings

import std "strings"

// IfEmpty returns in, or def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustPrefix cleans a mount path to one leading slash and no trailing one
// "internships/" and " /internships " both give "/internships", a bare root panics
func MustPrefix(s string) string {
	trimmed := std.Trim(std.TrimSpace(s), "/ ")
	if trimmed == "" {
		panic("root path is required")
	}
	return "/" + trimmed
}

// SQLNull turns blank text into a NULL argument
func SQLNull(s string) any {
	if std.TrimSpace(s) != "" {
		return s
	}
	return nil
}
