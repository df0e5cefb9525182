// Package time has helpers for time values crossing the sql boundary
package time

import "time"

// Ptr is nil for the zero time so it binds as NULL, otherwise &t
func Ptr(t time.Time) *time.Time {
	if !t.IsZero() {
		return &t
	}
	return nil
}
