package repokit

import (
	"context"
	"fmt"
	"time"
)

// Pinger is anything that answers a health probe
type Pinger interface {
	Ping(context.Context) error
}

// Ping checks p within timeout unless ctx already carries a deadline
func Ping(ctx context.Context, name string, p Pinger, timeout time.Duration) error {
	if p == nil {
		return fmt.Errorf("%s: nil dependency", name)
	}
	if _, ok := ctx.Deadline(); !ok && timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", name, err)
	}
	return nil
}

// MustPing panics if a dependency doesn't answer a Ping within 5s
func MustPing(ctx context.Context, name string, p Pinger) {
	if err := Ping(ctx, name, p, 5*time.Second); err != nil {
		panic(err.Error())
	}
}
