package repokit

import (
	"context"
	"strconv"
	"time"
)

// BeginHook runs first thing inside every tx, on the tx's Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// hookedTx overrides Tx only, plain statements go straight to the embedded runner
type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

// WithBeginHooks returns inner with hooks run at the start of each tx
// a failing hook aborts the tx before fn runs
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	if len(hooks) == 0 {
		return inner
	}
	return hookedTx{TxRunner: inner, hooks: hooks}
}

func (h hookedTx) Tx(ctx context.Context, fn func(Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hook := range h.hooks {
			if err := hook(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// StatementTimeout sets a tx local statement_timeout, d <= 0 is a no-op
func StatementTimeout(d time.Duration) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		if d <= 0 {
			return nil
		}
		_, err := q.Exec(ctx, "SET LOCAL statement_timeout = "+strconv.FormatInt(d.Milliseconds(), 10))
		return err
	}
}
