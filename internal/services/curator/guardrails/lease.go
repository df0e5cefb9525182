// Package guardrails keeps concurrent curators from sweeping at the same time
package guardrails

import (
	"context"
	"errors"

	"internhub/internal/modkit/repokit"
)

// ErrLeaseHeld signals another curator owns the lease already
var ErrLeaseHeld = errors.New("curator: lease already held")

// Lease runs do while holding a lease, or returns ErrLeaseHeld
type Lease func(ctx context.Context, do func(context.Context) error) error

// MakeAdvisoryLease claims a transaction scoped postgres advisory lock keyed by key
// the lock is released when the wrapping transaction ends, crashed holders included
func MakeAdvisoryLease(db repokit.TxRunner, key int64) Lease {
	return func(ctx context.Context, do func(context.Context) error) error {
		return db.Tx(ctx, func(q repokit.Queryer) error {
			var ok bool
			if err := q.QueryRow(ctx, `select pg_try_advisory_xact_lock($1)`, key).Scan(&ok); err != nil {
				return err
			}
			if !ok {
				return ErrLeaseHeld
			}
			return do(ctx)
		})
	}
}
