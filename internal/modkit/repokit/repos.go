// Package repokit is the glue between services and sql repositories
// services hold a Binder and rebind it to whatever Queryer a tx hands them
package repokit

import "internhub/internal/platform/store"

// store seams under repository friendly names
type (
	Queryer    = store.RowQuerier
	TxRunner   = store.TxRunner
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// Binder produces a repository bound to q, the pool or a tx
type Binder[T any] interface {
	Bind(q Queryer) T
}

// BindFunc adapts a constructor, handy for in memory repos that ignore q
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
