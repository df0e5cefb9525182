package store

import (
	"context"
	"fmt"

	perr "internhub/internal/platform/errors"
)

// ExecOne runs a write that must touch exactly one row
// no row at all reads as perr.ErrNotFound
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		if n == 0 {
			return perr.ErrNotFound
		}
		return fmt.Errorf("store: %d rows affected, want 1", n)
	}
	return nil
}

// Scalar scans the first column of the first row
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (v T, err error) {
	err = q.QueryRow(ctx, sql, args...).Scan(&v)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Many maps every row through scan, an empty result is an empty non nil slice
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	out := []T{}
	err := each(ctx, q, sql, args, func(r Row) error {
		item, err := scan(r)
		if err == nil {
			out = append(out, item)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// One is Many for exactly one row, none is perr.ErrNotFound
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var (
		got  T
		seen int
	)
	err := each(ctx, q, sql, args, func(r Row) error {
		if seen++; seen > 1 {
			return fmt.Errorf("store: expected 1 row, got more")
		}
		var err error
		got, err = scan(r)
		return err
	})
	var zero T
	switch {
	case err != nil:
		return zero, err
	case seen == 0:
		return zero, perr.ErrNotFound
	}
	return got, nil
}

func each(ctx context.Context, q RowQuerier, sql string, args []any, fn func(Row) error) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
