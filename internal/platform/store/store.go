// Package store opens the optional backends internhub can run with
// postgres holds listings and applications, clickhouse takes search events, redis caches candidates
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"internhub/internal/platform/logger"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set, callers Close it
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag describes what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs sql against the pool or inside a tx
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also run fn in a tx
// fn's error rolls the tx back, nil commits
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse takes analytics rows and answers queries over them
type Clickhouse interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Insert(ctx context.Context, table string, data any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Cache is a byte valued kv with ttl, found is false on a miss
type Cache interface {
	Get(ctx context.Context, key string) (val []byte, found bool, err error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Close() error
}

// Pinger is implemented by seams that can answer a readiness probe
type Pinger interface{ Ping(context.Context) error }

// Store holds whichever backends were enabled, the rest stay nil
type Store struct {
	Log logger.Logger
	PG  TxRunner
	CH  Clickhouse
	RDS Cache
}

// Option adjusts the Store before any backend opens
type Option func(*Store) error

// WithLogger sets the logger backends log through
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error { s.Log = log; return nil }
}

// swapped in tests
var (
	pgOpener  = openPG
	chOpener  = openCH
	rdsOpener = openRDS
)

// Open connects every backend cfg enables, in pg, ch, rds order
// if one fails the ones already open are closed and the error names the backend
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	steps := []struct {
		name string
		on   bool
		open func() error
	}{
		{"pg", cfg.PG.Enabled, func() (err error) { s.PG, err = pgOpener(ctx, cfg, s); return }},
		{"ch", cfg.CH.Enabled, func() (err error) { s.CH, err = chOpener(ctx, cfg, s); return }},
		{"rds", cfg.RDS.Enabled, func() (err error) { s.RDS, err = rdsOpener(ctx, cfg, s); return }},
	}
	for _, st := range steps {
		if !st.on {
			continue
		}
		if err := st.open(); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("%s: %w", st.name, err)
		}
	}

	s.Log.Debug().Bool("pg", s.PG != nil).Bool("ch", s.CH != nil).Bool("rds", s.RDS != nil).Msg("store opened")
	return s, nil
}

// seams lists the open backends by name
func (s *Store) seams() map[string]any {
	out := map[string]any{}
	if s.PG != nil {
		out["pg"] = s.PG
	}
	if s.CH != nil {
		out["ch"] = s.CH
	}
	if s.RDS != nil {
		out["rds"] = s.RDS
	}
	return out
}

// Guard pings every open backend that supports it and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for name, seam := range s.seams() {
		if p, ok := seam.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes every open backend, a nil Store is fine
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, seam := range s.seams() {
		if c, ok := seam.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
