package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"internhub/internal/platform/store/ch"
	"internhub/internal/platform/store/pg"
	"internhub/internal/platform/store/rds"
)

// pg boot retry, backoff doubles from backoffStart up to backoffCap
const (
	defaultPGRetries = 20
	defaultPGPing    = 3 * time.Second
	backoffStart     = 150 * time.Millisecond
	backoffCap       = 2 * time.Second
)

// openPG opens the pool then waits for postgres to answer, compose often starts us first
// boot pings go to the pool directly so they stay out of the sql trace
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:             cfg.PG.URL,
		MaxConns:        cfg.PG.MaxConns,
		MinConns:        cfg.PG.MinConns,
		ConnMaxLifetime: cfg.PG.ConnMaxLifetime,
		SlowMs:          cfg.PG.SlowQueryMs,
		AppName:         cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	retries := orDefault(cfg.PG.ConnectRetries, defaultPGRetries)
	pingFor := orDefault(cfg.PG.PingTimeout, defaultPGPing)
	wait := backoffStart
	var last error
	for attempt := 1; attempt <= retries; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, pingFor)
		last = p.Pool.Ping(pctx)
		cancel()
		if last == nil {
			return newPGAdapter(p), nil
		}
		s.Log.Warn().Err(last).Int("attempt", attempt).Dur("retry_in", wait).Msg("postgres not ready")

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			p.Close()
			return nil, ctx.Err()
		case <-t.C:
		}
		wait = min(2*wait, backoffCap)
	}
	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", retries, last)
}

// orDefault returns v unless it is zero or negative
func orDefault[T int | time.Duration](v, def T) T {
	if v > 0 {
		return v
	}
	return def
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := ch.Open(ctx, ch.Config{URL: cfg.CH.URL, ClientName: cfg.CH.ClientName, ClientTag: cfg.CH.ClientTag})
	if err != nil {
		return nil, err
	}
	return chAdapter{c}, nil
}

func openRDS(ctx context.Context, cfg Config, _ *Store) (Cache, error) {
	r, err := rds.Open(ctx, rds.Config{URL: cfg.RDS.URL, Addr: cfg.RDS.Addr, DB: cfg.RDS.DB})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// chAdapter widens *ch.CH to the Clickhouse seam
type chAdapter struct{ c *ch.CH }

func (a chAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.c.Exec(ctx, sql, args...)
}

// Insert takes a batch as [][]any or a single row as []any
func (a chAdapter) Insert(ctx context.Context, table string, data any) error {
	switch v := data.(type) {
	case [][]any:
		return a.c.Insert(ctx, table, v)
	case []any:
		return a.c.Insert(ctx, table, [][]any{v})
	}
	return fmt.Errorf("store: unsupported clickhouse insert shape %T", data)
}

func (a chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

func (a chAdapter) Ping(ctx context.Context) error {
	if a.c == nil {
		return errors.New("store: nil clickhouse client")
	}
	return a.c.Ping(ctx)
}

func (a chAdapter) Close() error { return a.c.Close() }

// chRows drops the Close error to fit Rows
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
