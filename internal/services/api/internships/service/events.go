package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"internhub/internal/core/discovery"
	"internhub/internal/platform/logger"
	"internhub/internal/platform/store"
)

// SearchEventsDDL creates the clickhouse table searches are recorded into
const SearchEventsDDL = `CREATE TABLE IF NOT EXISTS %s (
  ts              DateTime64(3, 'UTC'),
  search          String,
  domains         Array(String),
  location_modes  Array(String),
  duration        LowCardinality(String),
  stipend_min     Int64,
  stipend_max     Int64,
  skills          Array(String),
  sort_order      LowCardinality(String),
  page            UInt32,
  page_size       UInt32,
  total           UInt32
) ENGINE = MergeTree
ORDER BY ts
TTL toDateTime(ts) + INTERVAL 90 DAY`

// recorder writes one row per search, a nil *recorder records nothing
type recorder struct {
	ch    store.Clickhouse
	table string

	mu    sync.Mutex
	ready bool
}

// ensure creates the table on first use, a failed attempt is retried on the next search
func (r *recorder) ensure(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		return nil
	}
	if err := r.ch.Exec(ctx, fmt.Sprintf(SearchEventsDDL, r.table)); err != nil {
		return err
	}
	r.ready = true
	return nil
}

func (r *recorder) record(ctx context.Context, at time.Time, spec discovery.FilterSpec, ord discovery.Order, pg discovery.Page) {
	if r == nil {
		return
	}
	if err := r.ensure(ctx); err != nil {
		logger.C(ctx).Warn().Err(err).Str("table", r.table).Msg("internships: search events table unavailable")
		return
	}
	row := []any{
		at.UTC(),
		spec.Search,
		strs(spec.Domains),
		strs(spec.LocationModes),
		string(spec.Duration),
		int64(spec.Stipend.Min),
		int64(spec.Stipend.Max),
		spec.Skills,
		string(ord),
		uint32(pg.Page),
		uint32(pg.PageSize),
		uint32(pg.TotalCount),
	}
	if err := r.ch.Insert(ctx, r.table, row); err != nil {
		logger.C(ctx).Warn().Err(err).Str("table", r.table).Msg("internships: search event not recorded")
	}
}

func strs[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
