package store

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/testkit"
)

// fakeTx satisfies TxRunner and Pinger, rows are served from data
type fakeTx struct {
	pingErr  error
	closed   bool
	data     [][]any
	queryErr error
	affected int64
}

func (f *fakeTx) Ping(context.Context) error { return f.pingErr }
func (f *fakeTx) Close() error               { f.closed = true; return nil }
func (f *fakeTx) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return fn(f)
}

func (f *fakeTx) Exec(context.Context, string, ...any) (CommandTag, error) {
	return fakeTag(f.affected), f.queryErr
}

func (f *fakeTx) Query(context.Context, string, ...any) (Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{data: f.data, idx: -1}, nil
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	rs, _ := f.Query(ctx, sql, args...)
	r := rs.(*fakeRows)
	if !r.Next() {
		return errRow{errors.New("no rows")}
	}
	return r
}

type fakeTag int64

func (t fakeTag) String() string      { return "UPDATE" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Next() bool        { r.idx++; return r.idx < len(r.data) }
func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }
func (r *fakeRows) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.data[r.idx][i].(string)
		case *int:
			*p = r.data[r.idx][i].(int)
		}
	}
	return nil
}

type fakeCache struct {
	pingErr error
	closed  bool
}

func (c *fakeCache) Ping(context.Context) error                               { return c.pingErr }
func (c *fakeCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (c *fakeCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (c *fakeCache) Del(context.Context, ...string) error                     { return nil }
func (c *fakeCache) Close() error                                             { c.closed = true; return nil }

func TestOpen_NothingEnabled(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil || s.RDS != nil {
		t.Fatalf("expected no backends, got %+v", s)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_PGBadURL(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "://bad"}})
	if err == nil || s != nil {
		t.Fatalf("expected error and nil store, got %v %v", s, err)
	}
}

func TestOpen_LaterFailureClosesEarlierBackends(t *testing.T) {
	testkit.Serial(t)

	pg := &fakeTx{}
	testkit.Swap(t, &pgOpener, func(context.Context, Config, *Store) (TxRunner, error) { return pg, nil })
	testkit.Swap(t, &rdsOpener, func(context.Context, Config, *Store) (Cache, error) {
		return nil, errors.New("connection refused")
	})

	s, err := Open(context.Background(), Config{
		PG:  PGConfig{Enabled: true},
		RDS: RedisConfig{Enabled: true, Addr: "x:1"},
	})
	if err == nil || s != nil {
		t.Fatalf("expected error and nil store, got %v %v", s, err)
	}
	if !strings.Contains(err.Error(), "rds:") {
		t.Fatalf("expected rds step in error, got %v", err)
	}
	if !pg.closed {
		t.Fatalf("pg must be closed when redis fails")
	}
}

func TestOpen_WiresEveryBackend(t *testing.T) {
	testkit.Serial(t)

	cache := &fakeCache{}
	testkit.Swap(t, &pgOpener, func(context.Context, Config, *Store) (TxRunner, error) { return &fakeTx{}, nil })
	testkit.Swap(t, &rdsOpener, func(context.Context, Config, *Store) (Cache, error) { return cache, nil })

	s, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true}, RDS: RedisConfig{Enabled: true}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG == nil || s.RDS != Cache(cache) {
		t.Fatalf("backends not wired: %+v", s)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !cache.closed {
		t.Fatalf("cache not closed")
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	var nilStore *Store
	if err := nilStore.Guard(context.Background()); err == nil {
		t.Fatalf("nil store Guard should error")
	}

	ok := &Store{PG: &fakeTx{}, RDS: &fakeCache{}}
	if err := ok.Guard(context.Background()); err != nil {
		t.Fatalf("Guard: %v", err)
	}

	bad := &Store{PG: &fakeTx{pingErr: errors.New("down")}, RDS: &fakeCache{pingErr: errors.New("gone")}}
	err := bad.Guard(context.Background())
	if err == nil {
		t.Fatalf("expected guard error")
	}
	for _, want := range []string{"pg: down", "rds: gone"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestExecOne(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if err := ExecOne(ctx, &fakeTx{affected: 1}, "UPDATE x"); err != nil {
		t.Fatalf("one row: %v", err)
	}
	if err := ExecOne(ctx, &fakeTx{affected: 0}, "UPDATE x"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("zero rows: want not found got %v", err)
	}
	if err := ExecOne(ctx, &fakeTx{affected: 3}, "UPDATE x"); err == nil {
		t.Fatalf("three rows should error")
	}
}

func TestOneManyScalar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scan := func(r Row) (string, error) {
		var id string
		var n int
		err := r.Scan(&id, &n)
		return id, err
	}

	q := &fakeTx{data: [][]any{{"a", 1}, {"b", 2}}}
	got, err := Many(ctx, q, scan, "SELECT")
	if err != nil || !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Many = %v, %v", got, err)
	}

	if _, err := One(ctx, q, scan, "SELECT"); err == nil {
		t.Fatalf("two rows is not one")
	}

	one, err := One(ctx, &fakeTx{data: [][]any{{"z", 9}}}, scan, "SELECT")
	if err != nil || one != "z" {
		t.Fatalf("One = %q, %v", one, err)
	}

	if _, err := One(ctx, &fakeTx{}, scan, "SELECT"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("no rows: want not found got %v", err)
	}

	empty, err := Many(ctx, &fakeTx{}, scan, "SELECT")
	if err != nil || empty == nil {
		t.Fatalf("Many on no rows = %v, %v, want empty non nil", empty, err)
	}

	n, err := Scalar[string](ctx, q, "SELECT")
	if err != nil || n != "a" {
		t.Fatalf("Scalar = %q, %v", n, err)
	}
}
