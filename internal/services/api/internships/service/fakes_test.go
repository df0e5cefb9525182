package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"internhub/internal/core/discovery"
	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/store"
	"internhub/internal/services/api/internships/domain"
	"internhub/internal/services/api/internships/repo"
)

// memRepo is an in memory Repo, candidates are served in insertion order
type memRepo struct {
	mu         sync.Mutex
	rows       []domain.Posting
	candidates int

	// midRead runs after the rows are read, before they are returned
	midRead func()
}

func (m *memRepo) idx(id string) int {
	return slices.IndexFunc(m.rows, func(p domain.Posting) bool { return p.ID == id })
}

func (m *memRepo) Candidates(context.Context) ([]domain.Posting, error) {
	m.mu.Lock()
	m.candidates++
	out := []domain.Posting{}
	for _, p := range m.rows {
		if p.Status.Candidate() {
			out = append(out, p)
		}
	}
	hook := m.midRead
	m.mu.Unlock()
	if hook != nil {
		hook()
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id string) (domain.Posting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.idx(id); i >= 0 {
		return m.rows[i], nil
	}
	return domain.Posting{}, perr.NotFoundf("internship %s not found", id)
}

func (m *memRepo) Pending(context.Context) ([]domain.Posting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Posting{}
	for _, p := range m.rows {
		if p.Status == domain.StatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memRepo) Insert(_ context.Context, p domain.Posting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.idx(p.ID) >= 0 {
		return perr.DuplicateKeyf("internship %s exists", p.ID)
	}
	m.rows = append(m.rows, p)
	return nil
}

func (m *memRepo) Upsert(_ context.Context, p domain.Posting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.idx(p.ID); i >= 0 {
		m.rows[i] = p
		return nil
	}
	m.rows = append(m.rows, p)
	return nil
}

func (m *memRepo) Review(_ context.Context, id string, st domain.Status, v discovery.Verifier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.idx(id)
	if i < 0 || m.rows[i].Status != domain.StatusPending {
		return perr.NotFoundf("no pending internship %s", id)
	}
	m.rows[i].Status = st
	m.rows[i].Verified = st == domain.StatusApproved
	if m.rows[i].Verified {
		m.rows[i].VerifiedBy = &v
	}
	return nil
}

func (m *memRepo) CloseExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for i, p := range m.rows {
		if p.Status.Candidate() && p.ClosesAt != nil && p.ClosesAt.Before(now) {
			m.rows[i].Status = domain.StatusClosed
			n++
		}
	}
	return n, nil
}

func (m *memRepo) binder() repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return m })
}

// fakeTx runs fn inline, repos bound to it never touch sql
type fakeTx struct{ txs int }

func (f *fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, errors.New("fakeTx: no sql")
}
func (f *fakeTx) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("fakeTx: no sql")
}
func (f *fakeTx) QueryRow(context.Context, string, ...any) store.Row { return nil }
func (f *fakeTx) Tx(_ context.Context, fn func(store.RowQuerier) error) error {
	f.txs++
	return fn(f)
}

type fakeCache struct {
	mu     sync.Mutex
	kv     map[string][]byte
	ttl    time.Duration
	getErr error
	dels   int
}

func newFakeCache() *fakeCache { return &fakeCache{kv: map[string][]byte{}} }

func (c *fakeCache) Get(_ context.Context, k string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.kv[k]
	return v, ok, nil
}
func (c *fakeCache) Set(_ context.Context, k string, v []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kv[k] = v
	c.ttl = ttl
	return nil
}
func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dels++
	for _, k := range keys {
		delete(c.kv, k)
	}
	return nil
}
func (c *fakeCache) Close() error { return nil }

type fakeCH struct {
	mu        sync.Mutex
	ddl       []string
	rows      [][]any
	insertErr error
}

func (c *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ddl = append(c.ddl, sql)
	return nil
}
func (c *fakeCH) Insert(_ context.Context, _ string, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.insertErr != nil {
		return c.insertErr
	}
	c.rows = append(c.rows, data.([]any))
	return nil
}
func (c *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (c *fakeCH) Close() error                                              { return nil }
