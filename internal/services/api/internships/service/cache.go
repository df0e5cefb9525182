package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"internhub/internal/platform/logger"
	"internhub/internal/platform/store"
	"internhub/internal/services/api/internships/domain"
)

// snapshots caches the candidate set as one json blob
// a nil *snapshots is a disabled cache
// cache failures are logged and treated as a miss
// a read is written back only if no drop ran since it began
// drops from other processes are bounded by ttl only
type snapshots struct {
	c   store.Cache
	key string
	ttl time.Duration

	mu  sync.Mutex
	gen uint64
}

// generation is taken before reading the db, store compares against it
func (s *snapshots) generation() uint64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *snapshots) load(ctx context.Context) ([]domain.Posting, bool) {
	if s == nil {
		return nil, false
	}
	b, ok, err := s.c.Get(ctx, s.key)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", s.key).Msg("internships: snapshot get failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var ps []domain.Posting
	if err := json.Unmarshal(b, &ps); err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", s.key).Msg("internships: dropping unreadable snapshot")
		_ = s.c.Del(ctx, s.key)
		return nil, false
	}
	return ps, true
}

// store writes ps unless an invalidation raced the read that produced it
func (s *snapshots) store(ctx context.Context, ps []domain.Posting, gen uint64) bool {
	if s == nil {
		return false
	}
	b, err := json.Marshal(ps)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("internships: snapshot encode failed")
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		logger.C(ctx).Debug().Str("key", s.key).Msg("internships: skipping stale snapshot")
		return false
	}
	if err := s.c.Set(ctx, s.key, b, s.ttl); err != nil {
		logger.C(ctx).Warn().Err(err).Str("key", s.key).Msg("internships: snapshot set failed")
		return false
	}
	return true
}

func (s *snapshots) drop(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.c.Del(ctx, s.key)
}
