// Package service provides the curator implementation
package service

import (
	"context"
	"errors"
	"time"

	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/logger"
	idom "internhub/internal/services/api/internships/domain"
	irepo "internhub/internal/services/api/internships/repo"
	cdom "internhub/internal/services/curator/domain"
	"internhub/internal/services/curator/guardrails"

	"github.com/robfig/cron/v3"
)

// Schema creates tables when absent, it must be idempotent
type Schema func(ctx context.Context, q repokit.Queryer) error

// Config controls scheduling
type Config struct {
	// Schedule is a cron spec, descriptors like @every 1h work too
	Schedule string

	// RunOnStart sweeps once before the first tick
	RunOnStart bool
}

// Service wires the internships curator port into sweep and seed runs
type Service struct {
	DB          repokit.TxRunner
	Internships idom.CuratorPort
	Schemas     []Schema
	Cfg         Config

	// Lease is optional, nil sweeps without coordination
	Lease guardrails.Lease

	// Load reads a fixtures file, swapped in tests
	Load func(path string) ([]idom.Posting, error)

	now func() time.Time
}

// New constructs the curator service
func New(db repokit.TxRunner, internships idom.CuratorPort, cfg Config, lease guardrails.Lease, schemas ...Schema) *Service {
	if db == nil {
		panic("curator.Service requires a non nil TxRunner")
	}
	if internships == nil {
		panic("curator.Service requires an internships curator port")
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "@every 1h"
	}
	return &Service{
		DB:          db,
		Internships: internships,
		Schemas:     schemas,
		Cfg:         cfg,
		Lease:       lease,
		Load:        irepo.LoadFixtures,
		now:         time.Now,
	}
}

// WithClock swaps the clock, tests only
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Sweep closes postings whose applications closed before today (UTC)
func (s *Service) Sweep(ctx context.Context) (cdom.SweepResult, error) {
	start := s.now()
	res := cdom.SweepResult{Cutoff: start.UTC().Truncate(24 * time.Hour)}

	run := func(ctx context.Context) error {
		n, err := s.Internships.CloseExpired(ctx, res.Cutoff)
		res.Closed = n
		return err
	}

	var err error
	if s.Lease != nil {
		err = s.Lease(ctx, run)
	} else {
		err = run(ctx)
	}
	res.TookMS = s.now().Sub(start).Milliseconds()

	l := logger.C(ctx).With().Str("mod", "curator").Time("cutoff", res.Cutoff).Logger()
	switch {
	case errors.Is(err, guardrails.ErrLeaseHeld):
		res.Skipped = true
		l.Debug().Msg("curator: lease not acquired; clean skip")
		return res, nil
	case err != nil:
		l.Error().Err(err).Msg("curator: sweep failed")
		return res, err
	}
	l.Info().Int64("closed", res.Closed).Int64("took_ms", res.TookMS).Msg("curator: sweep done")
	return res, nil
}

// SeedFile creates the schema when absent then upserts the fixtures at path
func (s *Service) SeedFile(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, perr.InvalidArgf("curator: fixtures path is empty")
	}
	ps, err := s.Load(path)
	if err != nil {
		return 0, err
	}
	if err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		for _, fn := range s.Schemas {
			if err := fn(ctx, q); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return 0, perr.WithOp(err, "curator: ensure schema")
	}
	n, err := s.Internships.Seed(ctx, ps)
	if err != nil {
		return 0, err
	}
	logger.C(ctx).Info().Str("mod", "curator").Str("path", path).Int("postings", n).Msg("curator: seeded")
	return n, nil
}

// Schedule runs Sweep on the configured cron spec until ctx is done
// a tick that overlaps a running sweep is skipped
func (s *Service) Schedule(ctx context.Context) error {
	cl := cronLogger{mod: "curator"}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(s.Cfg.Schedule, func() { _, _ = s.Sweep(ctx) }); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "curator: bad schedule %q", s.Cfg.Schedule)
	}

	if s.Cfg.RunOnStart {
		_, _ = s.Sweep(ctx)
	}

	c.Start()
	logger.C(ctx).Info().Str("mod", "curator").Str("schedule", s.Cfg.Schedule).Msg("curator: scheduler started")

	<-ctx.Done()
	<-c.Stop().Done()
	logger.C(ctx).Info().Str("mod", "curator").Msg("curator: scheduler stopped")
	return nil
}

// cronLogger routes cron's own logging through zerolog
type cronLogger struct{ mod string }

func (c cronLogger) Info(msg string, kv ...any) {
	logger.Named(c.mod).Debug().Fields(kv).Msg("cron: " + msg)
}

func (c cronLogger) Error(err error, msg string, kv ...any) {
	logger.Named(c.mod).Error().Err(err).Fields(kv).Msg("cron: " + msg)
}
