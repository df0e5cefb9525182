package service

import (
	"context"
	"strings"
	"time"

	"internhub/internal/core/discovery"
	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/logger"
	"internhub/internal/services/api/internships/domain"

	"github.com/google/uuid"
)

// Get returns one posting by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Posting, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Posting{}, perr.WithField(perr.InvalidArgf("id is required"), "id")
	}
	return s.Repo.Get(ctx, id)
}

// Posting implements domain.ListingsPort
func (s *Svc) Posting(ctx context.Context, id string) (domain.Posting, error) { return s.Get(ctx, id) }

// Post stores a new pending, unverified posting
func (s *Svc) Post(ctx context.Context, in domain.PostingInput) (domain.Posting, error) {
	now := s.now().UTC()
	p := domain.Posting{
		Listing: discovery.Listing{
			ID:          uuid.NewString(),
			Title:       strings.TrimSpace(in.Title),
			Company:     strings.TrimSpace(in.Company),
			City:        strings.TrimSpace(in.City),
			Stipend:     in.Stipend,
			Skills:      cleanSkills(in.Skills),
			Description: in.Description,
			StartDate:   in.StartDate,
			Posted:      discovery.PostedAt(now),
		},
		Status:       domain.StatusPending,
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		CreatedAt:    now,
	}
	p.Domain, _ = discovery.ParseDomain(in.Domain)
	p.LocationMode, _ = discovery.ParseLocationMode(in.LocationMode)
	p.Duration, _ = discovery.ParseDuration(in.Duration)

	closes := in.ClosesAt.UTC()
	if closes.Before(now) {
		return domain.Posting{}, perr.WithField(perr.InvalidArgf("closes_at is in the past"), "closes_at")
	}
	p.ClosesAt = &closes

	if err := p.Validate(); err != nil {
		return domain.Posting{}, err
	}
	if len(p.Skills) == 0 {
		return domain.Posting{}, perr.WithField(perr.InvalidArgf("at least one skill is required"), "skills")
	}

	if err := s.Repo.Insert(ctx, p); err != nil {
		return domain.Posting{}, err
	}
	s.invalidate(ctx)
	return p, nil
}

// Pending lists postings awaiting review
func (s *Svc) Pending(ctx context.Context) ([]domain.Posting, error) {
	return s.Repo.Pending(ctx)
}

// Review applies a college's decision to a pending posting
func (s *Svc) Review(ctx context.Context, id string, in domain.ReviewInput) (domain.Posting, error) {
	if s.db == nil {
		return domain.Posting{}, perr.Unavailablef("internships: reviews need a writable source")
	}
	dec := domain.Decision(in.Decision)
	if dec != domain.DecisionApprove && dec != domain.DecisionReject {
		return domain.Posting{}, perr.WithField(perr.InvalidArgf("unknown decision %q", in.Decision), "decision")
	}
	v := discovery.Verifier{
		College:    strings.TrimSpace(in.College),
		VerifiedAt: s.now().UTC(),
		Rating:     in.Rating,
		Comment:    in.Comment,
	}

	var out domain.Posting
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		if cur.Status != domain.StatusPending {
			return perr.Conflictf("internship %s is %s, only pending postings can be reviewed", id, cur.Status)
		}
		if err := r.Review(ctx, id, dec.Status(), v); err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.Conflictf("internship %s was reviewed concurrently", id)
			}
			return err
		}
		out, err = r.Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Posting{}, err
	}
	s.invalidate(ctx)
	return out, nil
}

// CloseExpired closes candidates whose applications closed before now
func (s *Svc) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.Repo.CloseExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.invalidate(ctx)
	}
	return n, nil
}

// Seed upserts postings by id in one transaction
func (s *Svc) Seed(ctx context.Context, postings []domain.Posting) (int, error) {
	if s.db == nil {
		return 0, perr.Unavailablef("internships: seeding needs a writable source")
	}
	now := s.now().UTC()
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		for _, p := range postings {
			if p.CreatedAt.IsZero() {
				p.CreatedAt = now
			}
			if err := r.Upsert(ctx, p); err != nil {
				return perr.WithOp(err, "seed "+p.ID)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return len(postings), nil
}

// Invalidate drops the cached candidate snapshot
func (s *Svc) Invalidate(ctx context.Context) error { return s.snap.drop(ctx) }

func (s *Svc) invalidate(ctx context.Context) {
	if err := s.snap.drop(ctx); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("internships: snapshot invalidation failed")
	}
}

func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
