// Package service contains applications workflows
package service

import (
	"context"
	"strings"
	"time"

	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/logger"
	"internhub/internal/services/api/applications/domain"
	"internhub/internal/services/api/applications/repo"
	idom "internhub/internal/services/api/internships/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for applications
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	listings idom.ListingsPort
	now      func() time.Time
}

// New creates a new applications service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], listings idom.ListingsPort) *Svc {
	if db == nil {
		panic("applications.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("applications.Service requires a non nil Repo binder")
	}
	if listings == nil {
		panic("applications.Service requires a listings port")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, listings: listings, now: time.Now}
}

// Apply records a student's application to an open listing
func (s *Svc) Apply(ctx context.Context, in domain.ApplyInput) (domain.Application, error) {
	student := strings.TrimSpace(in.StudentID)
	if student == "" {
		return domain.Application{}, perr.WithField(perr.InvalidArgf("student_id is required"), "student_id")
	}

	p, err := s.listings.Posting(ctx, strings.TrimSpace(in.ListingID))
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Application{}, perr.WithField(err, "listing_id")
		}
		return domain.Application{}, err
	}
	now := s.now().UTC()
	if !p.Open(now) {
		return domain.Application{}, perr.WithField(perr.Conflictf("internship %s is not accepting applications", p.ID), "listing_id")
	}

	a := domain.Application{
		ID:              uuid.NewString(),
		StudentID:       student,
		ListingID:       p.ID,
		InternshipTitle: p.Title,
		CompanyName:     p.Company,
		Note:            strings.TrimSpace(in.Note),
		Status:          domain.StatusApplied,
		AppliedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Insert(ctx, a); err != nil {
		return domain.Application{}, err
	}
	logger.C(ctx).Info().Str("application", a.ID).Str("listing", a.ListingID).Msg("application received")
	return a, nil
}

// List returns a student's applications, newest first, with per status counts
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListResult, error) {
	student := strings.TrimSpace(in.StudentID)
	if student == "" {
		return domain.ListResult{}, perr.WithField(perr.InvalidArgf("student_id is required"), "student_id")
	}
	items, err := s.Repo.ByStudent(ctx, student)
	if err != nil {
		return domain.ListResult{}, err
	}
	var c domain.Counts
	for _, a := range items {
		c.Add(a.Status)
	}
	return domain.ListResult{Items: items, Counts: c}, nil
}

// Move transitions an application, Conflict when the status graph forbids it
func (s *Svc) Move(ctx context.Context, id string, in domain.StatusInput) (domain.Application, error) {
	to, ok := domain.ParseStatus(in.Status)
	if !ok {
		return domain.Application{}, perr.WithField(perr.InvalidArgf("unknown status %q", in.Status), "status")
	}

	var out domain.Application
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		if !cur.Status.CanMoveTo(to) {
			return perr.WithField(perr.Conflictf("cannot move application from %s to %s", cur.Status, to), "status")
		}
		if err := r.Move(ctx, id, cur.Status, to, strings.TrimSpace(in.Feedback), s.now().UTC()); err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.Conflictf("application %s changed concurrently", id)
			}
			return err
		}
		out, err = r.Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Application{}, err
	}
	return out, nil
}
