// Package repo provides postgres access for applications
package repo

import (
	"context"
	"time"

	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/store"
	"internhub/internal/services/api/applications/domain"
)

// Repo defines the repository contract for applications
type Repo interface {
	Insert(ctx context.Context, a domain.Application) error
	Get(ctx context.Context, id string) (domain.Application, error)

	// ByStudent returns a student's applications, newest first
	ByStudent(ctx context.Context, studentID string) ([]domain.Application, error)

	// Move sets status only while the row still has from, NotFound otherwise
	Move(ctx context.Context, id string, from, to domain.Status, feedback string, at time.Time) error
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const columns = `id, student_id, listing_id, internship_title, company_name, note, feedback, status, applied_at, updated_at`

func scan(r store.Row) (domain.Application, error) {
	var a domain.Application
	err := r.Scan(&a.ID, &a.StudentID, &a.ListingID, &a.InternshipTitle, &a.CompanyName,
		&a.Note, &a.Feedback, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	return a, err
}

func (r *queries) Insert(ctx context.Context, a domain.Application) error {
	const sql = `insert into applications (` + columns + `)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, sql, a.ID, a.StudentID, a.ListingID, a.InternshipTitle, a.CompanyName,
		a.Note, a.Feedback, string(a.Status), a.AppliedAt, a.UpdatedAt)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.WithField(perr.DuplicateKeyf("student %s already applied to %s", a.StudentID, a.ListingID), "listing_id")
		}
		return perr.FromPostgresWithField(err, "applications: insert")
	}
	return nil
}

func (r *queries) Get(ctx context.Context, id string) (domain.Application, error) {
	a, err := store.One(ctx, r.q, scan, `select `+columns+` from applications where id = $1`, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Application{}, perr.NotFoundf("application %s not found", id)
		}
		return domain.Application{}, perr.FromPostgres(err, "applications: get")
	}
	return a, nil
}

func (r *queries) ByStudent(ctx context.Context, studentID string) ([]domain.Application, error) {
	const sql = `select ` + columns + ` from applications
where student_id = $1
order by applied_at desc, id desc`
	out, err := store.Many(ctx, r.q, scan, sql, studentID)
	if err != nil {
		return nil, perr.FromPostgres(err, "applications: by student")
	}
	return out, nil
}

func (r *queries) Move(ctx context.Context, id string, from, to domain.Status, feedback string, at time.Time) error {
	const sql = `update applications
set status = $3, feedback = case when $4::text = '' then feedback else $4::text end, updated_at = $5
where id = $1 and status = $2`
	err := store.ExecOne(ctx, r.q, sql, id, string(from), string(to), feedback, at)
	if err != nil && !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.FromPostgres(err, "applications: move")
	}
	return err
}
