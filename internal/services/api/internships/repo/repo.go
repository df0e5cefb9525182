// Package repo provides postgres and fixture access for internships
package repo

import (
	"context"
	"time"

	"internhub/internal/core/discovery"
	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/store"
	pstrings "internhub/internal/platform/strings"
	ptime "internhub/internal/platform/time"
	"internhub/internal/services/api/internships/domain"
)

// Repo defines the repository contract for internships
type Repo interface {
	// Candidates returns every posting that takes part in discovery, oldest first
	Candidates(ctx context.Context) ([]domain.Posting, error)
	Get(ctx context.Context, id string) (domain.Posting, error)
	Pending(ctx context.Context) ([]domain.Posting, error)
	Insert(ctx context.Context, p domain.Posting) error
	Upsert(ctx context.Context, p domain.Posting) error

	// Review moves a pending posting to status, NotFound when nothing was pending under id
	Review(ctx context.Context, id string, status domain.Status, v discovery.Verifier) error

	// CloseExpired closes candidates whose applications closed before now
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
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

const columns = `id, title, company, domain, location_mode, city, stipend, duration, skills,
verified, verified_by, verified_at, review_rating, review_comment,
posted_at, posted_ago, description, start_date, closes_at,
status, contact_email, created_at`

func scanPosting(r store.Row) (domain.Posting, error) {
	var (
		p          domain.Posting
		verifiedBy *string
		verifiedAt *time.Time
		rating     *int
		comment    *string
		postedAt   *time.Time
		postedAgo  string
	)
	err := r.Scan(
		&p.ID, &p.Title, &p.Company, &p.Domain, &p.LocationMode, &p.City, &p.Stipend, &p.Duration, &p.Skills,
		&p.Verified, &verifiedBy, &verifiedAt, &rating, &comment,
		&postedAt, &postedAgo, &p.Description, &p.StartDate, &p.ClosesAt,
		&p.Status, &p.ContactEmail, &p.CreatedAt,
	)
	if err != nil {
		return domain.Posting{}, err
	}

	if verifiedBy != nil {
		v := &discovery.Verifier{College: *verifiedBy}
		if verifiedAt != nil {
			v.VerifiedAt = verifiedAt.UTC()
		}
		if rating != nil {
			v.Rating = *rating
		}
		if comment != nil {
			v.Comment = *comment
		}
		p.VerifiedBy = v
	}

	switch {
	case postedAt != nil:
		p.Posted = discovery.PostedAt(*postedAt)
	case postedAgo != "":
		p.Posted = discovery.PostedAgo(postedAgo)
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

func (r *queries) Candidates(ctx context.Context) ([]domain.Posting, error) {
	sql := `select ` + columns + ` from internships
where status in ('pending', 'approved')
order by created_at, id`
	out, err := store.Many(ctx, r.q, scanPosting, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "internships: load candidates")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, id string) (domain.Posting, error) {
	sql := `select ` + columns + ` from internships where id = $1`
	p, err := store.One(ctx, r.q, scanPosting, sql, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Posting{}, perr.NotFoundf("internship %s not found", id)
		}
		return domain.Posting{}, perr.FromPostgres(err, "internships: get")
	}
	return p, nil
}

func (r *queries) Pending(ctx context.Context) ([]domain.Posting, error) {
	sql := `select ` + columns + ` from internships where status = 'pending' order by created_at, id`
	out, err := store.Many(ctx, r.q, scanPosting, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "internships: pending")
	}
	return out, nil
}

const insertSQL = `insert into internships (
id, title, company, domain, location_mode, city, stipend, duration, skills,
verified, verified_by, verified_at, review_rating, review_comment,
posted_at, posted_ago, description, start_date, closes_at,
status, contact_email, created_at
) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

func args(p domain.Posting) []any {
	var (
		verifiedBy, comment any
		verifiedAt          *time.Time
		rating              *int
	)
	if v := p.VerifiedBy; v != nil {
		verifiedBy = pstrings.SQLNull(v.College)
		verifiedAt = ptime.Ptr(v.VerifiedAt)
		if v.Rating > 0 {
			rating = &v.Rating
		}
		comment = pstrings.SQLNull(v.Comment)
	}
	skills := pstrings.IfEmpty(p.Skills, []string{})
	return []any{
		p.ID, p.Title, p.Company, string(p.Domain), string(p.LocationMode), p.City, p.Stipend, string(p.Duration), skills,
		p.Verified, verifiedBy, verifiedAt, rating, comment,
		ptime.Ptr(p.Posted.At), p.Posted.Ago, p.Description, p.StartDate, p.ClosesAt,
		string(p.Status), p.ContactEmail, p.CreatedAt,
	}
}

func (r *queries) Insert(ctx context.Context, p domain.Posting) error {
	if _, err := r.q.Exec(ctx, insertSQL, args(p)...); err != nil {
		return perr.FromPostgresWithField(err, "internships: insert")
	}
	return nil
}

func (r *queries) Upsert(ctx context.Context, p domain.Posting) error {
	sql := insertSQL + `
on conflict (id) do update set
title = excluded.title, company = excluded.company, domain = excluded.domain,
location_mode = excluded.location_mode, city = excluded.city, stipend = excluded.stipend,
duration = excluded.duration, skills = excluded.skills, verified = excluded.verified,
verified_by = excluded.verified_by, verified_at = excluded.verified_at,
review_rating = excluded.review_rating, review_comment = excluded.review_comment,
posted_at = excluded.posted_at, posted_ago = excluded.posted_ago, description = excluded.description,
start_date = excluded.start_date, closes_at = excluded.closes_at, status = excluded.status,
contact_email = excluded.contact_email`
	if _, err := r.q.Exec(ctx, sql, args(p)...); err != nil {
		return perr.FromPostgresWithField(err, "internships: upsert")
	}
	return nil
}

func (r *queries) Review(ctx context.Context, id string, status domain.Status, v discovery.Verifier) error {
	const sql = `update internships set
status = $2,
verified = ($2 = 'approved'),
verified_by = case when $2 = 'approved' then $3::text end,
verified_at = case when $2 = 'approved' then $4::timestamptz end,
review_rating = $5,
review_comment = nullif($6, '')
where id = $1 and status = 'pending'`
	err := store.ExecOne(ctx, r.q, sql, id, string(status), v.College, v.VerifiedAt, v.Rating, v.Comment)
	if err != nil && !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.FromPostgres(err, "internships: review")
	}
	return err
}

func (r *queries) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	const sql = `update internships set status = 'closed'
where status in ('pending', 'approved') and closes_at is not null and closes_at < $1`
	tag, err := r.q.Exec(ctx, sql, now)
	if err != nil {
		return 0, perr.FromPostgres(err, "internships: close expired")
	}
	return tag.RowsAffected(), nil
}
