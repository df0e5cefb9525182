package repo

import (
	"context"

	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
)

// Schema is the applications DDL, safe to run repeatedly
// listing_id is not a foreign key, listings may come from fixtures
const Schema = `
create table if not exists applications (
	id               text primary key,
	student_id       text not null,
	listing_id       text not null,
	internship_title text not null default '',
	company_name     text not null default '',
	note             text not null default '',
	feedback         text not null default '',
	status           text not null default 'Applied'
	                 check (status in ('Applied', 'Under Review', 'Accepted', 'Rejected')),
	applied_at       timestamptz not null default now(),
	updated_at       timestamptz not null default now(),
	unique (student_id, listing_id)
);

create index if not exists applications_student_idx on applications (student_id, applied_at desc);
`

// EnsureSchema creates the applications table when missing
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return perr.FromPostgres(err, "applications: ensure schema")
	}
	return nil
}
