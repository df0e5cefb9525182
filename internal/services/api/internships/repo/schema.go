package repo

import (
	"context"

	"internhub/internal/modkit/repokit"
	perr "internhub/internal/platform/errors"
)

// Schema is the internships DDL, safe to run repeatedly
const Schema = `
create table if not exists internships (
	id             text primary key,
	title          text not null,
	company        text not null,
	domain         text not null,
	location_mode  text not null,
	city           text not null default '',
	stipend        integer not null check (stipend >= 0),
	duration       text not null,
	skills         text[] not null default '{}',
	verified       boolean not null default false,
	verified_by    text,
	verified_at    timestamptz,
	review_rating  smallint check (review_rating between 1 and 5),
	review_comment text,
	posted_at      timestamptz,
	posted_ago     text not null default '',
	description    text not null default '',
	start_date     date,
	closes_at      timestamptz,
	status         text not null default 'pending'
	               check (status in ('pending', 'approved', 'rejected', 'closed')),
	contact_email  text not null default '',
	created_at     timestamptz not null default now()
);

create index if not exists internships_status_created_idx on internships (status, created_at);
`

// EnsureSchema creates the internships table when missing
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return perr.FromPostgres(err, "internships: ensure schema")
	}
	return nil
}
