package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromPostgres_Codes(t *testing.T) {
	t.Parallel()

	cases := map[string]ErrorCode{
		"23505": ErrorCodeDuplicateKey,
		"23503": ErrorCodeInvalidArgument,
		"23502": ErrorCodeValidation,
		"23514": ErrorCodeValidation,
		"22001": ErrorCodeInvalidArgument,
		"22P02": ErrorCodeInvalidArgument,
		"25006": ErrorCodeUnavailable,
		"57P03": ErrorCodeUnavailable,
		"57P01": ErrorCodeUnavailable,
		"40001": ErrorCodeDB,
		"XX000": ErrorCodeDB,
	}
	for state, want := range cases {
		err := FromPostgres(&pgconn.PgError{Code: state}, "internships: insert")
		if got := CodeOf(err); got != want {
			t.Fatalf("sqlstate %s: code = %s, want %s", state, got, want)
		}
	}

	if err := FromPostgres(nil, "x"); err != nil {
		t.Fatalf("FromPostgres(nil) = %v, want nil", err)
	}
	if got := CodeOf(FromPostgres(stderrs.New("conn reset"), "x")); got != ErrorCodeDB {
		t.Fatalf("non pg error code = %s, want db", got)
	}
}

func TestFromPostgresWithField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pe   *pgconn.PgError
		want string
	}{
		{"column wins", &pgconn.PgError{Code: "23502", ColumnName: "title", ConstraintName: "internships_pkey"}, "title"},
		{"primary key", &pgconn.PgError{Code: "23505", TableName: "internships", ConstraintName: "internships_pkey"}, "id"},
		{"check", &pgconn.PgError{Code: "23514", TableName: "applications", ConstraintName: "applications_status_check"}, "status"},
		{"composite unique", &pgconn.PgError{Code: "23505", TableName: "applications", ConstraintName: "applications_student_id_listing_id_key"}, "listing_id"},
		{"single unique", &pgconn.PgError{Code: "23505", TableName: "internships", ConstraintName: "internships_contact_email_key"}, "contact_email"},
		{"nothing to go on", &pgconn.PgError{Code: "XX000"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := As(FromPostgresWithField(tc.pe, "repo"))
			if !ok {
				t.Fatalf("expected *Error")
			}
			if e.Field() != tc.want {
				t.Fatalf("field = %q, want %q", e.Field(), tc.want)
			}
		})
	}

	e, ok := As(FromPostgresWithField(stderrs.New("eof"), "repo"))
	if !ok || e.Field() != "" {
		t.Fatalf("plain error should map without a field, got ok=%v %+v", ok, e)
	}
}

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("tx: %w", FromPostgres(&pgconn.PgError{Code: "23505"}, "insert"))
	if !IsDuplicateKey(wrapped) {
		t.Fatalf("expected wrapped 23505 to be a duplicate key")
	}
	if IsDuplicateKey(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("23503 is not a duplicate key")
	}
	if IsDuplicateKey(stderrs.New("23505")) {
		t.Fatalf("plain text is not a duplicate key")
	}
}
