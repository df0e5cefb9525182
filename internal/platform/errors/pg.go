package errors

import (
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the repos run into
const (
	sqlUniqueViolation     = "23505"
	sqlForeignKeyViolation = "23503"
	sqlNotNullViolation    = "23502"
	sqlCheckViolation      = "23514"
	sqlStringTooLong       = "22001"
	sqlBadTextValue        = "22P02"
	sqlReadOnlyTx          = "25006"
	sqlCannotConnectNow    = "57P03"
	sqlAdminShutdown       = "57P01"
)

var sqlStateCodes = map[string]ErrorCode{
	sqlUniqueViolation:     ErrorCodeDuplicateKey,
	sqlForeignKeyViolation: ErrorCodeInvalidArgument,
	sqlNotNullViolation:    ErrorCodeValidation,
	sqlCheckViolation:      ErrorCodeValidation,
	sqlStringTooLong:       ErrorCodeInvalidArgument,
	sqlBadTextValue:        ErrorCodeInvalidArgument,
	sqlReadOnlyTx:          ErrorCodeUnavailable,
	sqlCannotConnectNow:    ErrorCodeUnavailable,
	sqlAdminShutdown:       ErrorCodeUnavailable,
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	ok := stderrs.As(err, &pe)
	return pe, ok
}

// IsDuplicateKey reports a unique constraint violation anywhere in err's chain
func IsDuplicateKey(err error) bool {
	pe, ok := pgError(err)
	return ok && pe.Code == sqlUniqueViolation
}

// FromPostgres wraps a driver error with the code its SQLSTATE maps to, DB when unmapped
// nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code := ErrorCodeDB
	if pe, ok := pgError(err); ok {
		if c, known := sqlStateCodes[pe.Code]; known {
			code = c
		}
	}
	return Wrap(err, code, msg)
}

// FromPostgresWithField is FromPostgres plus the column the server blamed
// the column comes from the error itself or from the constraint name
// internships_pkey names id and applications_status_check names status
func FromPostgresWithField(err error, msg string) error {
	out := FromPostgres(err, msg)
	pe, ok := pgError(err)
	if !ok {
		return out
	}
	if f := columnOf(pe); f != "" {
		return WithField(out, f)
	}
	return out
}

func columnOf(pe *pgconn.PgError) string {
	if c := strings.TrimSpace(pe.ColumnName); c != "" {
		return c
	}
	c := strings.TrimSpace(pe.ConstraintName)
	if c == "" {
		return ""
	}
	if pe.TableName != "" {
		c = strings.TrimPrefix(c, pe.TableName+"_")
	}
	switch {
	case c == "pkey" || strings.HasSuffix(c, "_pkey"):
		return "id"
	case strings.HasSuffix(c, "_check"):
		return strings.TrimSuffix(c, "_check")
	case strings.HasSuffix(c, "_fkey"):
		return strings.TrimSuffix(c, "_fkey")
	case strings.HasSuffix(c, "_key"):
		// composite unique keys blame their last column
		c = strings.TrimSuffix(c, "_key")
		if i := strings.LastIndex(c, "_id_"); i >= 0 {
			return c[i+len("_id_"):]
		}
		return c
	}
	return ""
}
