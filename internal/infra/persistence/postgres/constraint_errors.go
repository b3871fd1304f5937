package postgres

import (
	"cheeserater/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes for the integrity violations an upsert can hit.
const (
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

func constraintViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	switch pgErr.Code {
	case sqlStateNotNullViolation, sqlStateCheckViolation:
		return pgErr.ColumnName, true
	default:
		return "", false
	}
}
