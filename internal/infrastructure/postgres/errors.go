package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE 23505, unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique-index
// violation. Repositories translate it to repository.ErrDuplicate so
// driver codes never leak upward.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
