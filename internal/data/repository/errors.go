// Sentinel errors shared by the repositories so services can map storage
// failures onto the API error taxonomy without inspecting pg error codes
// themselves.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert or update breaks a unique
// constraint, e.g. a second review by the same author on a title.
var ErrDuplicate = errors.New("duplicate record")

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
