package repository

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// IsConstraintErr reports whether err is a SQLite constraint violation, such
// as inserting a duplicate username. Constraint messages are user-facing and
// passed through verbatim; every other storage error is kept internal.
func IsConstraintErr(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint
}
