package repository

import "errors"

// Typed outcomes of store operations. Driver-specific errors (pgx
// error codes and the like) never cross the repository boundary;
// implementations translate them into these sentinels.
var (
	// ErrDuplicate reports a uniqueness violation (email already
	// registered, favorite already saved, ingredient name taken).
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound reports that no row matched the query.
	ErrNotFound = errors.New("record not found")
)
