package repository

import "errors"

// ErrNotFound is returned when a row does not exist or, for owner-scoped
// lookups, when it is owned by a different user. Implementations must not
// distinguish the two cases.
var ErrNotFound = errors.New("not found")

// Duplicate errors from Create, so a unique-constraint violation on a
// concurrent insert surfaces as a conflict instead of a store fault.
var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrDuplicateEmail    = errors.New("duplicate email")
)
