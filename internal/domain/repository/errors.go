package repository

import "errors"

// Sentinel errors returned by all repository implementations. Callers
// branch with errors.Is; handlers translate them into HTTP status codes.
var (
	// ErrNotFound means the identifier was well-formed but no record matched.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID means the identifier could not be parsed as a store key.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrDuplicate means a unique key (user email) already exists.
	ErrDuplicate = errors.New("duplicate record")
)
