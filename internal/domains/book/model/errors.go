package model

import "errors"

// Repository-level errors
var (
	// ErrBookNotFound covers both a missing record and a record owned by
	// somebody else. Owner-scoped lookups collapse the two on purpose so
	// the API does not leak which books exist.
	ErrBookNotFound = errors.New("book not found")
)
