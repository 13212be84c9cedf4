package catalog

import "errors"

// Sentinel errors returned by catalog operations.
var (
	// ErrNotFound is returned when the catalog file or an ISBN does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAvailable is returned when borrowing a book that is borrowed out.
	ErrNotAvailable = errors.New("not currently available")

	// ErrNotBorrowed is returned when returning a book that is not borrowed.
	ErrNotBorrowed = errors.New("not currently borrowed")

	// ErrMissingField is returned when a new book lacks an ISBN, title or author.
	ErrMissingField = errors.New("missing required field")
)
