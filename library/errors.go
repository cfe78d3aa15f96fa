package library

import (
	"errors"
	"fmt"
)

var (
	// ErrBookNotFound is returned when a book is not on the shelf, or when a
	// member asked to return a title they do not hold.
	ErrBookNotFound = errors.New("book not found")

	// ErrMemberNotFound is returned when no member matches the given name.
	ErrMemberNotFound = errors.New("member not found")

	// ErrDuplicateMember is returned when registering a member whose name is
	// already taken (names are compared case-insensitively).
	ErrDuplicateMember = errors.New("member already exists")

	// ErrCorruptData is returned when a persisted data file cannot be parsed
	// as a JSON array at all. Individually malformed records inside a
	// parseable array are dropped instead, see DataManager.
	ErrCorruptData = errors.New("data file is corrupted")

	// ErrIOFailure is returned when a data or ledger file cannot be written.
	ErrIOFailure = errors.New("write failed")
)

// ValidationError reports an empty or whitespace-only required field at
// entity construction time.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Field)
}
