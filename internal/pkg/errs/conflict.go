package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel error for lost optimistic-concurrency races:
// the entity's version changed between read and write, or a job was no
// longer open when a reservation was attempted.
var ErrConflict = errors.New("version conflict")

// ConflictError reports that a version-guarded write observed a concurrent
// modification and made no change.
type ConflictError struct {
	Entity string
	ID     string
	Cause  error
}

// NewConflictError creates a ConflictError for the given entity kind and identifier.
func NewConflictError(entity string, id string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(entity string, id string, cause error) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrConflict, sanitize(e.Entity), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrConflict, sanitize(e.Entity), sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
