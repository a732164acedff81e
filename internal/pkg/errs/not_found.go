package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel error for absent entities.
var ErrNotFound = errors.New("object not found")

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
	Cause  error
}

// NewNotFoundError creates a NotFoundError for the given entity kind and identifier.
func NewNotFoundError(entity string, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewNotFoundErrorWithCause creates a NotFoundError wrapping an underlying cause.
func NewNotFoundErrorWithCause(entity string, id string, cause error) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrNotFound, sanitize(e.Entity), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrNotFound, sanitize(e.Entity), sanitize(e.ID))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
