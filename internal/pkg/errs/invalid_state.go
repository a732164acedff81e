package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel error for operations that are not valid
// for the entity's current status.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError reports a rejected state transition or an operation
// attempted against an entity whose status does not allow it.
type InvalidStateError struct {
	Reason string
	Cause  error
}

// NewInvalidStateError creates an InvalidStateError with a human-readable reason.
func NewInvalidStateError(reason string) *InvalidStateError {
	return &InvalidStateError{Reason: reason}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(reason string, cause error) *InvalidStateError {
	return &InvalidStateError{Reason: reason, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, sanitize(e.Reason), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState, sanitize(e.Reason))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
