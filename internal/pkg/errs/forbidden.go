package errs

import (
	"errors"
	"fmt"
)

// ErrForbidden is the sentinel error for authorization failures: wrong order
// owner, wrong assigned drone, or a drone excluded from a handoff job.
var ErrForbidden = errors.New("operation is forbidden")

// ForbiddenError reports that the acting identity may not perform the
// operation on the target entity.
type ForbiddenError struct {
	Reason string
	Cause  error
}

// NewForbiddenError creates a ForbiddenError with a human-readable reason.
func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying cause.
func NewForbiddenErrorWithCause(reason string, cause error) *ForbiddenError {
	return &ForbiddenError{Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrForbidden, sanitize(e.Reason), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, sanitize(e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
