// Package errs provides standardized error types for the drone delivery service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the four error categories every core operation can fail with:
//   - NotFoundError: a referenced order, job, drone, or end user is absent
//   - ForbiddenError: the actor is not authorized for the target entity
//     (wrong owner, wrong assigned drone, excluded drone)
//   - InvalidStateError: the operation is not valid for the entity's current status
//   - ConflictError: an optimistic-version race was lost
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All four categories are terminal: the core never retries on its own, and
// storage-layer errors (connectivity and the like) are not part of this
// taxonomy and propagate unchanged.
package errs
