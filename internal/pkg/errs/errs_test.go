package errs_test

import (
	"errors"
	"testing"

	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := errs.NewNotFoundError("order", "123")

		assert.Equal(t, "order", err.Entity)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrNotFound, err.Unwrap())
	})

	t.Run("NewNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order 123 (cause: database connection failed)", err.Error())
		assert.Equal(t, errs.ErrNotFound, err.Unwrap())
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("job is reserved for another drone")

		assert.Equal(t, "job is reserved for another drone", err.Reason)
		assert.Equal(t, "operation is forbidden: job is reserved for another drone", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewForbiddenError("line one\nline two")
		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("job must be Reserved to start pickup")

	assert.Equal(t, "invalid state: job must be Reserved to start pickup", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("job", "42")

		assert.Equal(t, "job", err.Entity)
		assert.Equal(t, "42", err.ID)
		assert.Equal(t, "version conflict: job 42", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("row version changed")
		err := errs.NewConflictErrorWithCause("job", "42", cause)

		assert.Equal(t, "version conflict: job 42 (cause: row version changed)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrNotFound.Error())
		assert.Equal(t, "operation is forbidden", errs.ErrForbidden.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "version conflict", errs.ErrConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewNotFoundError("drone", "d1"), errs.ErrNotFound)
		require.ErrorIs(t, errs.NewForbiddenError("not the owner"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewInvalidStateError("order is terminal"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewConflictError("job", "j1"), errs.ErrConflict)
	})
}
