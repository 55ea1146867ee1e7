package errors

import (
	"net/http"
	"testing"

	"planner/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	withDetails := ErrUserNotFound.WithDetails("other")
	assert.True(t, errors.Is(withDetails, ErrUserNotFound))
	assert.False(t, errors.Is(withDetails, ErrInvalidCredentials))

	caused := ErrPersistenceFailed.WithCause(errors.New("connection refused"))
	assert.True(t, errors.Is(caused, ErrPersistenceFailed))
	assert.Contains(t, caused.Error(), "connection refused")
}

func TestBaseError_WithCauseKeepsCause(t *testing.T) {
	cause := errors.New("entropy exhausted")
	err := ErrHashingFailed.WithCause(cause)

	assert.True(t, errors.Is(err, cause))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, KindHashing, appErr.Kind())
	assert.Equal(t, "Password processing failed", appErr.Message())

	assert.True(t, errors.Is(ErrHashingFailed.WithCause(nil), ErrHashingFailed))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address")

	assert.Equal(t, "email", err.Field())
	assert.Equal(t, "email: must be a valid email address", err.Details())
	assert.Equal(t, "invalid email: must be a valid email address", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, KindValidation, KindOf(errors.WithStack(err)))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"conflict", errors.WithStack(ErrUsernameTaken), KindConflict},
		{"not found", ErrUserNotFound, KindNotFound},
		{"invalid credentials", errors.Wrap(ErrInvalidCredentials, "verify"), KindInvalidCredentials},
		{"database", NewDatabaseExecuteError(errors.New("boom"), "insert"), KindPersistence},
		{"plain error", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}

	assert.False(t, IsKind(nil, KindInternal))
}

func TestEnsure(t *testing.T) {
	assert.NoError(t, Ensure(nil, ErrHashingFailed))

	already := ErrHashingFailed.WithCause(errors.New("short read"))
	assert.Same(t, already, Ensure(already, ErrHashingFailed))

	wrapped := Ensure(errors.New("disk full"), ErrPersistenceFailed)
	assert.True(t, errors.Is(wrapped, ErrPersistenceFailed))
	assert.Equal(t, KindPersistence, KindOf(wrapped))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := NewDatabaseExecuteError(cause, "insert user")

	assert.True(t, errors.Is(err, ErrPersistenceFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "insert user", err.Details())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "deadlock detected")
}
