package errors

import (
	"fmt"
	"net/http"

	"planner/internal/errors"
)

// Kind classifies an AppError into one of the outcome families the
// credential flows can produce.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindConflict           Kind = "conflict"
	KindNotFound           Kind = "not_found"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindPersistence        Kind = "persistence"
	KindHashing            Kind = "hashing"
	KindInternal           Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Outcome family
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError with the same business code, so copies made by
// WithDetails or WithCause still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok || t == nil {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithCause keeps err reachable through errors.Unwrap while presenting e to callers.
func (e *BaseError) WithCause(err error) error {
	if err == nil {
		return errors.WithStack(e)
	}

	return errors.WithStack(&causedError{BaseError: e, cause: err})
}

// Kind returns the outcome family
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.message + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() error {
	return e.cause
}

// FieldError is a validation failure attributed to a single input field.
type FieldError struct {
	*BaseError
	field string
}

// NewValidationError reports that field failed validation for reason.
func NewValidationError(field, reason string) *FieldError {
	return &FieldError{
		BaseError: ErrValidationFailed.WithDetails(fmt.Sprintf("%s: %s", field, reason)),
		field:     field,
	}
}

func (e *FieldError) Error() string {
	return "invalid " + e.details
}

// Field names the offending input field.
func (e *FieldError) Field() string {
	return e.field
}

// KindOf returns the Kind of the first AppError in err's tree, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Ensure returns err untouched when it already carries fallback's kind, and
// otherwise wraps it as fallback.
func Ensure(err error, fallback *BaseError) error {
	if err == nil {
		return nil
	}
	if IsKind(err, fallback.Kind()) {
		return err
	}

	return fallback.WithCause(err)
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"USERNAME_TAKEN",
		"username taken",
		"",
	)

	ErrEmailTaken = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"EMAIL_TAKEN",
		"email taken",
		"",
	)

	// ErrConflict is used when storage rejects an insert for uniqueness
	// without saying which column collided.
	ErrConflict = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"username or email taken",
		"",
	)

	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No account matches that identifier",
		"register",
	)

	ErrInvalidCredentials = NewBaseError(
		KindInvalidCredentials,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrPersistenceFailed = NewBaseError(
		KindPersistence,
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"User directory is unavailable",
		"",
	)

	ErrHashingFailed = NewBaseError(
		KindHashing,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Is lets errors.Is(err, ErrPersistenceFailed) match database failures.
func (e *DatabaseExecuteError) Is(target error) bool {
	return ErrPersistenceFailed.Is(target)
}

// Kind returns KindPersistence
func (e *DatabaseExecuteError) Kind() Kind {
	return KindPersistence
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
