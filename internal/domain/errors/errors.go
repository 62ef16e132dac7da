package errors

import (
	"net/http"

	"bakeandtaste/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	kind      *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// newKindError creates a more specific error that still matches kind with errors.Is.
func newKindError(kind *BaseError, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  kind.httpCode,
		errorCode: errorCode,
		message:   message,
		kind:      kind,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

func (e *BaseError) Is(target error) bool {
	for kind := e.kind; kind != nil; kind = kind.kind {
		if target == kind {
			return true
		}
	}

	return false
}

// WrapMessage annotates the error with a caller-facing message while keeping it matchable with errors.Is.
func (e *BaseError) WrapMessage(message string) error {
	return errors.WithStack(&annotatedError{kind: e, message: message})
}

// annotatedError carries the message given to WrapMessage apart from the wrap chain above it.
type annotatedError struct {
	kind    *BaseError
	message string
}

func (e *annotatedError) Error() string {
	return e.message + ": " + e.kind.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.kind
}

// PublicDetails returns the detail that may be shown to a caller: the AppError's own details,
// else the message passed to WrapMessage. Wrapping added by callers further up is never included.
func PublicDetails(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		return appErr.Details()
	}

	var annotated *annotatedError
	if errors.As(err, &annotated) {
		return annotated.message
	}

	return ""
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches e and e's kind with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		kind:      e,
	}
}

// Predefined error kinds
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrProfileNotFound = newKindError(ErrNotFound, "PROFILE_NOT_FOUND", "profile not found")

	ErrBakeryNotFound = newKindError(ErrNotFound, "BAKERY_NOT_FOUND", "bakery not found")

	ErrCakeNotFound = newKindError(ErrNotFound, "CAKE_NOT_FOUND", "cake not found")

	ErrOrderNotFound = newKindError(ErrNotFound, "ORDER_NOT_FOUND", "order not found")

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"invalid input",
		"",
	)

	ErrCakeUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"CAKE_UNAVAILABLE",
		"cake is not available for ordering",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"order status transition is not allowed",
		"",
	)

	// ErrUnauthorized is returned when an identified caller acts on something it does not own
	// or with the wrong role.
	ErrUnauthorized = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED",
		"you are not allowed to perform this action",
		"",
	)

	// ErrUnauthenticated is returned when no valid access token is presented.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	ErrEmailAlreadyExists = newKindError(ErrConflict, "EMAIL_ALREADY_EXISTS", "this email is already registered")

	ErrCakeInUse = newKindError(ErrConflict, "CAKE_IN_USE", "cake has orders and cannot be deleted, mark it unavailable instead")

	ErrUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"UNAVAILABLE",
		"service temporarily unavailable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a store failure. It renders as ErrUnavailable
// and matches it with errors.Is.
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Is lets errors.Is(err, ErrUnavailable) hold for every store failure.
func (e *DatabaseExecuteError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return ErrUnavailable.HTTPCode()
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrUnavailable.ErrorCode()
}

func (e *DatabaseExecuteError) Message() string {
	return ErrUnavailable.Message()
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
