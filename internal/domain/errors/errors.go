package errors

import (
	"net/http"
	"strings"

	"allserve/internal/errors"
)

// Kind is the caller-facing error taxonomy. Every business rule violation maps to exactly one kind.
type Kind string

const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindPermissionDenied   Kind = "permission-denied"
	KindNotFound           Kind = "not-found"
	KindFailedPrecondition Kind = "failed-precondition"
	KindAlreadyExists      Kind = "already-exists"
	KindInvalidArgument    Kind = "invalid-argument"
	KindInternal           Kind = "internal"
)

// HTTPCode returns the HTTP status used by the callable protocol for the kind.
func (k Kind) HTTPCode() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindFailedPrecondition, KindInvalidArgument:
		return http.StatusBadRequest
	case KindAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Status returns the callable protocol status string, e.g. "FAILED_PRECONDITION".
func (k Kind) Status() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "-", "_"))
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Caller-facing error kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the caller-facing error kind
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
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
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error with a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches any BaseError with the same error code, so copies made by
// WithMessage and WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Authentication and authorization
	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		"UNAUTHENTICATED",
		"User must be authenticated",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		KindPermissionDenied,
		"PERMISSION_DENIED",
		"Permission denied",
		"",
	)

	ErrAdminRequired = NewBaseError(
		KindPermissionDenied,
		"ADMIN_REQUIRED",
		"Admin access required",
		"",
	)

	// Validation
	ErrInvalidArgument = NewBaseError(
		KindInvalidArgument,
		"INVALID_ARGUMENT",
		"Invalid argument",
		"",
	)

	// Provider-related errors
	ErrProviderNotFound = NewBaseError(
		KindNotFound,
		"PROVIDER_NOT_FOUND",
		"Provider not found",
		"",
	)

	ErrProviderUnavailable = NewBaseError(
		KindFailedPrecondition,
		"PROVIDER_UNAVAILABLE",
		"Provider is not available",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		KindNotFound,
		"SERVICE_NOT_FOUND",
		"Service not found",
		"",
	)

	// Booking-related errors
	ErrSlotAlreadyBooked = NewBaseError(
		KindAlreadyExists,
		"SLOT_ALREADY_BOOKED",
		"Time slot is already booked",
		"",
	)

	ErrBookingNotFound = NewBaseError(
		KindNotFound,
		"BOOKING_NOT_FOUND",
		"Booking not found",
		"",
	)

	ErrInvalidBookingAction = NewBaseError(
		KindInvalidArgument,
		"INVALID_ACTION",
		"Invalid action",
		"",
	)

	ErrBookingNotCancellable = NewBaseError(
		KindFailedPrecondition,
		"BOOKING_NOT_CANCELLABLE",
		"Booking cannot be cancelled",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		KindFailedPrecondition,
		"INVALID_TRANSITION",
		"Booking status does not allow this action",
		"",
	)

	// Review-related errors
	ErrInvalidReview = NewBaseError(
		KindInvalidArgument,
		"INVALID_REVIEW",
		"Invalid review data",
		"",
	)

	ErrReviewNotAllowed = NewBaseError(
		KindFailedPrecondition,
		"REVIEW_NOT_ALLOWED",
		"Can only review completed bookings",
		"",
	)

	ErrReviewAlreadyExists = NewBaseError(
		KindAlreadyExists,
		"REVIEW_ALREADY_EXISTS",
		"Review already exists for this booking",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		KindNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL",
		"Internal error",
		"",
	)
)

// KindOf returns the kind carried by err, or KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

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

// Unwrap returns the underlying store error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the caller-facing error kind
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
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
	return "Internal error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// NewUnauthenticated creates an unauthenticated error with a custom message
func NewUnauthenticated(message string) *BaseError {
	return ErrUnauthenticated.WithMessage(message)
}

// NewPermissionDenied creates a permission-denied error with a custom message
func NewPermissionDenied(message string) *BaseError {
	return ErrPermissionDenied.WithMessage(message)
}

// NewInvalidArgument creates an invalid-argument error with a custom message
func NewInvalidArgument(message string) *BaseError {
	return ErrInvalidArgument.WithMessage(message)
}

// NewNotFound creates a not-found error with a custom message
func NewNotFound(message string) *BaseError {
	return NewBaseError(KindNotFound, "NOT_FOUND", message, "")
}

// NewFailedPrecondition creates a failed-precondition error with a custom message
func NewFailedPrecondition(message string) *BaseError {
	return NewBaseError(KindFailedPrecondition, "FAILED_PRECONDITION", message, "")
}

// NewAlreadyExists creates an already-exists error with a custom message
func NewAlreadyExists(message string) *BaseError {
	return NewBaseError(KindAlreadyExists, "ALREADY_EXISTS", message, "")
}

// NewInternal creates an internal error with a custom message
func NewInternal(message string) *BaseError {
	return ErrInternalError.WithMessage(message)
}
