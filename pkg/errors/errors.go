package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrValidation          = errors.New("validation failed")
	ErrComputation         = errors.New("computation failed")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrNotConfigured       = errors.New("service not configured")
	ErrRecordNotFound      = errors.New("record not found")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeComputation         = "COMPUTATION_ERROR"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeNotConfigured       = "NOT_CONFIGURED"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeDatabaseError       = "DATABASE_ERROR"
	ErrCodeCacheError          = "CACHE_ERROR"
)

// WrapValidation reports a client-side input problem on a single field.
func WrapValidation(field, reason string) *BusinessError {
	e := NewBusinessError(ErrCodeValidation, reason, ErrValidation)
	e.Field = field
	return e
}

func WrapComputation(operation string, err error) *BusinessError {
	return NewBusinessError(
		ErrCodeComputation,
		fmt.Sprintf("%s calculation failed", operation),
		errors.Join(ErrComputation, err),
	)
}

func WrapUpstreamUnavailable(service string, err error) *BusinessError {
	return NewBusinessError(
		ErrCodeUpstreamUnavailable,
		fmt.Sprintf("%s is currently unavailable", service),
		errors.Join(ErrUpstreamUnavailable, err),
	)
}

func WrapNotConfigured(service, setting string) *BusinessError {
	return NewBusinessError(
		ErrCodeNotConfigured,
		fmt.Sprintf("%s is not configured. Please set %s", service, setting),
		ErrNotConfigured,
	)
}

func WrapRecordNotFound(kind, id string) *BusinessError {
	return NewBusinessError(
		ErrCodeNotFound,
		fmt.Sprintf("%s with ID %s not found", kind, id),
		ErrRecordNotFound,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}

// IsValidation reports whether err carries a validation failure.
func IsValidation(err error) bool {
	var be *BusinessError
	return errors.As(err, &be) && be.Code == ErrCodeValidation
}

// HTTPStatus maps an error to the status code surfaced to API callers.
func HTTPStatus(err error) int {
	var be *BusinessError
	if !errors.As(err, &be) {
		return http.StatusInternalServerError
	}

	switch be.Code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUpstreamUnavailable, ErrCodeNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
