package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// Insight pipeline error taxonomy. Only ErrMissingParameter, ErrUnknownKind
// and ErrUpstreamUnavailable ever surface to a caller; the rest are absorbed
// by the fallback policy.
var (
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrUnknownKind         = errors.New("unknown insight kind")
	ErrUpstreamUnavailable = errors.New("completion service unavailable")
	ErrUpstreamTimeout     = errors.New("completion service timeout")
	ErrUpstreamError       = errors.New("completion service error")
	ErrUnparsableResponse  = errors.New("unparsable model response")
	ErrSchemaViolation     = errors.New("model response violates schema")
	ErrPersistence         = errors.New("persistence failure")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

func MissingParameterError(name string) error {
	return NewAppError("MISSING_PARAMETER", fmt.Sprintf("parameter %q is required", name), ErrMissingParameter)
}

func UnknownKindError(kind string) error {
	return NewAppError("UNKNOWN_KIND", fmt.Sprintf("unsupported insight kind %q", kind), ErrUnknownKind)
}
