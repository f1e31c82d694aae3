package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUpstream indicates that a third-party service answered with a failure status.
var ErrUpstream = errors.New("upstream error")

// ErrInvalidUpstreamPayload indicates that a third-party service answered with a body we could not parse.
var ErrInvalidUpstreamPayload = errors.New("invalid upstream payload")

// ValidationError carries a caller-facing validation message.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UpstreamError describes a non-success reply from a third-party service.
// It matches ErrUpstream with errors.Is.
type UpstreamError struct {
	// Service prefixes the message when set, e.g. "is.gd error 500: ...".
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Service == "" {
		return fmt.Sprintf("error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s error %d: %s", e.Service, e.StatusCode, e.Body)
}

// Is reports whether target is ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
