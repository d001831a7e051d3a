// Package apperrors defines the domain error taxonomy shared by the service
// and repository layers. Handlers translate these to HTTP status codes.
package apperrors

import "errors"

var (
	// ErrValidation marks a missing or empty required field (HTTP 400).
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks an absent record or unresolved reference (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a unique-constraint violation (HTTP 409).
	ErrConflict = errors.New("conflict")
)

// Error carries a client-facing message together with the taxonomy sentinel,
// so callers can dispatch with errors.Is and still show the exact message.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a validation error with the given message
func Validation(message string) *Error {
	return &Error{Err: ErrValidation, Message: message}
}

// NotFound returns a not-found error with the given message
func NotFound(message string) *Error {
	return &Error{Err: ErrNotFound, Message: message}
}

// Conflict returns a conflict error with the given message
func Conflict(message string) *Error {
	return &Error{Err: ErrConflict, Message: message}
}
