// Package apierror defines the three failure kinds surfaced by the business
// layer and their mapping to HTTP status codes. Handlers translate every
// error through Status and Message so that internal causes (SQL errors,
// broker failures) never leak to clients.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError signals that caller-supplied data violates a precondition.
// Field names the offending field when known.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for a specific field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError signals that a referenced identity does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// NewNotFound builds a NotFoundError for an entity/id pair.
func NewNotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ExternalError wraps any failure below the business layer. The cause is kept
// for server-side logging; clients only ever see the message.
type ExternalError struct {
	Message string
	Cause   error
}

func (e *ExternalError) Error() string { return e.Message }
func (e *ExternalError) Unwrap() error { return e.Cause }

// NewExternal wraps a lower-layer failure with a client-safe message.
func NewExternal(msg string, cause error) *ExternalError {
	return &ExternalError{Message: msg, Cause: cause}
}

// Status maps an error to its HTTP status code. Unknown errors are treated
// as external failures.
func Status(err error) int {
	var ve *ValidationError
	var nf *NotFoundError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error. External errors
// expose only their safe message; anything unrecognized gets a generic one.
func Message(err error) string {
	var ve *ValidationError
	var nf *NotFoundError
	var ex *ExternalError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &nf):
		return nf.Error()
	case errors.As(err, &ex):
		return ex.Message
	default:
		return "internal server error"
	}
}
