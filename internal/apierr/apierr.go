// Package apierr defines the typed error taxonomy shared by the resource
// services and the HTTP surface. Services return *Error values; the handlers
// are the single place that maps them to HTTP status codes and response
// envelopes.
package apierr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for logging and status mapping.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal"
)

// Error is an operational error with a user-facing message and an HTTP
// status. The message is safe to return to clients as-is.
type Error struct {
	Status  int
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying error without changing what the
// client sees.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// Validation reports malformed or out-of-range input (400).
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

// Unauthorized reports missing or bad credentials (401).
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Kind: KindAuthentication, Message: message}
}

// NotFound reports an absent resource (404). Failed ownership checks use the
// same constructor so callers cannot distinguish "not yours" from "not there".
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Kind: KindNotFound, Message: message}
}

// Conflict reports a duplicate unique field. Surfaced as 400, matching the
// API's historical behavior for duplicate resources.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Kind: KindConflict, Message: message}
}

// Internal reports an unexpected failure (500). The generic message hides the
// cause from clients; the cause stays attached for logging.
func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: "Internal Server Error",
		cause:   err,
	}
}

// From extracts the *Error from err, wrapping unexpected errors as Internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
