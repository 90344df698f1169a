// Copyright (c) 2026 Tigerlilly. All rights reserved.

/*
Package apperr defines the centralized error taxonomy for the Tigerlilly API.

It provides a typed error that bridges repository-level failures and HTTP
responses.

Architecture:

  - AppError: carries an HTTP status and a client-safe message.
  - Mapping: repositories and services return *AppError; the respond package
    translates it into the `{error: {message, status}}` envelope.

Every error that leaves a service should be an [AppError]; anything else is
treated as an internal server error.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the Tigerlilly API.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to
// clients, so internal detail (SQL text, file paths) cannot leak.
type AppError struct {
	// Status is the HTTP response status code.
	Status int
	// Message is a human-readable description safe to return to the client.
	Message string
	// Details holds the full list of schema-violation messages for
	// validation failures. When non-empty it replaces Message in the
	// response envelope.
	Details []string
	// Cause is the underlying error, used for server-side logging only.
	Cause error
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError]. The message should name the lookup key
// and value that failed, e.g. "No article found by that id: 42".
func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// BadRequest creates a 400 [AppError] for a malformed or semantically
// invalid request.
func BadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// Validation creates a 400 [AppError] carrying the full list of
// schema-violation messages.
func Validation(messages ...string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Details: messages,
	}
}

// Conflict creates a duplicate-uniqueness error naming the duplicate value.
//
// The status is 400, not 409: the API has always reported duplicates as bad
// requests and clients key off that.
func Conflict(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Unauthorized"
	}
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred",
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
