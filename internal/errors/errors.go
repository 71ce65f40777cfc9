// Package errors provides structured error handling with HTTP status code
// mapping for the handler layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an error for metrics and response formatting.
type ErrorType string

const (
	// TypeValidation indicates invalid submitted data (HTTP 400)
	TypeValidation ErrorType = "validation"
	// TypeAuth indicates a rejected credential, ours or the user's (HTTP 401)
	TypeAuth ErrorType = "auth"
	// TypeNotFound indicates a missing resource (HTTP 404)
	TypeNotFound ErrorType = "not_found"
	// TypeConflict indicates a resource conflict, e.g. enabling an already
	// enabled feature (HTTP 409)
	TypeConflict ErrorType = "conflict"
	// TypeUpstream indicates a non-success response from the platform API (HTTP 502)
	TypeUpstream ErrorType = "upstream"
	// TypeInternal indicates a server-side failure (HTTP 500)
	TypeInternal ErrorType = "internal"
)

// Error is a structured error with type, message, and context fields.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the HTTP status code for this error type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeAuth:
		return http.StatusUnauthorized
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeUpstream:
		return http.StatusBadGateway
	case TypeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError creates a validation error (HTTP 400).
func ValidationError(message string) *Error {
	return &Error{Type: TypeValidation, Message: message, Context: make(map[string]any)}
}

// AuthError creates an auth error (HTTP 401).
func AuthError(message string) *Error {
	return &Error{Type: TypeAuth, Message: message, Context: make(map[string]any)}
}

// NotFoundError creates a not-found error (HTTP 404).
func NotFoundError(message string) *Error {
	return &Error{Type: TypeNotFound, Message: message, Context: make(map[string]any)}
}

// ConflictError creates a conflict error (HTTP 409).
func ConflictError(message string) *Error {
	return &Error{Type: TypeConflict, Message: message, Context: make(map[string]any)}
}

// UpstreamError creates an upstream error (HTTP 502). The cause carries the
// upstream response body as diagnostic detail.
func UpstreamError(message string, cause error) *Error {
	return &Error{Type: TypeUpstream, Message: message, Cause: cause, Context: make(map[string]any)}
}

// InternalError creates an internal error (HTTP 500).
func InternalError(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause, Context: make(map[string]any)}
}

// WithContext adds a context field to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ErrorResponse is the JSON structure sent to clients.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Type    ErrorType      `json:"type"`
	Context map[string]any `json:"context,omitempty"`
}

// ToResponse converts an Error to an ErrorResponse for JSON serialization.
func (e *Error) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Message,
		Type:    e.Type,
		Context: e.Context,
	}
}

// AsStructuredError converts any error into a structured Error. An existing
// *Error passes through unchanged; anything else becomes an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError("internal server error", err)
}
