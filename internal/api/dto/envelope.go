// Package dto defines the request and response shapes of the HTTP API.
// Every response is wrapped in the same success/error envelope the
// frontend already consumes.
package dto

// Envelope wraps every API response.
type Envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError represents a structured error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	ErrCodeNotFound      = "not_found"
	ErrCodeBadRequest    = "bad_request"
	ErrCodeInternalError = "internal_error"
	ErrCodeValidation    = "validation_error"
)

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps an error code and message in a failure envelope.
func Fail(code, message string) Envelope {
	return Envelope{Success: false, Error: &APIError{Code: code, Message: message}}
}

// ValidationError creates a validation failure envelope.
func ValidationError(message string) Envelope {
	return Fail(ErrCodeValidation, message)
}

// InternalError creates an internal server error envelope.
func InternalError() Envelope {
	return Fail(ErrCodeInternalError, "an internal error occurred")
}
