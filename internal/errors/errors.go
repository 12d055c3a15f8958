// Package errors defines coded errors for replan boundary failures.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code represents stable error codes for all failure modes
type Code string

const (
	// ConfigInvalid indicates invalid caller configuration (min score,
	// max suggestions, provider list shape). Raised at the boundary
	// before any scan work.
	ConfigInvalid Code = "CONFIG_INVALID"
	// ProviderLoadFailed indicates a rule provider could not be loaded.
	// Always isolated to the one provider, never fatal.
	ProviderLoadFailed Code = "PROVIDER_LOAD_FAILED"
	// TextUnreadable indicates the issue-text file could not be read
	TextUnreadable Code = "TEXT_UNREADABLE"
	// Internal indicates an unexpected error
	Internal Code = "INTERNAL_ERROR"
)

// Error is a replan error with a stable code and optional details
type Error struct {
	Code    Code        `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error
}

// New creates a new coded Error
func New(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// CodeOf extracts the stable code from err, or Internal when err carries
// no code.
func CodeOf(err error) Code {
	var coded *Error
	if stderrors.As(err, &coded) {
		return coded.Code
	}
	return Internal
}
