// Package errors provides structured error types for the housebox generator.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the geometry pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes group into the three failure kinds of the pipeline:
//   - INVALID_*: parameter or configuration validation failures
//   - FINGER_JOINT: an edge cannot host a feasible joint plan
//   - PANEL_TOO_WIDE: a panel cannot be bounded by any material sheet
//
// All errors are terminal for a generation request. The same inputs always
// produce the same error, so there is nothing transient to retry against.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDimension, "length must be positive, got %.1f", x)
//	if errors.Is(err, errors.ErrCodeInvalidDimension) {
//	    // Handle validation error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parameter and configuration validation errors
	ErrCodeInvalidDimension     Code = "INVALID_DIMENSION"
	ErrCodeInvalidAngle         Code = "INVALID_ANGLE"
	ErrCodeKerfExceedsThickness Code = "KERF_EXCEEDS_THICKNESS"
	ErrCodeCutoutOutOfBounds    Code = "CUTOUT_OUT_OF_BOUNDS"
	ErrCodeInvalidConfig        Code = "INVALID_CONFIG"
	ErrCodeInvalidPreset        Code = "INVALID_PRESET"

	// Joint planning errors
	ErrCodeFingerJoint Code = "FINGER_JOINT"

	// Sheet layout errors
	ErrCodePanelTooWide Code = "PANEL_TOO_WIDE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err carries one of the validation codes.
// Validation errors are surfaced before any geometry is produced.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidDimension, ErrCodeInvalidAngle, ErrCodeKerfExceedsThickness,
		ErrCodeCutoutOutOfBounds, ErrCodeInvalidConfig, ErrCodeInvalidPreset:
		return true
	}
	return false
}
