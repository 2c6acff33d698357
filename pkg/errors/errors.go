// Package errors provides structured error types for the tiledeck application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, TUI, and HTTP surface
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - STORAGE_*: Persistence failures (all recovered locally, never fatal)
//   - SCHEMA_*: Layout documents at an unrecognized version
//   - INVALID_*: Input validation failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownTile, "unknown tile id: %s", id)
//	if errors.Is(err, errors.ErrCodeUnknownTile) {
//	    // Handle invalid reference
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorageRead, origErr, "read layout key %s", key)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Persistence errors. Both are recovered locally by the layout store:
	// reads fall back to the default layout, failed writes are dropped.
	ErrCodeStorageRead  Code = "STORAGE_READ"
	ErrCodeStorageWrite Code = "STORAGE_WRITE"

	// Schema errors: a persisted layout names a version the engine does not
	// recognize as current or migratable.
	ErrCodeSchemaVersion Code = "SCHEMA_VERSION"

	// Input validation errors
	ErrCodeUnknownTile   Code = "UNKNOWN_TILE"
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"
	ErrCodeInvalidTileID Code = "INVALID_TILE_ID"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

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
