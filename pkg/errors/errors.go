// Package errors provides structured error types for adminviz.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - MALFORMED_* / INVALID_*: Input and option validation failures
//   - UNRESOLVED_* / BROKEN_*: Graph consistency failures
//   - FILE_* / IO_*: Filesystem errors
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedRow, "line %d: expected 6 columns, got %d", line, n)
//	if errors.Is(err, errors.ErrCodeMalformedRow) {
//	    // Handle parse error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeMalformedRow    Code = "MALFORMED_ROW"
	ErrCodeInvalidDistance Code = "INVALID_DISTANCE"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"

	// Option errors
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPathMode Code = "INVALID_PATH_MODE"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Graph consistency errors
	ErrCodeUnresolvedNode Code = "UNRESOLVED_NODE"
	ErrCodeBrokenPath     Code = "BROKEN_PATH"

	// Filesystem errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"

)

// hints suggest the flag or fix that resolves an error, keyed by code.
var hints = map[Code]string{
	ErrCodeMalformedRow:    "every row needs NodeName, IsUser, Edges, Distance, Visited and Predecessor",
	ErrCodeInvalidDistance: "distances are breadth-first hop counts starting at 0",
	ErrCodeInvalidFormat:   "run with --help to list the output formats",
	ErrCodeInvalidPathMode: "use --path-mode distance or --path-mode predecessor",
	ErrCodeUnresolvedNode:  "rerun with --placeholders to draw missing neighbors as hosts",
	ErrCodeBrokenPath:      "try --path-mode distance, which does not need predecessors",
}

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
// For *Error types, returns the message (and cause) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Hint returns a short suggestion for resolving err, or "" when its code
// has none.
func Hint(err error) string {
	return hints[GetCode(err)]
}
