// Package errors provides structured error types for Windrose.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidMap, "node %q has no statement", id)
//	if errors.Is(err, errors.ErrCodeInvalidMap) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMultipleRoots, origErr, "cannot lay out %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidMap      Code = "INVALID_MAP"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"
	ErrCodeInvalidVizType  Code = "INVALID_VIZ_TYPE"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidStrength Code = "INVALID_STRENGTH"
	ErrCodeInvalidPolarity Code = "INVALID_POLARITY"

	// Tree shape errors
	ErrCodeMultipleRoots Code = "MULTIPLE_ROOTS"
	ErrCodeDuplicateNode Code = "DUPLICATE_NODE"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// Is reports whether any *Error in err's tree carries code. It follows both
// single causes and errors.Join lists, so a MULTIPLE_ROOTS error stays
// detectable after the CLI wraps it again.
func Is(err error, code Code) bool {
	switch x := err.(type) {
	case nil:
		return false
	case *Error:
		return x.Code == code || Is(x.Cause, code)
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if Is(e, code) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		return Is(x.Unwrap(), code)
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
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

// Exit statuses returned by ExitCode.
const (
	ExitFailure = 1 // runtime failure: I/O, rendering, cache
	ExitInput   = 2 // the map, layout or flags were rejected
)

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	switch GetCode(err) {
	case ErrCodeInternal, ErrCodeUnsupported, "":
		return ExitFailure
	default:
		return ExitInput
	}
}
