// Package errors provides structured error types for dalmcut.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the abstraction, lm-cut, and landmark
//     packages
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDomainTooLarge, "pattern %v overflows", pattern)
//	if errors.Is(err, errors.ErrCodeDomainTooLarge) {
//	    // drop the offending pattern
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes, one per kind named in the error handling design.
const (
	// ErrCodeUnsupportedTaskShape signals axioms or conditional effects.
	ErrCodeUnsupportedTaskShape Code = "UNSUPPORTED_TASK_SHAPE"

	// ErrCodeDomainTooLarge signals an abstract state count overflow.
	ErrCodeDomainTooLarge Code = "DOMAIN_TOO_LARGE"

	// ErrCodeUnsolvableTask signals the initial state is dead after pruning.
	ErrCodeUnsolvableTask Code = "UNSOLVABLE_TASK"

	// ErrCodeDeadEnd signals a query-time dead end (not fatal to the caller).
	ErrCodeDeadEnd Code = "DEAD_END"

	// ErrCodeInvariantViolation signals a runtime invariant failure (a bug).
	ErrCodeInvariantViolation Code = "INVARIANT_VIOLATION"
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
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Invariant panics with an InvariantViolation error if cond is false.
//
// Invariant failures are bugs, not recoverable conditions: construction-time
// errors (UnsupportedTaskShape, DomainTooLarge, UnsolvableTask) are returned
// as values, but an invariant failure terminates the process, matching the
// original implementation's assert/ABORT semantics.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(New(ErrCodeInvariantViolation, format, args...))
	}
}
