// Package errors provides structured error types for the refnet
// application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library consumers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Referral insertion rejections map to INVALID_SELF_REFERRAL,
// ALREADY_REFERRED, and WOULD_CREATE_CYCLE. Growth inversions map to
// UNREACHABLE_TARGET and IMPOSSIBLE_TARGET. Input handling uses the
// INVALID_* and *_NOT_FOUND codes.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidScenario, "scenario has no referrals")
//	if errors.Is(err, errors.ErrCodeInvalidScenario) {
//	    // Handle validation error
//	}
//
//	// Classify sentinel errors from the core packages
//	code := errors.Classify(network.AddReferral(a, b))
package errors

import (
	"errors"
	"fmt"

	"github.com/refnetlabs/refnet/pkg/growth"
	"github.com/refnetlabs/refnet/pkg/referral"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Referral insertion rejections
	ErrCodeSelfReferral    Code = "INVALID_SELF_REFERRAL"
	ErrCodeAlreadyReferred Code = "ALREADY_REFERRED"
	ErrCodeWouldCycle      Code = "WOULD_CREATE_CYCLE"

	// Growth inversion sentinels
	ErrCodeUnreachable Code = "UNREACHABLE_TARGET"
	ErrCodeImpossible  Code = "IMPOSSIBLE_TARGET"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidScenario Code = "INVALID_SCENARIO"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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
// Sentinel errors from the core packages are classified; other errors
// yield the empty string.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Classify(err)
}

// Classify maps sentinel errors from the referral and growth packages to
// their machine-readable codes. Unrecognized (or nil) errors yield the
// empty string.
func Classify(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, referral.ErrSelfReferral):
		return ErrCodeSelfReferral
	case errors.Is(err, referral.ErrAlreadyReferred):
		return ErrCodeAlreadyReferred
	case errors.Is(err, referral.ErrWouldCreateCycle):
		return ErrCodeWouldCycle
	case errors.Is(err, growth.ErrUnreachable):
		return ErrCodeUnreachable
	case errors.Is(err, growth.ErrImpossible):
		return ErrCodeImpossible
	default:
		return ""
	}
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
