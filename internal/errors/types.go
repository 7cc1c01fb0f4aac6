package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/toyz/navs13/pkg/navs13"
)

// AppError defines the base interface for all navs13 application errors
type AppError interface {
	error
	ErrorCode() ErrorCode
	Context() map[string]interface{}
	Suggestions() []string
	Unwrap() error
}

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	UsageErrorCode
	ServerErrorCode

	// Validation failures, one per navs13.Kind
	InvalidLengthErrorCode
	InvalidCountryCodeErrorCode
	InvalidChecksumErrorCode
	InvalidFormatErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case UsageErrorCode:
		return "UsageError"
	case ServerErrorCode:
		return "ServerError"
	case InvalidLengthErrorCode:
		return "InvalidLength"
	case InvalidCountryCodeErrorCode:
		return "InvalidCountryCode"
	case InvalidChecksumErrorCode:
		return "InvalidChecksum"
	case InvalidFormatErrorCode:
		return "InvalidFormat"
	default:
		return "UnknownError"
	}
}

// Process exit codes. The validation codes are stable and scripts rely on them.
const (
	ExitOK                 = 0
	ExitFailure            = 1
	ExitInvalidLength      = 64
	ExitInvalidCountryCode = 65
	ExitInvalidChecksum    = 66
	ExitInvalidFormat      = 67
)

// ExitCode returns the process exit status for the error code
func (e ErrorCode) ExitCode() int {
	switch e {
	case InvalidLengthErrorCode:
		return ExitInvalidLength
	case InvalidCountryCodeErrorCode:
		return ExitInvalidCountryCode
	case InvalidChecksumErrorCode:
		return ExitInvalidChecksum
	case InvalidFormatErrorCode:
		return ExitInvalidFormat
	default:
		return ExitFailure
	}
}

// CodeForKind maps a navs13 parse failure kind to an error code
func CodeForKind(kind navs13.Kind) ErrorCode {
	switch kind {
	case navs13.InvalidLength:
		return InvalidLengthErrorCode
	case navs13.InvalidCountryCode:
		return InvalidCountryCodeErrorCode
	case navs13.InvalidChecksum:
		return InvalidChecksumErrorCode
	case navs13.InvalidFormat:
		return InvalidFormatErrorCode
	default:
		return UnknownErrorCode
	}
}

// BaseError provides a common implementation of the AppError interface
type BaseError struct {
	Code        ErrorCode              // type of error
	Message     string                 // error message
	Cause       error                  // underlying error cause
	ContextData map[string]interface{} // additional context information
	Hints       []string               // helpful suggestions for fixing the error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.Message
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

// Context returns the error context data
func (e *BaseError) Context() map[string]interface{} {
	if e.ContextData == nil {
		return make(map[string]interface{})
	}
	return e.ContextData
}

// Suggestions returns helpful suggestions for fixing the error
func (e *BaseError) Suggestions() []string {
	return e.Hints
}

// Unwrap returns the underlying error cause for error chain inspection
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithContext adds context data to the error
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.ContextData == nil {
		e.ContextData = make(map[string]interface{})
	}
	e.ContextData[key] = value
	return e
}

// WithSuggestion adds a helpful suggestion for fixing the error
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.Hints = append(e.Hints, suggestion)
	return e
}

// New creates a new BaseError with the specified code and message
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Hints:   make([]string, 0),
	}
}

// Wrap creates a new error that wraps another error
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Hints:   make([]string, 0),
	}
}

// Wrapf creates a new error that wraps another error with formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *BaseError {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// CodeOf returns the error code carried by err. Bare navs13 parse errors are
// classified by kind; anything else is UnknownErrorCode.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return UnknownErrorCode
	}
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.ErrorCode()
	}
	return CodeForKind(navs13.KindOf(err))
}

// ExitCodeOf returns the process exit status for err, ExitOK for nil
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	return CodeOf(err).ExitCode()
}
