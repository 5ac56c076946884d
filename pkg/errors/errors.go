package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Pipeline errors
	ErrLogoRead      ErrorCode = "LOGO_READ"
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrRenderWrite   ErrorCode = "RENDER_WRITE"
	ErrUnknownFormat ErrorCode = "UNKNOWN_FORMAT"
)

// KifetchError represents a structured error with code and details
type KifetchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *KifetchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *KifetchError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *KifetchError) Is(target error) bool {
	var targetErr *KifetchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new KifetchError with the given code and message
func New(code ErrorCode, message string) *KifetchError {
	return &KifetchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new KifetchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *KifetchError {
	return &KifetchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a KifetchError
func Wrap(err error, code ErrorCode, message string) *KifetchError {
	if err == nil {
		return nil
	}
	return &KifetchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *KifetchError {
	if err == nil {
		return nil
	}
	return &KifetchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *KifetchError) WithDetail(key string, value interface{}) *KifetchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var kerr *KifetchError
	if errors.As(err, &kerr) {
		return kerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a KifetchError
func GetErrorCode(err error) ErrorCode {
	var kerr *KifetchError
	if errors.As(err, &kerr) {
		return kerr.Code
	}
	return ErrUnknown
}
