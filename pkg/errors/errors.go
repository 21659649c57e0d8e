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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Environment store errors
	ErrEnvRead  ErrorCode = "ENV_READ"
	ErrEnvWrite ErrorCode = "ENV_WRITE"

	// Module descriptor errors
	ErrModFileNotFound ErrorCode = "MODFILE_NOT_FOUND"
	ErrModFileParse    ErrorCode = "MODFILE_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// MayamodError represents a structured error with code and details
type MayamodError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MayamodError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MayamodError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MayamodError) Is(target error) bool {
	var targetErr *MayamodError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MayamodError with the given code and message
func New(code ErrorCode, message string) *MayamodError {
	return &MayamodError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MayamodError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MayamodError {
	return &MayamodError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MayamodError
func Wrap(err error, code ErrorCode, message string) *MayamodError {
	if err == nil {
		return nil
	}
	return &MayamodError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MayamodError {
	if err == nil {
		return nil
	}
	return &MayamodError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MayamodError) WithDetail(key string, value interface{}) *MayamodError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var merr *MayamodError
	if errors.As(err, &merr) {
		return merr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MayamodError
func GetErrorCode(err error) ErrorCode {
	var merr *MayamodError
	if errors.As(err, &merr) {
		return merr.Code
	}
	return ErrUnknown
}
