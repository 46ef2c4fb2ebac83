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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Remote errors. ErrRemote carries the response status; ErrNetwork means
	// the remote could not be reached at all.
	ErrRemote          ErrorCode = "REMOTE"
	ErrNetwork         ErrorCode = "NETWORK"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// FileSystem errors
	ErrFilesystem ErrorCode = "FILESYSTEM"
)

// Detail keys shared by the packages that build coded errors
const (
	DetailStatusCode = "status_code"
	DetailReason     = "reason"
	DetailURL        = "url"
	DetailPath       = "path"
	DetailOp         = "op"
	DetailMod        = "mod"
)

// ModsyncError represents a structured error with code and details
type ModsyncError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModsyncError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModsyncError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ModsyncError) Is(target error) bool {
	var targetErr *ModsyncError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModsyncError with the given code and message
func New(code ErrorCode, message string) *ModsyncError {
	return &ModsyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModsyncError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModsyncError {
	return &ModsyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModsyncError.
// Callers must check err before returning the result as an error value:
// a nil *ModsyncError stored in an error interface is not a nil error.
func Wrap(err error, code ErrorCode, message string) *ModsyncError {
	if err == nil {
		return nil
	}
	return &ModsyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModsyncError {
	if err == nil {
		return nil
	}
	return &ModsyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModsyncError) WithDetail(key string, value interface{}) *ModsyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ModsyncError) WithDetails(details map[string]interface{}) *ModsyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var msErr *ModsyncError
	if errors.As(err, &msErr) {
		return msErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModsyncError
func GetErrorCode(err error) ErrorCode {
	var msErr *ModsyncError
	if errors.As(err, &msErr) {
		return msErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ModsyncError
func GetErrorDetails(err error) map[string]interface{} {
	var msErr *ModsyncError
	if errors.As(err, &msErr) {
		return msErr.Details
	}
	return nil
}

// StatusCode returns the remote status code carried by a REMOTE error, or 0
func StatusCode(err error) int {
	details := GetErrorDetails(err)
	if details == nil {
		return 0
	}
	code, _ := details[DetailStatusCode].(int)
	return code
}
