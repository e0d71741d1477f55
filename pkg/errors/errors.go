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

	// Inflection errors
	ErrInvalidCase   ErrorCode = "INVALID_CASE"
	ErrInvalidGender ErrorCode = "INVALID_GENDER"

	// Rule table errors
	ErrRuleSourceNotFound ErrorCode = "RULE_SOURCE_NOT_FOUND"
	ErrRuleSourceParse    ErrorCode = "RULE_SOURCE_PARSE"
	ErrRuleDataInvalid    ErrorCode = "RULE_DATA_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// CLI errors
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"
)

// PetrovichError represents a structured error with code and details
type PetrovichError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PetrovichError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PetrovichError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PetrovichError) Is(target error) bool {
	var targetErr *PetrovichError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PetrovichError with the given code and message
func New(code ErrorCode, message string) *PetrovichError {
	return &PetrovichError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PetrovichError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PetrovichError {
	return &PetrovichError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PetrovichError
func Wrap(err error, code ErrorCode, message string) *PetrovichError {
	if err == nil {
		return nil
	}
	return &PetrovichError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PetrovichError {
	if err == nil {
		return nil
	}
	return &PetrovichError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PetrovichError) WithDetail(key string, value interface{}) *PetrovichError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PetrovichError) WithDetails(details map[string]interface{}) *PetrovichError {
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
	var petrovichErr *PetrovichError
	if errors.As(err, &petrovichErr) {
		return petrovichErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PetrovichError
func GetErrorCode(err error) ErrorCode {
	var petrovichErr *PetrovichError
	if errors.As(err, &petrovichErr) {
		return petrovichErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PetrovichError
func GetErrorDetails(err error) map[string]interface{} {
	var petrovichErr *PetrovichError
	if errors.As(err, &petrovichErr) {
		return petrovichErr.Details
	}
	return nil
}
