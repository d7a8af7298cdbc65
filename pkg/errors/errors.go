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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Source validation errors
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrNestedSources  ErrorCode = "NESTED_SOURCES"

	// Plan errors
	ErrEmptyPlan         ErrorCode = "EMPTY_PLAN"
	ErrLineCountMismatch ErrorCode = "LINE_COUNT_MISMATCH"
	ErrNothingToDo       ErrorCode = "NOTHING_TO_DO"

	// Collision errors
	ErrDuplicateDestination     ErrorCode = "DUPLICATE_DESTINATION"
	ErrDestinationExists        ErrorCode = "DESTINATION_EXISTS"
	ErrInvalidAncestorDirectory ErrorCode = "INVALID_ANCESTOR_DIRECTORY"

	// Execution errors
	ErrEditorLaunchFailed ErrorCode = "EDITOR_LAUNCH_FAILED"
	ErrMoveFailed         ErrorCode = "MOVE_FAILED"
	ErrUndoFailed         ErrorCode = "UNDO_FAILED"

	// Not a failure: the user chose to stop
	ErrUserCancelled ErrorCode = "USER_CANCELLED"
)

// DetailExitCode is the detail key carrying a process exit status.
const DetailExitCode = "exitCode"

// EditMoveError represents a structured error with code and details
type EditMoveError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EditMoveError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EditMoveError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EditMoveError) Is(target error) bool {
	var targetErr *EditMoveError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EditMoveError with the given code and message
func New(code ErrorCode, message string) *EditMoveError {
	return &EditMoveError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EditMoveError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EditMoveError {
	return &EditMoveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EditMoveError
func Wrap(err error, code ErrorCode, message string) *EditMoveError {
	if err == nil {
		return nil
	}
	return &EditMoveError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EditMoveError {
	if err == nil {
		return nil
	}
	return &EditMoveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Cancelled returns the error used when the user stops the session on purpose.
func Cancelled() *EditMoveError {
	return New(ErrUserCancelled, "cancelled")
}

// WithDetail adds a detail to the error
func (e *EditMoveError) WithDetail(key string, value interface{}) *EditMoveError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *EditMoveError) WithDetails(details map[string]interface{}) *EditMoveError {
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
	var emErr *EditMoveError
	if errors.As(err, &emErr) {
		return emErr.Code == code
	}
	return false
}

// IsCancellation reports whether err ends the session without being a failure.
func IsCancellation(err error) bool {
	return IsErrorCode(err, ErrUserCancelled) || IsErrorCode(err, ErrNothingToDo)
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EditMoveError
func GetErrorCode(err error) ErrorCode {
	var emErr *EditMoveError
	if errors.As(err, &emErr) {
		return emErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EditMoveError
func GetErrorDetails(err error) map[string]interface{} {
	var emErr *EditMoveError
	if errors.As(err, &emErr) {
		return emErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status.
//
// nil and cancellations map to 0. A failed editor propagates its own non-zero
// status when one was recorded. Everything else maps to 1.
func ExitCode(err error) int {
	if err == nil || IsCancellation(err) {
		return 0
	}
	if details := GetErrorDetails(err); details != nil {
		if code, ok := details[DetailExitCode].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}
