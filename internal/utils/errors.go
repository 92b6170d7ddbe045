package utils

import "fmt"

// ValidationError represents an error occurring during data validation.
type ValidationError struct {
	Message string
}

// Error returns the error message string.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError with a specific message.
//
// Parameters:
//   - message: The validation error message.
//
// Returns:
//   - An error interface wrapping the ValidationError.
func NewValidationError(message string) error {
	return &ValidationError{
		Message: message,
	}
}

// NewValidationErrorf creates a new ValidationError with a formatted message.
//
// Parameters:
//   - format: The format string.
//   - args: Arguments for the format string.
//
// Returns:
//   - An error interface wrapping the ValidationError.
func NewValidationErrorf(format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// ProcessError represents a failure while invoking the external predictor
// process: start failure, nonzero exit, timeout, or unparsable output.
// Stderr carries whatever the child wrote to its standard error stream.
type ProcessError struct {
	Message string
	Stderr  string
}

// Error returns the captured stderr text when present, otherwise the
// invocation failure message.
func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Message
}

// NewProcessError creates a new ProcessError with a specific message.
func NewProcessError(message string, stderr string) error {
	return &ProcessError{
		Message: message,
		Stderr:  stderr,
	}
}

// NewProcessErrorf creates a new ProcessError with a formatted message and
// no captured stderr.
func NewProcessErrorf(format string, args ...interface{}) error {
	return &ProcessError{
		Message: fmt.Sprintf(format, args...),
	}
}
