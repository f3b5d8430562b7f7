package errors

import "fmt"

// ErrorType represents the categories of analysis failure. All of them
// collapse to "no result" at the analyzer boundary; the type only feeds
// debug logging.
type ErrorType string

const (
	ErrorTypeRead       ErrorType = "read"
	ErrorTypeDecode     ErrorType = "decode"
	ErrorTypeEmptyImage ErrorType = "empty_image"
)

// AppError is a structured error wrapping the underlying cause.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewReadError creates an error for files that could not be opened or read.
func NewReadError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeRead, Message: message, Cause: cause}
}

// NewDecodeError creates an error for undecodable or corrupt image data.
func NewDecodeError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeDecode, Message: message, Cause: cause}
}

// NewEmptyImageError creates an error for images with a zero dimension.
func NewEmptyImageError(message string) *AppError {
	return &AppError{Type: ErrorTypeEmptyImage, Message: message}
}

// IsType checks if the error is of a specific type.
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}
