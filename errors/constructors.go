package errors

import "fmt"

// New creates a new PlatformError with the given code and message.
// The classification is determined by the error code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "fieldnames must not be empty")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new PlatformError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeNotADirectory, "%s is not a directory", path)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
