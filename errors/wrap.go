package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// If the wrapped error is a PlatformError, its classification is preserved.
// Returns nil if err is nil.
//
// Example:
//
//	data, err := sonic.Marshal(v)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeEncodeFailed, "failed to encode JSON")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
// Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.Rename(src, dst); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeIO, "rename failed", map[string]interface{}{
//	        "src": src,
//	        "dst": dst,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	wrapped := Wrap(err, code, message)
	if wrapped == nil {
		return nil
	}
	if ctx != nil {
		wrapped.(*platformError).context = copyContext(ctx)
	}
	return wrapped
}
