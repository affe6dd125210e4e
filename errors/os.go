package errors

import (
	stderrors "errors"
	"io/fs"
	"syscall"
)

// ClassifyOS returns the ErrorCode matching an error produced by the os or
// io/fs packages. Errors that already are PlatformErrors keep their code.
// Returns CodeUnknown for nil.
func ClassifyOS(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		switch errno {
		case syscall.ENOTDIR:
			return CodeNotADirectory
		case syscall.EISDIR:
			return CodeNotAFile
		case syscall.ENOTEMPTY:
			return CodeNotEmpty
		case syscall.EBUSY, syscall.EAGAIN:
			return CodeBusy
		}
	}

	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		return CodeForbidden
	case stderrors.Is(err, stderrors.ErrUnsupported):
		return CodeUnsupported
	case stderrors.Is(err, fs.ErrInvalid):
		return CodeInvalidInput
	}
	return CodeIO
}

// FromOS wraps an os or io/fs error as a PlatformError whose code is chosen by
// ClassifyOS. The original error stays reachable through errors.Is and
// errors.As. Returns nil if err is nil.
//
// Example:
//
//	if _, err := fsys.Stat(path); err != nil {
//	    return errors.FromOS(err, "failed to stat path")
//	}
func FromOS(err error, message string) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, ClassifyOS(err), message)
}
