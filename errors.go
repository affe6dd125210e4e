package easypath

import (
	"io/fs"

	"github.com/jmgilman/go/easypath/errors"
)

// opError wraps a filesystem error, classifying it by its OS cause and
// recording the path it concerns.
func opError(err error, message, path string) error {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.ClassifyOS(err), message, map[string]interface{}{"path": path})
}

// moveError is opError for operations with a source and a destination.
func moveError(err error, message, src, dst string) error {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.ClassifyOS(err), message, map[string]interface{}{"src": src, "dst": dst})
}

// pathError creates an error without an underlying cause.
func pathError(code errors.ErrorCode, message, path string) error {
	return errors.WithContext(errors.New(code, message), "path", path)
}

// IsNotFound reports whether err means a path does not exist.
func IsNotFound(err error) bool {
	return errors.HasCode(err, errors.CodeNotFound) || errors.Is(err, fs.ErrNotExist)
}

// IsExist reports whether err means a path is already taken.
func IsExist(err error) bool {
	return errors.HasCode(err, errors.CodeAlreadyExists) || errors.Is(err, fs.ErrExist)
}

// IsCancelled reports whether err means a confirmation prompt was declined.
func IsCancelled(err error) bool {
	return errors.HasCode(err, errors.CodeCancelled)
}
