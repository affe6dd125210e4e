package vfs

import (
	"errors"
	"io/fs"
	"syscall"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned when a provider cannot perform an operation,
	// such as Chmod on an in-memory filesystem. It is the standard library's
	// errors.ErrUnsupported so callers need not import this package to test it.
	ErrUnsupported = errors.ErrUnsupported
)

var errNotDir error = syscall.ENOTDIR
