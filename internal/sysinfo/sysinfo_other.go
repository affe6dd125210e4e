//go:build !linux && !darwin && !freebsd && !windows

package sysinfo

import "errors"

// DiskUsage is not available on this platform.
func DiskUsage(string) (Usage, error) {
	return Usage{}, errors.ErrUnsupported
}

// Access is not available on this platform.
func Access(string, AccessMode) (bool, error) {
	return false, errors.ErrUnsupported
}
