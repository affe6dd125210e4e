//go:build linux || darwin || freebsd

package sysinfo

import (
	"golang.org/x/sys/unix"
)

// DiskUsage returns total, used and free bytes of the filesystem holding path.
// Free is the space available to unprivileged users.
func DiskUsage(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, err
	}

	bsize := uint64(st.Bsize)
	return Usage{
		Total: uint64(st.Blocks) * bsize,
		Used:  (uint64(st.Blocks) - uint64(st.Bfree)) * bsize,
		Free:  uint64(st.Bavail) * bsize,
	}, nil
}

// Access reports whether the current user has the given permission on path.
// A denied permission is reported as false with a nil error; any other
// failure (for example, a missing path) is returned.
func Access(path string, mode AccessMode) (bool, error) {
	var bits uint32
	if mode&Read != 0 {
		bits |= unix.R_OK
	}
	if mode&Write != 0 {
		bits |= unix.W_OK
	}
	if mode&Execute != 0 {
		bits |= unix.X_OK
	}

	err := unix.Access(path, bits)
	switch err {
	case nil:
		return true, nil
	case unix.EACCES, unix.EROFS, unix.EPERM:
		return false, nil
	default:
		return false, err
	}
}
