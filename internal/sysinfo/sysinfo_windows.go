//go:build windows

package sysinfo

import (
	"os"

	"golang.org/x/sys/windows"
)

// DiskUsage returns total, used and free bytes of the volume holding path.
// Free is the space available to the calling user.
func DiskUsage(path string) (Usage, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Usage{}, err
	}

	var free, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p, &free, &total, &totalFree); err != nil {
		return Usage{}, err
	}
	return Usage{Total: total, Used: total - totalFree, Free: free}, nil
}

// Access reports whether the current user has the given permission on path.
// Windows has no access(2); read and execute are granted when the path can be
// opened and write follows the read-only attribute.
func Access(path string, mode AccessMode) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if mode&Write != 0 && info.Mode().Perm()&0o200 == 0 {
		return false, nil
	}
	if mode&(Read|Execute) != 0 && !info.IsDir() {
		f, err := os.Open(path)
		if err != nil {
			if os.IsPermission(err) {
				return false, nil
			}
			return false, err
		}
		_ = f.Close()
	}
	return true, nil
}
