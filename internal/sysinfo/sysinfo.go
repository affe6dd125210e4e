// Package sysinfo exposes host filesystem facts that the os package does not
// cover: disk usage of the volume holding a path and access checks for the
// current user.
package sysinfo

// Usage reports the capacity of the filesystem containing a path, in bytes.
type Usage struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// AccessMode selects which permission Access checks.
type AccessMode uint32

const (
	// Read checks read permission.
	Read AccessMode = 1 << iota
	// Write checks write permission.
	Write
	// Execute checks execute (or, for directories, search) permission.
	Execute
)
