package vfs

import (
	"io"
	"io/fs"
	"time"
)

// Type identifies the storage behind a filesystem.
type Type int

const (
	// TypeUnknown indicates the filesystem type is unknown or unspecified.
	TypeUnknown Type = iota
	// TypeLocal indicates the host filesystem.
	TypeLocal
	// TypeMemory indicates an in-memory filesystem.
	TypeMemory
)

// String returns a string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeLocal:
		return "local"
	case TypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem interface every provider implements.
//
// FS embeds fs.FS, but unlike the io/fs contract all names are absolute
// OS-native paths (for example "/home/user/file.txt").
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type returns the underlying filesystem type.
	Type() Type
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// The returned file should be closed when no longer needed.
	Open(name string) (fs.File, error)

	// Stat returns file metadata, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by
	// filename. Entries describe symbolic links themselves, not their targets.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the path is missing.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags (O_RDONLY, O_WRONLY,
	// O_RDWR, O_CREATE, O_EXCL, O_APPEND, O_TRUNC) and permissions.
	// Providers create missing parent directories when O_CREATE is given;
	// callers that must not create parents check for them first.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary and
	// truncating it otherwise.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. It fails with ErrExist if the path
	// exists and with ErrNotExist if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any necessary parents.
	// It does nothing if path is already a directory.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file and directory management operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// If the path does not exist, RemoveAll returns nil.
	RemoveAll(path string) error

	// Rename renames (moves) oldpath to newpath.
	// If newpath already exists and is not a directory, Rename replaces it.
	Rename(oldpath, newpath string) error
}

// WalkFS defines directory tree traversal operations.
type WalkFS interface {
	// Walk walks the file tree rooted at root in lexical order, calling
	// walkFn for each file or directory in the tree, including root.
	// Symbolic links are reported but not followed. Returning fs.SkipDir
	// skips a directory; fs.SkipAll stops the walk.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// ConcurrentWalkFS walks a tree with several workers. Entries arrive in no
// particular order and walkFn may be called from multiple goroutines at once,
// so it suits aggregates such as sizes and counts. SkipDir is honoured;
// symbolic links are not followed.
type ConcurrentWalkFS interface {
	WalkConcurrent(root string, walkFn fs.WalkDirFunc) error
}

// File represents an open file handle.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}

// Truncater allows truncating a file to a specified size.
type Truncater interface {
	Truncate(size int64) error
}

// Syncer allows syncing file contents to stable storage.
type Syncer interface {
	Sync() error
}

// MetadataFS defines metadata operations.
//
//	if mfs, ok := filesystem.(MetadataFS); ok {
//	    err := mfs.Chmod("/tmp/file.txt", 0600)
//	}
type MetadataFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod changes the permission bits of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}

// SymlinkFS defines symbolic link operations.
type SymlinkFS interface {
	// Symlink creates newname as a symbolic link to oldname.
	// If newname already exists, Symlink returns an error.
	// Broken symbolic links are valid and detectable via Lstat.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// TempFS defines temporary file creation.
type TempFS interface {
	// TempFile creates a new file in dir whose name begins with prefix,
	// opened for reading and writing. The caller removes it when done.
	TempFile(dir, prefix string) (File, error)
}

// Usage reports the capacity of a volume in bytes.
type Usage struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// UsageFS reports the capacity of the volume holding a path.
type UsageFS interface {
	DiskUsage(path string) (Usage, error)
}

// AccessMode selects the permissions checked by AccessFS.
type AccessMode uint32

const (
	// AccessRead checks read permission.
	AccessRead AccessMode = 1 << iota
	// AccessWrite checks write permission.
	AccessWrite
	// AccessExecute checks execute permission (search, for directories).
	AccessExecute
)

// AccessFS checks permissions of the current user on a path.
type AccessFS interface {
	// Access reports whether every permission in mode is granted.
	// Denial is reported as false with a nil error.
	Access(name string, mode AccessMode) (bool, error)
}
