package vfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/easypath/internal/sysinfo"
)

// LocalFS is the host filesystem. It implements FS and every optional
// interface in this package.
type LocalFS struct {
	billyFS
}

// NewLocal returns a filesystem operating on the host's real paths.
func NewLocal() *LocalFS {
	return &LocalFS{billyFS{bfs: osfs.Default}}
}

// Type returns TypeLocal.
func (l *LocalFS) Type() Type {
	return TypeLocal
}

// Chmod changes the permission bits of the named file. go-billy has no
// portable chmod, so this calls the os package directly.
func (l *LocalFS) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(filepath.Clean(name), mode)
}

// Chtimes changes the access and modification times of the named file.
func (l *LocalFS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(filepath.Clean(name), atime, mtime)
}

// DiskUsage reports the capacity of the volume holding path.
func (l *LocalFS) DiskUsage(path string) (Usage, error) {
	u, err := sysinfo.DiskUsage(filepath.Clean(path))
	if err != nil {
		return Usage{}, err
	}
	return Usage{Total: u.Total, Used: u.Used, Free: u.Free}, nil
}

// Access reports whether the current user holds every permission in mode.
func (l *LocalFS) Access(name string, mode AccessMode) (bool, error) {
	return sysinfo.Access(filepath.Clean(name), sysinfo.AccessMode(mode))
}

// WalkConcurrent walks root using fastwalk's worker pool.
func (l *LocalFS) WalkConcurrent(root string, walkFn fs.WalkDirFunc) error {
	conf := fastwalk.Config{Follow: false}
	return fastwalk.Walk(&conf, filepath.Clean(root), walkFn)
}

var (
	_ FS               = (*LocalFS)(nil)
	_ ConcurrentWalkFS = (*LocalFS)(nil)
	_ MetadataFS       = (*LocalFS)(nil)
	_ SymlinkFS        = (*LocalFS)(nil)
	_ TempFS           = (*LocalFS)(nil)
	_ UsageFS          = (*LocalFS)(nil)
	_ AccessFS         = (*LocalFS)(nil)
)
