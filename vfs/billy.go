package vfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// backend is the subset of billy interfaces both providers are built on.
// osfs.ChrootOS is used directly rather than through a chroot helper so that
// names pass through untranslated.
type backend interface {
	billy.Basic
	billy.TempFile
	billy.Dir
	billy.Symlink
}

// billyFS adapts a billy backend to FS. LocalFS and MemoryFS embed it and
// add the optional capabilities their backend supports.
type billyFS struct {
	bfs backend
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }
func (d *dirEntry) String() string             { return fs.FormatDirEntry(d) }

// Open opens the named file for reading.
func (b *billyFS) Open(name string) (fs.File, error) {
	name = filepath.Clean(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, fs: b.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (b *billyFS) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(filepath.Clean(name))
}

// ReadDir reads the named directory and returns its entries sorted by filename.
func (b *billyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := b.bfs.ReadDir(filepath.Clean(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (b *billyFS) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(filepath.Clean(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *billyFS) Exists(name string) (bool, error) {
	_, err := b.bfs.Lstat(filepath.Clean(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (b *billyFS) Create(name string) (File, error) {
	name = filepath.Clean(name)
	f, err := b.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, fs: b.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (b *billyFS) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	name = filepath.Clean(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, fs: b.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *billyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(b.bfs, filepath.Clean(name), data, perm)
}

// Mkdir creates a new directory. Unlike MkdirAll, this fails if the parent
// directory does not exist or the path is taken.
func (b *billyFS) Mkdir(name string, perm fs.FileMode) error {
	name = filepath.Clean(name)
	if _, err := b.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != name {
		info, err := b.bfs.Stat(parent)
		if err != nil {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: errNotDir}
		}
	}
	return b.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *billyFS) MkdirAll(path string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(filepath.Clean(path), perm)
}

// Remove removes the named file or empty directory.
func (b *billyFS) Remove(name string) error {
	return b.bfs.Remove(filepath.Clean(name))
}

// RemoveAll removes path and any children it contains.
func (b *billyFS) RemoveAll(path string) error {
	err := util.RemoveAll(b.bfs, filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Rename renames (moves) oldpath to newpath.
func (b *billyFS) Rename(oldpath, newpath string) error {
	oldpath, newpath = filepath.Clean(oldpath), filepath.Clean(newpath)
	if _, err := b.bfs.Lstat(oldpath); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	return b.bfs.Rename(oldpath, newpath)
}

// Walk walks the file tree rooted at root, calling walkFn for each file or
// directory in the tree, including root.
func (b *billyFS) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = filepath.Clean(root)
	info, err := b.bfs.Stat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = b.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (b *billyFS) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	infos, err := b.bfs.ReadDir(path)
	if err != nil {
		if err = walkFn(path, d, err); err != nil {
			if errors.Is(err, fs.SkipDir) {
				err = nil
			}
			return err
		}
	}

	for _, info := range infos {
		if err := b.walk(filepath.Join(path, info.Name()), &dirEntry{info: info}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Lstat returns file info without following symbolic links.
func (b *billyFS) Lstat(name string) (fs.FileInfo, error) {
	return b.bfs.Lstat(filepath.Clean(name))
}

// Symlink creates newname as a symbolic link to oldname.
func (b *billyFS) Symlink(oldname, newname string) error {
	newname = filepath.Clean(newname)
	if _, err := b.bfs.Lstat(newname); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrExist}
	}
	return b.bfs.Symlink(oldname, newname)
}

// Readlink returns the destination of the named symbolic link.
func (b *billyFS) Readlink(name string) (string, error) {
	return b.bfs.Readlink(filepath.Clean(name))
}

// TempFile creates a new temporary file in dir whose name begins with prefix.
func (b *billyFS) TempFile(dir, prefix string) (File, error) {
	dir = filepath.Clean(dir)
	f, err := b.bfs.TempFile(dir, prefix)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, fs: b.bfs, name: filepath.Join(dir, filepath.Base(f.Name()))}, nil
}
