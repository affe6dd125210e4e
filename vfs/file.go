package vfs

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// billyFile wraps billy.File to implement File. The name is kept separately
// because backends disagree on the format billy.File.Name returns.
type billyFile struct {
	file billy.File
	fs   backend
	name string
}

// Read implements io.Reader.
func (f *billyFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write implements io.Writer.
func (f *billyFile) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close implements io.Closer.
func (f *billyFile) Close() error {
	return f.file.Close()
}

// Stat describes the open file. Handles that expose Stat are asked directly;
// others (memfs wraps its files in a chroot) are described by the backend.
// The result always carries the base name.
func (f *billyFile) Stat() (fs.FileInfo, error) {
	var (
		info fs.FileInfo
		err  error
	)
	if st, ok := f.file.(interface{ Stat() (fs.FileInfo, error) }); ok {
		info, err = st.Stat()
	} else {
		info, err = f.fs.Stat(f.name)
	}
	if err != nil {
		return nil, err
	}
	return namedInfo{FileInfo: info, name: filepath.Base(f.name)}, nil
}

type namedInfo struct {
	fs.FileInfo
	name string
}

func (n namedInfo) Name() string { return n.name }

// Name returns the absolute path the file was opened with.
func (f *billyFile) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *billyFile) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Truncate implements Truncater.
func (f *billyFile) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Sync flushes the file to stable storage. It is a no-op for backends
// without durable storage.
func (f *billyFile) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

var (
	_ File      = (*billyFile)(nil)
	_ io.Seeker = (*billyFile)(nil)
	_ Truncater = (*billyFile)(nil)
	_ Syncer    = (*billyFile)(nil)
)
