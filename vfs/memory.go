package vfs

import (
	"github.com/go-git/go-billy/v5/memfs"
)

// MemoryFS is an in-memory filesystem. It implements FS, SymlinkFS and
// TempFS. It has no permission model, so MetadataFS, UsageFS and AccessFS
// are absent and callers fall back or report ErrUnsupported.
type MemoryFS struct {
	billyFS
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *MemoryFS {
	return &MemoryFS{billyFS{bfs: memfs.New()}}
}

// Type returns TypeMemory.
func (m *MemoryFS) Type() Type {
	return TypeMemory
}

var (
	_ FS        = (*MemoryFS)(nil)
	_ SymlinkFS = (*MemoryFS)(nil)
	_ TempFS    = (*MemoryFS)(nil)
)
