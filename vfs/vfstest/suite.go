// Package vfstest provides a conformance suite for vfs.FS providers.
//
// Providers call TestSuite from their own tests with a constructor that
// returns a fresh filesystem and an absolute, existing directory the suite
// may populate:
//
//	func TestLocal(t *testing.T) {
//	    vfstest.TestSuite(t, func(t *testing.T) (vfs.FS, string) {
//	        return vfs.NewLocal(), t.TempDir()
//	    })
//	}
//
// Optional interfaces (MetadataFS, SymlinkFS, TempFS) are exercised only when
// the provider implements them.
package vfstest

import (
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/easypath/vfs"
)

// NewFunc returns a filesystem and the root directory tests run under.
type NewFunc func(t *testing.T) (vfs.FS, string)

// TestSuite runs every applicable conformance test. Each group gets its own
// filesystem from newFS.
func TestSuite(t *testing.T, newFS NewFunc) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS)
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFS(t, newFS)
	})
	t.Run("ManageFS", func(t *testing.T) {
		TestManageFS(t, newFS)
	})
	t.Run("WalkFS", func(t *testing.T) {
		TestWalkFS(t, newFS)
	})
	t.Run("SymlinkFS", func(t *testing.T) {
		TestSymlinkFS(t, newFS)
	})
	t.Run("TempFS", func(t *testing.T) {
		TestTempFS(t, newFS)
	})
	t.Run("MetadataFS", func(t *testing.T) {
		TestMetadataFS(t, newFS)
	})
}

func mustWrite(t *testing.T, filesystem vfs.FS, name string, data string) {
	t.Helper()
	if err := filesystem.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", filepath.Dir(name), err)
	}
	if err := filesystem.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
}
