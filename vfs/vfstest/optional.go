package vfstest

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmgilman/go/easypath/vfs"
)

// TestSymlinkFS tests Symlink and Readlink. It skips providers without
// SymlinkFS.
func TestSymlinkFS(t *testing.T, newFS NewFunc) {
	filesystem, root := newFS(t)
	sfs, ok := filesystem.(vfs.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
	}

	target := filepath.Join(root, "target.txt")
	link := filepath.Join(root, "link.txt")
	mustWrite(t, filesystem, target, "target content")

	t.Run("Create", func(t *testing.T) {
		if err := sfs.Symlink(target, link); err != nil {
			t.Fatalf("Symlink(%q, %q): got error %v, want nil", target, link, err)
		}
		got, err := sfs.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink(%q): got error %v", link, err)
		}
		if got != target {
			t.Errorf("Readlink(%q): got %q, want %q", link, got, target)
		}
		data, err := filesystem.ReadFile(link)
		if err != nil || string(data) != "target content" {
			t.Errorf("ReadFile(%q): got (%q, %v), want target content", link, data, err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		if err := sfs.Symlink(target, link); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Symlink over existing %q: got error %v, want fs.ErrExist", link, err)
		}
	})

	t.Run("Broken", func(t *testing.T) {
		broken := filepath.Join(root, "broken.txt")
		if err := sfs.Symlink(filepath.Join(root, "absent.txt"), broken); err != nil {
			t.Fatalf("Symlink(broken): got error %v, want nil", err)
		}
		ok, err := filesystem.Exists(broken)
		if err != nil || !ok {
			t.Errorf("Exists(%q): got (%v, %v), want (true, nil)", broken, ok, err)
		}
		if _, err := filesystem.Stat(broken); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", broken, err)
		}
	})

	t.Run("Lstat", func(t *testing.T) {
		lfs, ok := filesystem.(interface {
			Lstat(string) (fs.FileInfo, error)
		})
		if !ok {
			t.Skip("Lstat not supported")
		}
		info, err := lfs.Lstat(link)
		if err != nil {
			t.Fatalf("Lstat(%q): got error %v", link, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(%q): mode %v lacks ModeSymlink", link, info.Mode())
		}
	})
}

// TestTempFS tests TempFile. It skips providers without TempFS.
func TestTempFS(t *testing.T, newFS NewFunc) {
	filesystem, root := newFS(t)
	tfs, ok := filesystem.(vfs.TempFS)
	if !ok {
		t.Skip("TempFS not supported")
	}

	f, err := tfs.TempFile(root, ".scratch-")
	if err != nil {
		t.Fatalf("TempFile(%q): got error %v, want nil", root, err)
	}
	name := f.Name()
	if filepath.Dir(name) != filepath.Clean(root) {
		t.Errorf("TempFile(): Name() = %q, want a file directly under %q", name, root)
	}
	if !strings.HasPrefix(filepath.Base(name), ".scratch-") {
		t.Errorf("TempFile(): Name() = %q, want prefix %q", name, ".scratch-")
	}
	if _, err := io.WriteString(f, "scratch"); err != nil {
		t.Fatalf("Write(): got error %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v", err)
	}

	data, err := filesystem.ReadFile(name)
	if err != nil || string(data) != "scratch" {
		t.Errorf("ReadFile(%q): got (%q, %v), want scratch", name, data, err)
	}
}

// TestMetadataFS tests Chmod and Chtimes. It skips providers without
// MetadataFS.
func TestMetadataFS(t *testing.T, newFS NewFunc) {
	filesystem, root := newFS(t)
	mfs, ok := filesystem.(vfs.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
	}
	name := filepath.Join(root, "meta.txt")
	mustWrite(t, filesystem, name, "meta")

	t.Run("Chmod", func(t *testing.T) {
		if err := mfs.Chmod(name, 0o600); err != nil {
			t.Fatalf("Chmod(%q): got error %v", name, err)
		}
		info, err := mfs.Lstat(name)
		if err != nil {
			t.Fatalf("Lstat(%q): got error %v", name, err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("Lstat(%q): mode %v, want 0600", name, info.Mode().Perm())
		}
	})

	t.Run("Chtimes", func(t *testing.T) {
		when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		if err := mfs.Chtimes(name, when, when); err != nil {
			t.Fatalf("Chtimes(%q): got error %v", name, err)
		}
		info, err := filesystem.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v", name, err)
		}
		if !info.ModTime().Equal(when) {
			t.Errorf("Stat(%q): ModTime() = %v, want %v", name, info.ModTime(), when)
		}
	})
}
