package vfstest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

// TestManageFS tests Remove, RemoveAll and Rename.
func TestManageFS(t *testing.T, newFS NewFunc) {
	filesystem, root := newFS(t)

	t.Run("RemoveFile", func(t *testing.T) {
		name := filepath.Join(root, "remove.txt")
		mustWrite(t, filesystem, name, "x")
		if err := filesystem.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", name, err)
		}
		if ok, _ := filesystem.Exists(name); ok {
			t.Errorf("Exists(%q) after Remove: got true, want false", name)
		}
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		name := filepath.Join(root, "never.txt")
		if err := filesystem.Remove(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(%q): got error %v, want fs.ErrNotExist", name, err)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		dir := filepath.Join(root, "tree")
		mustWrite(t, filesystem, filepath.Join(dir, "a", "b.txt"), "b")
		mustWrite(t, filesystem, filepath.Join(dir, "c.txt"), "c")
		if err := filesystem.RemoveAll(dir); err != nil {
			t.Fatalf("RemoveAll(%q): got error %v, want nil", dir, err)
		}
		if ok, _ := filesystem.Exists(dir); ok {
			t.Errorf("Exists(%q) after RemoveAll: got true, want false", dir)
		}
		if err := filesystem.RemoveAll(dir); err != nil {
			t.Errorf("RemoveAll(%q) on missing path: got error %v, want nil", dir, err)
		}
	})

	t.Run("RenameFile", func(t *testing.T) {
		from := filepath.Join(root, "old.txt")
		to := filepath.Join(root, "new.txt")
		mustWrite(t, filesystem, from, "moved")
		if err := filesystem.Rename(from, to); err != nil {
			t.Fatalf("Rename(%q, %q): got error %v, want nil", from, to, err)
		}
		data, err := filesystem.ReadFile(to)
		if err != nil || string(data) != "moved" {
			t.Errorf("ReadFile(%q): got (%q, %v), want %q", to, data, err, "moved")
		}
		if ok, _ := filesystem.Exists(from); ok {
			t.Errorf("Exists(%q) after Rename: got true, want false", from)
		}
	})

	t.Run("RenameDir", func(t *testing.T) {
		from := filepath.Join(root, "olddir")
		to := filepath.Join(root, "newdir")
		mustWrite(t, filesystem, filepath.Join(from, "inner.txt"), "inner")
		if err := filesystem.Rename(from, to); err != nil {
			t.Fatalf("Rename(%q, %q): got error %v, want nil", from, to, err)
		}
		if _, err := filesystem.ReadFile(filepath.Join(to, "inner.txt")); err != nil {
			t.Errorf("ReadFile(inner.txt) after Rename: got error %v", err)
		}
	})

	t.Run("RenameMissing", func(t *testing.T) {
		from := filepath.Join(root, "ghost.txt")
		err := filesystem.Rename(from, filepath.Join(root, "elsewhere.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Rename(%q): got error %v, want fs.ErrNotExist", from, err)
		}
	})
}
