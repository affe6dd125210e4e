package vfstest

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/easypath/vfs"
)

// TestReadFS tests Open, Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, newFS NewFunc) {
	filesystem, root := newFS(t)
	content := "test file content"
	file := filepath.Join(root, "testdir", "testfile.txt")
	mustWrite(t, filesystem, file, content)

	t.Run("Open", func(t *testing.T) {
		f, err := filesystem.Open(file)
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", file, err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v", err)
		}
		if string(data) != content {
			t.Errorf("Read(): got %q, want %q", data, content)
		}
	})

	t.Run("FileStat", func(t *testing.T) {
		f, err := filesystem.Open(file)
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", file, err)
		}
		defer func() { _ = f.Close() }()

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("File.Stat(): got error %v, want nil", err)
		}
		if info.Name() != "testfile.txt" {
			t.Errorf("File.Stat(): Name() = %q, want %q", info.Name(), "testfile.txt")
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("File.Stat(): Size() = %d, want %d", info.Size(), len(content))
		}
		if info.IsDir() {
			t.Errorf("File.Stat(): IsDir() = true, want false")
		}
	})

	t.Run("StatFile", func(t *testing.T) {
		info, err := filesystem.Stat(file)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", file, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", file)
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(%q): Size() = %d, want %d", file, info.Size(), len(content))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		dir := filepath.Join(root, "testdir")
		info, err := filesystem.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", dir)
		}
	})

	t.Run("ReadDirSorted", func(t *testing.T) {
		dir := filepath.Join(root, "sorted")
		mustWrite(t, filesystem, filepath.Join(dir, "c.txt"), "c")
		mustWrite(t, filesystem, filepath.Join(dir, "a.txt"), "a")
		if err := filesystem.MkdirAll(filepath.Join(dir, "b"), 0o755); err != nil {
			t.Fatalf("MkdirAll(b): setup failed: %v", err)
		}

		entries, err := filesystem.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir(%q): got error %v, want nil", dir, err)
		}
		want := []string{"a.txt", "b", "c.txt"}
		if len(entries) != len(want) {
			t.Fatalf("ReadDir(%q): got %d entries, want %d", dir, len(entries), len(want))
		}
		for i, e := range entries {
			if e.Name() != want[i] {
				t.Errorf("ReadDir(%q)[%d]: got %q, want %q", dir, i, e.Name(), want[i])
			}
		}
		if !entries[1].IsDir() {
			t.Errorf("ReadDir(%q): entry %q IsDir() = false, want true", dir, "b")
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", file, err)
		}
		if string(data) != content {
			t.Errorf("ReadFile(%q): got %q, want %q", file, data, content)
		}
	})

	t.Run("OpenNotExist", func(t *testing.T) {
		missing := filepath.Join(root, "missing.txt")
		_, err := filesystem.Open(missing)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", missing, err)
		}
		_, err = filesystem.Stat(missing)
		if !errors.Is(err, vfs.ErrNotExist) {
			t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", missing, err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			file:                               true,
			filepath.Join(root, "testdir"):     true,
			filepath.Join(root, "nothing.txt"): false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", name, got, want)
			}
		}
	})
}
