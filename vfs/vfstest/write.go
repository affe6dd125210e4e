package vfstest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// TestWriteFS tests Create, OpenFile, WriteFile, Mkdir and MkdirAll.
func TestWriteFS(t *testing.T, newFS NewFunc) {
	filesystem, root := newFS(t)

	t.Run("CreateAndWrite", func(t *testing.T) {
		name := filepath.Join(root, "created.txt")
		f, err := filesystem.Create(name)
		if err != nil {
			t.Fatalf("Create(%q): got error %v, want nil", name, err)
		}
		if f.Name() != name {
			t.Errorf("Name(): got %q, want %q", f.Name(), name)
		}
		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}

		data, err := filesystem.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v", name, err)
		}
		if string(data) != "hello" {
			t.Errorf("ReadFile(%q): got %q, want %q", name, data, "hello")
		}
	})

	t.Run("WriteFileTruncates", func(t *testing.T) {
		name := filepath.Join(root, "truncate.txt")
		mustWrite(t, filesystem, name, "a long first version")
		if err := filesystem.WriteFile(name, []byte("short"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): got error %v", name, err)
		}
		data, _ := filesystem.ReadFile(name)
		if string(data) != "short" {
			t.Errorf("ReadFile(%q): got %q, want %q", name, data, "short")
		}
	})

	t.Run("OpenFileAppend", func(t *testing.T) {
		name := filepath.Join(root, "append.txt")
		mustWrite(t, filesystem, name, "one\n")
		f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(%q, O_APPEND): got error %v", name, err)
		}
		if _, err := f.Write([]byte("two\n")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		_ = f.Close()

		data, _ := filesystem.ReadFile(name)
		if string(data) != "one\ntwo\n" {
			t.Errorf("ReadFile(%q): got %q, want %q", name, data, "one\ntwo\n")
		}
	})

	t.Run("OpenFileExclusive", func(t *testing.T) {
		name := filepath.Join(root, "exclusive.txt")
		mustWrite(t, filesystem, name, "x")
		_, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(%q, O_EXCL): got error %v, want fs.ErrExist", name, err)
		}
	})

	t.Run("Mkdir", func(t *testing.T) {
		dir := filepath.Join(root, "single")
		if err := filesystem.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("Mkdir(%q): got error %v, want nil", dir, err)
		}
		if err := filesystem.Mkdir(dir, 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%q) twice: got error %v, want fs.ErrExist", dir, err)
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		dir := filepath.Join(root, "no", "such", "parent")
		if err := filesystem.Mkdir(dir, 0o755); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(%q): got error %v, want fs.ErrNotExist", dir, err)
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		dir := filepath.Join(root, "deep", "er", "est")
		for i := 0; i < 2; i++ {
			if err := filesystem.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("MkdirAll(%q) #%d: got error %v, want nil", dir, i, err)
			}
		}
		info, err := filesystem.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(%q): got (%v, %v), want directory", dir, info, err)
		}
	})
}
