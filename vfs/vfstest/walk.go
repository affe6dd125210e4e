package vfstest

import (
	"io/fs"
	"path/filepath"
	"testing"
)

// TestWalkFS tests lexical traversal, SkipDir and SkipAll.
func TestWalkFS(t *testing.T, newFS NewFunc) {
	filesystem, root := newFS(t)
	base := filepath.Join(root, "walk")
	mustWrite(t, filesystem, filepath.Join(base, "b.txt"), "b")
	mustWrite(t, filesystem, filepath.Join(base, "a", "x.txt"), "x")
	mustWrite(t, filesystem, filepath.Join(base, "c", "y.txt"), "y")

	rel := func(path string) string {
		r, err := filepath.Rel(base, path)
		if err != nil {
			t.Fatalf("Rel(%q): %v", path, err)
		}
		return filepath.ToSlash(r)
	}

	t.Run("Order", func(t *testing.T) {
		var visited []string
		err := filesystem.Walk(base, func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, rel(path))
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%q): got error %v, want nil", base, err)
		}
		want := []string{".", "a", "a/x.txt", "b.txt", "c", "c/y.txt"}
		if len(visited) != len(want) {
			t.Fatalf("Walk(%q): visited %v, want %v", base, visited, want)
		}
		for i := range want {
			if visited[i] != want[i] {
				t.Errorf("Walk(%q)[%d]: got %q, want %q", base, i, visited[i], want[i])
			}
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		var visited []string
		err := filesystem.Walk(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "a" {
				return fs.SkipDir
			}
			visited = append(visited, rel(path))
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%q): got error %v, want nil", base, err)
		}
		for _, v := range visited {
			if v == "a/x.txt" {
				t.Errorf("Walk(%q): visited %q inside skipped directory", base, v)
			}
		}
		if len(visited) != 4 {
			t.Errorf("Walk(%q): visited %v, want 4 entries", base, visited)
		}
	})

	t.Run("SkipAll", func(t *testing.T) {
		count := 0
		err := filesystem.Walk(base, func(_ string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			count++
			if count == 2 {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%q): got error %v, want nil", base, err)
		}
		if count != 2 {
			t.Errorf("Walk(%q): visited %d entries after SkipAll, want 2", base, count)
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		missing := filepath.Join(root, "nowhere")
		var gotErr error
		_ = filesystem.Walk(missing, func(_ string, _ fs.DirEntry, err error) error {
			gotErr = err
			return err
		})
		if gotErr == nil {
			t.Errorf("Walk(%q): walkFn received nil error, want fs.ErrNotExist", missing)
		}
	})
}
