package easypath

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/jmgilman/go/easypath/errors"
	"github.com/jmgilman/go/easypath/vfs"
)

// entry describes one directory entry with symbolic links resolved: a link
// to a folder is a folder and a broken link is neither.
type entry struct {
	path  string
	name  string
	depth int
	dir   bool
	file  bool
	size  int64
}

// missing reports whether err means nothing exists at the path, including
// the case where a parent component is a regular file.
func missing(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR)
}

// lstat describes name without following a final symbolic link when the
// filesystem supports it.
func (p *Paths) lstat(name string) (fs.FileInfo, error) {
	if l, ok := p.fs.(interface {
		Lstat(string) (fs.FileInfo, error)
	}); ok {
		return l.Lstat(name)
	}
	return p.fs.Stat(name)
}

// stat is Stat that reports a missing path as a nil FileInfo and nil error.
func (p *Paths) stat(name string) (fs.FileInfo, error) {
	info, err := p.fs.Stat(name)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// requireDir fails unless name is an existing folder.
func (p *Paths) requireDir(name string) (fs.FileInfo, error) {
	info, err := p.fs.Stat(name)
	if err != nil {
		return nil, opError(err, "folder does not exist", name)
	}
	if !info.IsDir() {
		return nil, pathError(errors.CodeNotADirectory, "path is not a folder", name)
	}
	return info, nil
}

// requireFile fails unless name is an existing regular file.
func (p *Paths) requireFile(name string) (fs.FileInfo, error) {
	info, err := p.fs.Stat(name)
	if err != nil {
		return nil, opError(err, "file does not exist", name)
	}
	if !info.Mode().IsRegular() {
		return nil, pathError(errors.CodeNotAFile, "path is not a file", name)
	}
	return info, nil
}

// resolve builds an entry for path, following a symbolic link.
func (p *Paths) resolve(path string, d fs.DirEntry) (entry, error) {
	e := entry{path: path, name: d.Name()}

	var info fs.FileInfo
	var err error
	if d.Type()&fs.ModeSymlink != 0 {
		info, err = p.stat(path)
		if err != nil {
			return e, opError(err, "failed to stat entry", path)
		}
		if info == nil {
			return e, nil
		}
	} else {
		info, err = d.Info()
		if err != nil {
			if missing(err) {
				return e, nil
			}
			return e, opError(err, "failed to stat entry", path)
		}
	}

	e.dir = info.IsDir()
	e.file = info.Mode().IsRegular()
	if e.file {
		e.size = info.Size()
	}
	return e, nil
}

// scan calls fn for every entry below root in lexical order. Without
// recursive only the immediate children are visited. root must be a folder.
func (p *Paths) scan(root string, recursive bool, fn func(entry) error) error {
	if !recursive {
		entries, err := p.fs.ReadDir(root)
		if err != nil {
			return opError(err, "failed to read folder", root)
		}
		for _, d := range entries {
			e, err := p.resolve(filepath.Join(root, d.Name()), d)
			if err != nil {
				return err
			}
			e.depth = 1
			if err := fn(e); err != nil {
				return err
			}
		}
		return nil
	}

	return p.walkTree(root, -1, fn)
}

// walkTree visits entries below root down to maxDepth (unbounded when
// negative), in lexical order.
func (p *Paths) walkTree(root string, maxDepth int, fn func(entry) error) error {
	var cbErr error
	err := p.fs.Walk(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return opError(err, "failed to walk folder", path)
		}
		if path == root {
			return nil
		}
		e, err := p.resolve(path, d)
		if err != nil {
			return err
		}
		e.depth = depthBelow(root, path)
		if err := fn(e); err != nil {
			cbErr = err
			return fs.SkipAll
		}
		if d.IsDir() && maxDepth >= 0 && e.depth >= maxDepth {
			return fs.SkipDir
		}
		return nil
	})
	if cbErr != nil {
		return cbErr
	}
	return err
}

// depthBelow returns how many components path has below root.
func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	depth := 1
	for _, c := range rel {
		if c == filepath.Separator {
			depth++
		}
	}
	return depth
}

// tally summarises the tree below root.
type tally struct {
	files   int
	folders int
	entries int
	size    int64
}

func (t *tally) add(e entry) {
	t.entries++
	switch {
	case e.dir:
		t.folders++
	case e.file:
		t.files++
		t.size += e.size
	}
}

// tallyTree counts every entry below root. Filesystems that walk with
// several workers are used in parallel since order does not matter.
func (p *Paths) tallyTree(root string) (tally, error) {
	var t tally

	cw, ok := p.fs.(vfs.ConcurrentWalkFS)
	if !ok {
		err := p.walkTree(root, -1, func(e entry) error {
			t.add(e)
			return nil
		})
		return t, err
	}

	var mu sync.Mutex
	err := cw.WalkConcurrent(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return opError(err, "failed to walk folder", path)
		}
		if path == root {
			return nil
		}
		e, err := p.resolve(path, d)
		if err != nil {
			return err
		}
		mu.Lock()
		t.add(e)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return tally{}, err
	}
	return t, nil
}
