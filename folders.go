package easypath

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/jmgilman/go/easypath/errors"
	"github.com/jmgilman/go/easypath/vfs"
)

// CreateFolder creates path and any missing parents. An existing folder is
// not an error.
func (p *Paths) CreateFolder(path string) error {
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	return p.mkdir(abs, p.options(nil, WithParents(true), WithExistOK(true)))
}

// CreateFolders creates every path, continuing past failures. The returned
// error joins all failures.
func (p *Paths) CreateFolders(paths []string) error {
	var errs []error
	for _, path := range paths {
		if err := p.CreateFolder(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RemoveFolder deletes path and everything below it.
//
// Unless confirmation is disabled (WithConfirm(false), WithForce or
// Config.Confirm) the Prompter is asked first; any answer other than "y"
// returns a CANCELLED error and nothing is removed. WithDryRun logs the
// removal without performing it.
func (p *Paths) RemoveFolder(path string, opts ...Option) error {
	o := p.options(opts)
	abs, err := p.abs(path)
	if err != nil {
		return err
	}

	info, err := p.lstat(abs)
	if err != nil {
		return opError(err, "folder does not exist", abs)
	}
	if !info.IsDir() {
		return pathError(errors.CodeNotADirectory, "path is not a folder", abs)
	}

	if o.confirm && !o.force {
		t, err := p.tallyTree(abs)
		if err != nil {
			return err
		}
		question := fmt.Sprintf("The folder '%s' has %d files and %d folders. Continue y/n:",
			filepath.Base(abs), t.files, t.folders)
		ok, err := p.prompter.Confirm(question)
		if err != nil {
			return errors.WithContext(errors.Wrap(err, errors.CodeCancelled, "confirmation failed"), "path", abs)
		}
		if !ok {
			p.logger.Info("folder removal cancelled", zap.String("path", abs))
			return pathError(errors.CodeCancelled, "folder removal cancelled", abs)
		}
	}

	if o.dryRun {
		p.logger.Info("dry run: folder would be removed", zap.String("path", abs))
		return nil
	}

	if err := p.fs.RemoveAll(abs); err != nil {
		return opError(err, "failed to remove folder", abs)
	}
	p.logger.Info("folder removed", zap.String("path", abs))
	return nil
}

// RemoveFolders calls RemoveFolder for every path with the same options,
// continuing past failures. The returned error joins all failures.
func (p *Paths) RemoveFolders(paths []string, opts ...Option) error {
	var errs []error
	for _, path := range paths {
		if err := p.RemoveFolder(path, opts...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// EmptyFolder removes everything inside path and keeps the folder itself.
func (p *Paths) EmptyFolder(path string) error {
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	if _, err := p.requireDir(abs); err != nil {
		return err
	}
	entries, err := p.fs.ReadDir(abs)
	if err != nil {
		return opError(err, "failed to read folder", abs)
	}
	for _, d := range entries {
		child := filepath.Join(abs, d.Name())
		if err := p.fs.RemoveAll(child); err != nil {
			return opError(err, "failed to remove entry", child)
		}
	}
	p.logger.Info("folder emptied", zap.String("path", abs), zap.Int("removed", len(entries)))
	return nil
}

// ListFolders returns the names of the folders in path. With Recursive every
// folder below path is included.
func (p *Paths) ListFolders(path string, opts ...Option) ([]string, error) {
	return p.ListPaths(path, append(opts, WithFiles(false), WithDirs(true))...)
}

// ListFoldersRecursive is ListFolders with Recursive.
func (p *Paths) ListFoldersRecursive(path string) ([]string, error) {
	return p.ListFolders(path, Recursive())
}

// ListFiles returns the names of the files in path. With Recursive every
// file below path is included.
func (p *Paths) ListFiles(path string, opts ...Option) ([]string, error) {
	return p.ListPaths(path, append(opts, WithFiles(true), WithDirs(false))...)
}

// ListFilesRecursive is ListFiles with Recursive.
func (p *Paths) ListFilesRecursive(path string) ([]string, error) {
	return p.ListFiles(path, Recursive())
}

// ListPaths returns the names of the entries in path, in lexical walk order.
// WithFiles and WithDirs select the kinds included; symbolic links count as
// the kind they point to and broken links are omitted.
func (p *Paths) ListPaths(path string, opts ...Option) ([]string, error) {
	o := p.options(opts)
	abs, err := p.abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := p.requireDir(abs); err != nil {
		return nil, err
	}

	names := []string{}
	err = p.scan(abs, o.recursive, func(e entry) error {
		if (e.file && o.files) || (e.dir && o.dirs) {
			names = append(names, e.name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.logger.Debug("folder listed", zap.String("path", abs), zap.Strings("entries", names))
	return names, nil
}

// FolderExists reports whether path is a folder.
func (p *Paths) FolderExists(path string) (bool, error) {
	abs, err := p.abs(path)
	if err != nil {
		return false, err
	}
	info, err := p.stat(abs)
	if err != nil {
		return false, opError(err, "failed to stat folder", abs)
	}
	exists := info != nil && info.IsDir()
	p.logger.Debug("folder exists", zap.String("path", abs), zap.Bool("exists", exists))
	return exists, nil
}

// IsEmptyDir reports whether path is a folder with no entries. A missing path
// or a file is not an empty folder.
func (p *Paths) IsEmptyDir(path string) (bool, error) {
	abs, err := p.abs(path)
	if err != nil {
		return false, err
	}
	info, err := p.stat(abs)
	if err != nil {
		return false, opError(err, "failed to stat folder", abs)
	}
	if info == nil || !info.IsDir() {
		return false, nil
	}
	entries, err := p.fs.ReadDir(abs)
	if err != nil {
		return false, opError(err, "failed to read folder", abs)
	}
	return len(entries) == 0, nil
}

// CountFiles returns how many files path holds, descending with Recursive.
func (p *Paths) CountFiles(path string, opts ...Option) (int, error) {
	t, err := p.count(path, opts)
	return t.files, err
}

// CountFolders returns how many folders path holds, descending with
// Recursive.
func (p *Paths) CountFolders(path string, opts ...Option) (int, error) {
	t, err := p.count(path, opts)
	return t.folders, err
}

// CountEntries returns how many entries of any kind path holds, descending
// with Recursive.
func (p *Paths) CountEntries(path string, opts ...Option) (int, error) {
	t, err := p.count(path, opts)
	return t.entries, err
}

func (p *Paths) count(path string, opts []Option) (tally, error) {
	o := p.options(opts)
	abs, err := p.abs(path)
	if err != nil {
		return tally{}, err
	}
	if _, err := p.requireDir(abs); err != nil {
		return tally{}, err
	}
	if o.recursive {
		return p.tallyTree(abs)
	}
	var t tally
	err = p.scan(abs, false, func(e entry) error {
		t.add(e)
		return nil
	})
	return t, err
}

// GetFolderSize returns the total size in bytes of the files below path.
func (p *Paths) GetFolderSize(path string) (int64, error) {
	abs, err := p.abs(path)
	if err != nil {
		return 0, err
	}
	if _, err := p.requireDir(abs); err != nil {
		return 0, err
	}
	t, err := p.tallyTree(abs)
	if err != nil {
		return 0, err
	}
	p.logger.Debug("folder size", zap.String("path", abs), zap.Int64("bytes", t.size))
	return t.size, nil
}

// CopyFolder copies the tree at src to dst. dst must not exist unless
// WithOverwrite is given, in which case src is merged into it and files
// present in both are replaced. Permission bits and modification times are
// preserved and symbolic links are copied as the content they point to.
func (p *Paths) CopyFolder(src, dst string, opts ...Option) error {
	o := p.options(opts)
	srcAbs, dstAbs, err := p.absPair(src, dst)
	if err != nil {
		return err
	}
	if _, err := p.requireDir(srcAbs); err != nil {
		return err
	}
	if within(srcAbs, dstAbs) {
		return errors.WithContextMap(errors.New(errors.CodeInvalidInput, "cannot copy a folder into itself"),
			map[string]interface{}{"src": srcAbs, "dst": dstAbs})
	}

	existing, err := p.stat(dstAbs)
	if err != nil {
		return opError(err, "failed to stat destination", dstAbs)
	}
	if existing != nil {
		if !o.overwrite {
			return moveError(fs.ErrExist, "destination folder already exists", srcAbs, dstAbs)
		}
		if !existing.IsDir() {
			return errors.WithContextMap(errors.New(errors.CodeNotADirectory, "destination is not a folder"),
				map[string]interface{}{"src": srcAbs, "dst": dstAbs})
		}
	}

	if err := p.copyTree(srcAbs, dstAbs, 0); err != nil {
		return err
	}
	p.logger.Info("folder copied", zap.String("src", srcAbs), zap.String("dst", dstAbs))
	return nil
}

// MoveFolder moves the tree at src to dst. An existing dst is an error unless
// WithOverwrite is given, which removes it first. Moves across devices fall
// back to copying and removing the source.
func (p *Paths) MoveFolder(src, dst string, opts ...Option) error {
	o := p.options(opts)
	srcAbs, dstAbs, err := p.absPair(src, dst)
	if err != nil {
		return err
	}
	if _, err := p.requireDir(srcAbs); err != nil {
		return err
	}
	if within(srcAbs, dstAbs) {
		return errors.WithContextMap(errors.New(errors.CodeInvalidInput, "cannot move a folder into itself"),
			map[string]interface{}{"src": srcAbs, "dst": dstAbs})
	}
	if within(dstAbs, srcAbs) {
		return errors.WithContextMap(errors.New(errors.CodeInvalidInput, "cannot move a folder over one of its parents"),
			map[string]interface{}{"src": srcAbs, "dst": dstAbs})
	}
	if err := p.clearDestination(srcAbs, dstAbs, o); err != nil {
		return err
	}

	if err := p.fs.Rename(srcAbs, dstAbs); err != nil {
		if !stderrors.Is(err, syscall.EXDEV) {
			return moveError(err, "failed to move folder", srcAbs, dstAbs)
		}
		if err := p.copyTree(srcAbs, dstAbs, 0); err != nil {
			return err
		}
		if err := p.fs.RemoveAll(srcAbs); err != nil {
			return opError(err, "failed to remove moved folder", srcAbs)
		}
	}
	p.logger.Info("folder moved", zap.String("src", srcAbs), zap.String("dst", dstAbs))
	return nil
}

// RenameFolder renames the folder oldPath to newPath, which must not exist.
func (p *Paths) RenameFolder(oldPath, newPath string) error {
	oldAbs, newAbs, err := p.absPair(oldPath, newPath)
	if err != nil {
		return err
	}
	if _, err := p.requireDir(oldAbs); err != nil {
		return err
	}
	if err := p.clearDestination(oldAbs, newAbs, p.options(nil)); err != nil {
		return err
	}
	if err := p.fs.Rename(oldAbs, newAbs); err != nil {
		return moveError(err, "failed to rename folder", oldAbs, newAbs)
	}
	p.logger.Info("folder renamed", zap.String("src", oldAbs), zap.String("dst", newAbs))
	return nil
}

// GetFolderInfo describes the folder at path. A missing path, or one that is
// not a folder, yields a FolderInfo with Exists false and no error.
func (p *Paths) GetFolderInfo(path string) (FolderInfo, error) {
	abs, err := p.abs(path)
	if err != nil {
		return FolderInfo{}, err
	}
	info, err := p.stat(abs)
	if err != nil {
		return FolderInfo{}, opError(err, "failed to stat folder", abs)
	}
	if info == nil || !info.IsDir() {
		return FolderInfo{Path: abs, Subfolders: []string{}}, nil
	}

	t, err := p.tallyTree(abs)
	if err != nil {
		return FolderInfo{}, err
	}
	subfolders := []string{}
	err = p.scan(abs, false, func(e entry) error {
		if e.dir {
			subfolders = append(subfolders, e.name)
		}
		return nil
	})
	if err != nil {
		return FolderInfo{}, err
	}

	fi := FolderInfo{
		Name:        filepath.Base(abs),
		Path:        abs,
		Size:        t.size,
		Exists:      true,
		FileCount:   t.files,
		FolderCount: t.folders,
		Subfolders:  subfolders,
		ModTime:     info.ModTime(),
	}
	p.logger.Debug("folder info", zap.String("path", abs), zap.Int64("size", fi.Size),
		zap.Int("files", fi.FileCount), zap.Int("folders", fi.FolderCount))
	return fi, nil
}

// ReadDirTree returns the absolute paths of every entry at most maxDepth
// levels below path, where the immediate children are at depth 1.
func (p *Paths) ReadDirTree(path string, maxDepth int) ([]string, error) {
	abs, err := p.abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := p.requireDir(abs); err != nil {
		return nil, err
	}
	paths := []string{}
	if maxDepth <= 0 {
		return paths, nil
	}
	err = p.walkTree(abs, maxDepth, func(e entry) error {
		paths = append(paths, e.path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// absPair resolves a source and destination path.
func (p *Paths) absPair(src, dst string) (string, string, error) {
	srcAbs, err := p.abs(src)
	if err != nil {
		return "", "", err
	}
	dstAbs, err := p.abs(dst)
	if err != nil {
		return "", "", err
	}
	return srcAbs, dstAbs, nil
}

// clearDestination makes dst available for a move or rename: it must not
// exist, or with WithOverwrite it is removed. Its parent must exist unless
// WithParents(true) is given.
func (p *Paths) clearDestination(src, dst string, o *options) error {
	info, err := p.lstat(dst)
	switch {
	case err == nil:
		if !o.overwrite {
			return moveError(fs.ErrExist, "destination already exists", src, dst)
		}
		if info.IsDir() {
			err = p.fs.RemoveAll(dst)
		} else {
			err = p.fs.Remove(dst)
		}
		if err != nil {
			return opError(err, "failed to remove destination", dst)
		}
	case !missing(err):
		return opError(err, "failed to stat destination", dst)
	}
	return p.prepareParent(dst, o)
}

// within reports whether path is root or lies below it.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// maxLinkDepth bounds how many symbolic links to folders copyTree follows
// along one branch.
const maxLinkDepth = 40

// copyTree copies the folder src to dst, merging into dst if it exists.
// Folder timestamps are applied after their contents are written.
func (p *Paths) copyTree(src, dst string, links int) error {
	srcInfo, err := p.fs.Stat(src)
	if err != nil {
		return opError(err, "failed to stat folder", src)
	}
	if err := p.fs.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return opError(err, "failed to create folder", dst)
	}

	type dirStamp struct {
		path string
		info fs.FileInfo
	}
	stamps := []dirStamp{{dst, srcInfo}}

	err = p.fs.Walk(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return opError(err, "failed to walk folder", path)
		}
		if path == src {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return opError(err, "failed to relativize path", path)
		}
		target := filepath.Join(dst, rel)

		info, err := p.fs.Stat(path)
		if err != nil {
			return opError(err, "failed to stat entry", path)
		}

		switch {
		case d.Type()&fs.ModeSymlink != 0 && info.IsDir():
			if links >= maxLinkDepth {
				return pathError(errors.CodeInvalidInput, "too many levels of symbolic links", path)
			}
			return p.copyTree(path, target, links+1)
		case info.IsDir():
			if err := p.fs.MkdirAll(target, info.Mode().Perm()); err != nil {
				return opError(err, "failed to create folder", target)
			}
			stamps = append(stamps, dirStamp{target, info})
			return nil
		default:
			return p.copyFileData(path, target, info, false)
		}
	})
	if err != nil {
		return err
	}

	mfs, ok := p.fs.(vfs.MetadataFS)
	if !ok {
		return nil
	}
	for i := len(stamps) - 1; i >= 0; i-- {
		s := stamps[i]
		if err := mfs.Chmod(s.path, s.info.Mode().Perm()); err != nil {
			return opError(err, "failed to copy folder mode", s.path)
		}
		if err := mfs.Chtimes(s.path, s.info.ModTime(), s.info.ModTime()); err != nil {
			return opError(err, "failed to copy folder times", s.path)
		}
	}
	return nil
}
