package easypath

import (
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/jmgilman/go/easypath/errors"
	"github.com/jmgilman/go/easypath/vfs"
)

// RemoveFile deletes the file at path. A missing file is an error unless
// WithMissingOK is given. Folders are never removed, even with
// WithMissingOK; a symbolic link is removed itself unless it points to a
// folder.
func (p *Paths) RemoveFile(path string, opts ...Option) error {
	o := p.options(opts)
	abs, err := p.abs(path)
	if err != nil {
		return err
	}

	info, err := p.lstat(abs)
	if err != nil {
		if missing(err) && o.missingOK {
			return nil
		}
		return opError(err, "file does not exist", abs)
	}
	isDir := info.IsDir()
	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := p.stat(abs)
		if err != nil {
			return opError(err, "failed to stat link target", abs)
		}
		isDir = target != nil && target.IsDir()
	}
	if isDir {
		return pathError(errors.CodeNotAFile, "path is a folder", abs)
	}

	if err := p.fs.Remove(abs); err != nil {
		return opError(err, "failed to remove file", abs)
	}
	p.logger.Info("file removed", zap.String("path", abs))
	return nil
}

// FileExists reports whether path is a regular file, following symbolic
// links.
func (p *Paths) FileExists(path string) (bool, error) {
	abs, err := p.abs(path)
	if err != nil {
		return false, err
	}
	info, err := p.stat(abs)
	if err != nil {
		return false, opError(err, "failed to stat file", abs)
	}
	exists := info != nil && info.Mode().IsRegular()
	p.logger.Debug("file exists", zap.String("path", abs), zap.Bool("exists", exists))
	return exists, nil
}

// RenameFile renames the file oldPath to newPath, which must not exist.
func (p *Paths) RenameFile(oldPath, newPath string) error {
	oldAbs, newAbs, err := p.absPair(oldPath, newPath)
	if err != nil {
		return err
	}
	if _, err := p.requireFile(oldAbs); err != nil {
		return err
	}
	if err := p.clearDestination(oldAbs, newAbs, p.options(nil)); err != nil {
		return err
	}
	if err := p.fs.Rename(oldAbs, newAbs); err != nil {
		return moveError(err, "failed to rename file", oldAbs, newAbs)
	}
	p.logger.Info("file renamed", zap.String("src", oldAbs), zap.String("dst", newAbs))
	return nil
}

// MoveFile moves the file src to dst. An existing dst is an error unless
// WithOverwrite is given; a folder at dst is never replaced. Moves across
// devices fall back to copying and removing the source.
func (p *Paths) MoveFile(src, dst string, opts ...Option) error {
	o := p.options(opts)
	srcAbs, dstAbs, err := p.absPair(src, dst)
	if err != nil {
		return err
	}
	info, err := p.requireFile(srcAbs)
	if err != nil {
		return err
	}
	if srcAbs == dstAbs {
		return errors.WithContextMap(errors.New(errors.CodeInvalidInput, "cannot move a file onto itself"),
			map[string]interface{}{"src": srcAbs, "dst": dstAbs})
	}
	if err := p.fileDestination(srcAbs, dstAbs, o); err != nil {
		return err
	}

	if err := p.fs.Rename(srcAbs, dstAbs); err != nil {
		if !stderrors.Is(err, syscall.EXDEV) {
			return moveError(err, "failed to move file", srcAbs, dstAbs)
		}
		if err := p.copyFileData(srcAbs, dstAbs, info, o.atomic); err != nil {
			return err
		}
		if err := p.fs.Remove(srcAbs); err != nil {
			return opError(err, "failed to remove moved file", srcAbs)
		}
	}
	p.logger.Info("file moved", zap.String("src", srcAbs), zap.String("dst", dstAbs))
	return nil
}

// CopyFile copies the file src to dst along with its permission bits and
// modification time. An existing dst is an error unless WithOverwrite is
// given. With WithAtomic the copy is staged in a temporary file first.
func (p *Paths) CopyFile(src, dst string, opts ...Option) error {
	o := p.options(opts)
	srcAbs, dstAbs, err := p.absPair(src, dst)
	if err != nil {
		return err
	}
	info, err := p.requireFile(srcAbs)
	if err != nil {
		return err
	}
	if srcAbs == dstAbs {
		return moveError(fs.ErrExist, "source and destination are the same file", srcAbs, dstAbs)
	}
	if err := p.fileDestination(srcAbs, dstAbs, o); err != nil {
		return err
	}
	if err := p.copyFileData(srcAbs, dstAbs, info, o.atomic); err != nil {
		return err
	}
	p.logger.Info("file copied", zap.String("src", srcAbs), zap.String("dst", dstAbs))
	return nil
}

// GetFileSize returns the size in bytes of the file at path.
func (p *Paths) GetFileSize(path string) (int64, error) {
	abs, err := p.abs(path)
	if err != nil {
		return 0, err
	}
	info, err := p.requireFile(abs)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// GetFileInfo describes the file at path. A missing path, or one that is not
// a regular file, yields a FileInfo with Exists false and no error.
func (p *Paths) GetFileInfo(path string) (FileInfo, error) {
	abs, err := p.abs(path)
	if err != nil {
		return FileInfo{}, err
	}
	info, err := p.stat(abs)
	if err != nil {
		return FileInfo{}, opError(err, "failed to stat file", abs)
	}
	if info == nil || !info.Mode().IsRegular() {
		return FileInfo{Path: abs}, nil
	}

	mime, err := p.detectMIME(abs)
	if err != nil {
		return FileInfo{}, err
	}
	name := filepath.Base(abs)
	fi := FileInfo{
		Name:      name,
		Path:      abs,
		Size:      info.Size(),
		Exists:    true,
		Extension: GetExtension(name),
		Stem:      GetStem(name),
		ModTime:   info.ModTime(),
		Mode:      info.Mode(),
		MimeType:  mime,
	}
	p.logger.Debug("file info", zap.String("path", abs), zap.Int64("size", fi.Size), zap.String("mime", mime))
	return fi, nil
}

// DetectMIME returns the media type of the file at path judged by its
// content, for example "text/plain; charset=utf-8" or "image/png".
func (p *Paths) DetectMIME(path string) (string, error) {
	abs, err := p.abs(path)
	if err != nil {
		return "", err
	}
	if _, err := p.requireFile(abs); err != nil {
		return "", err
	}
	return p.detectMIME(abs)
}

func (p *Paths) detectMIME(abs string) (string, error) {
	f, err := p.fs.Open(abs)
	if err != nil {
		return "", opError(err, "failed to open file", abs)
	}
	defer func() { _ = f.Close() }()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", opError(err, "failed to detect media type", abs)
	}
	return mt.String(), nil
}

// fileDestination makes dst available for a file copy or move.
func (p *Paths) fileDestination(src, dst string, o *options) error {
	info, err := p.stat(dst)
	if err != nil {
		return opError(err, "failed to stat destination", dst)
	}
	if info != nil {
		if !o.overwrite {
			return moveError(fs.ErrExist, "destination file already exists", src, dst)
		}
		if info.IsDir() {
			return errors.WithContextMap(errors.New(errors.CodeNotAFile, "destination is a folder"),
				map[string]interface{}{"src": src, "dst": dst})
		}
		if err := p.fs.Remove(dst); err != nil {
			return opError(err, "failed to remove destination", dst)
		}
	}
	return p.prepareParent(dst, o)
}

// copyFileData copies the contents, permission bits and modification time of
// src to dst. With staged set and a filesystem offering temporary files, the
// data is written to a temporary file in dst's folder and renamed into place.
func (p *Paths) copyFileData(src, dst string, info fs.FileInfo, staged bool) error {
	in, err := p.fs.Open(src)
	if err != nil {
		return opError(err, "failed to open file", src)
	}
	defer func() { _ = in.Close() }()

	target := dst
	tfs, useTemp := p.fs.(vfs.TempFS)
	useTemp = useTemp && staged
	if useTemp {
		tmp, err := tfs.TempFile(filepath.Dir(dst), "."+filepath.Base(dst)+".")
		if err != nil {
			return opError(err, "failed to create temporary file", dst)
		}
		target = tmp.Name()
		_, err = io.Copy(tmp, in)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = p.fs.Remove(target)
			return opError(err, "failed to copy file", dst)
		}
	} else if err := p.copyStream(target, in, info.Mode().Perm()); err != nil {
		return err
	}

	if mfs, ok := p.fs.(vfs.MetadataFS); ok {
		if err := mfs.Chmod(target, info.Mode().Perm()); err != nil {
			return opError(err, "failed to copy file mode", dst)
		}
		if err := mfs.Chtimes(target, info.ModTime(), info.ModTime()); err != nil {
			return opError(err, "failed to copy file times", dst)
		}
	}

	if useTemp {
		if err := p.fs.Rename(target, dst); err != nil {
			_ = p.fs.Remove(target)
			return moveError(err, "failed to replace file", target, dst)
		}
	}
	return nil
}

