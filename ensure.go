package easypath

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jmgilman/go/easypath/errors"
	"github.com/jmgilman/go/easypath/vfs"
)

// EnsureDir makes sure path is a folder and returns its absolute path.
// Missing parents are created and an existing folder is accepted unless the
// caller passes WithParents(false) or WithExistOK(false).
func (p *Paths) EnsureDir(path string, opts ...Option) (string, error) {
	o := p.options(opts, WithParents(true), WithExistOK(true))
	abs, err := p.abs(path)
	if err != nil {
		return "", err
	}
	if err := p.mkdir(abs, o); err != nil {
		return "", err
	}
	return abs, nil
}

// EnsureParentDir makes sure the folder containing path exists and returns
// it.
func (p *Paths) EnsureParentDir(path string, opts ...Option) (string, error) {
	abs, err := p.abs(path)
	if err != nil {
		return "", err
	}
	return p.EnsureDir(filepath.Dir(abs), opts...)
}

// EnsureFile makes sure path is a file, creating it empty along with its
// parents if needed, and returns its absolute path. An existing file has its
// modification time updated.
func (p *Paths) EnsureFile(path string, opts ...Option) (string, error) {
	o := p.options(opts, WithExistOK(true), WithParents(true))
	abs, err := p.abs(path)
	if err != nil {
		return "", err
	}
	if err := p.touch(abs, o); err != nil {
		return "", err
	}
	return abs, nil
}

// TouchFile creates path if it does not exist and otherwise updates its
// modification time. Parents are not created unless WithParents(true) is
// given.
func (p *Paths) TouchFile(path string, opts ...Option) error {
	o := p.options(opts, WithExistOK(true))
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	if err := p.touch(abs, o); err != nil {
		return err
	}
	p.logger.Debug("file touched", zap.String("path", abs))
	return nil
}

// mkdir creates abs honouring the parents and existOK options.
func (p *Paths) mkdir(abs string, o *options) error {
	info, err := p.stat(abs)
	if err != nil {
		return opError(err, "failed to stat folder", abs)
	}
	if info != nil {
		if !info.IsDir() {
			return pathError(errors.CodeAlreadyExists, "path exists and is not a folder", abs)
		}
		if !o.existOK {
			return pathError(errors.CodeAlreadyExists, "folder already exists", abs)
		}
		return nil
	}

	if o.parents {
		err = p.fs.MkdirAll(abs, o.dirPerm)
	} else {
		err = p.fs.Mkdir(abs, o.dirPerm)
	}
	if err != nil {
		return opError(err, "failed to create folder", abs)
	}
	p.logger.Debug("folder created", zap.String("path", abs))
	return nil
}

// prepareParent creates or verifies the parent folder of abs before a file
// is written there.
func (p *Paths) prepareParent(abs string, o *options) error {
	parent := filepath.Dir(abs)
	if o.parents {
		if err := p.fs.MkdirAll(parent, o.dirPerm); err != nil {
			return opError(err, "failed to create parent folder", parent)
		}
		return nil
	}
	info, err := p.fs.Stat(parent)
	if err != nil {
		return opError(err, "parent folder does not exist", abs)
	}
	if !info.IsDir() {
		return pathError(errors.CodeNotADirectory, "parent is not a folder", abs)
	}
	return nil
}

// touch creates abs or refreshes its timestamps.
func (p *Paths) touch(abs string, o *options) error {
	info, err := p.stat(abs)
	if err != nil {
		return opError(err, "failed to stat file", abs)
	}
	if info != nil {
		if !o.existOK {
			return pathError(errors.CodeAlreadyExists, "file already exists", abs)
		}
		if mfs, ok := p.fs.(vfs.MetadataFS); ok {
			now := time.Now()
			if err := mfs.Chtimes(abs, now, now); err != nil {
				return opError(err, "failed to update file times", abs)
			}
		}
		return nil
	}

	if err := p.prepareParent(abs, o); err != nil {
		return err
	}
	f, err := p.fs.OpenFile(abs, os.O_WRONLY|os.O_CREATE, o.perm)
	if err != nil {
		return opError(err, "failed to create file", abs)
	}
	if err := f.Close(); err != nil {
		return opError(err, "failed to close file", abs)
	}
	return nil
}
