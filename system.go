package easypath

import (
	"context"
	"io/fs"

	"go.uber.org/zap"

	"github.com/jmgilman/go/easypath/errors"
	"github.com/jmgilman/go/easypath/internal/exec"
	"github.com/jmgilman/go/easypath/vfs"
)

// CurrentDir returns the working directory relative paths resolve against.
func (p *Paths) CurrentDir() (string, error) {
	wd, err := p.getwd()
	if err != nil {
		return "", errors.FromOS(err, "failed to determine working directory")
	}
	return wd, nil
}

// GetPerms reports what the current user may do with the working directory.
func (p *Paths) GetPerms() (Perms, error) {
	wd, err := p.CurrentDir()
	if err != nil {
		return Perms{}, err
	}
	return p.GetPermsFor(wd)
}

// GetPermsFor reports what the current user may do with path. Filesystems
// that cannot check access are judged by the owner permission bits.
func (p *Paths) GetPermsFor(path string) (Perms, error) {
	abs, err := p.abs(path)
	if err != nil {
		return Perms{}, err
	}
	info, err := p.fs.Stat(abs)
	if err != nil {
		return Perms{}, opError(err, "path does not exist", abs)
	}

	afs, ok := p.fs.(vfs.AccessFS)
	if !ok {
		mode := info.Mode().Perm()
		return Perms{Read: mode&0o400 != 0, Write: mode&0o200 != 0, Execute: mode&0o100 != 0}, nil
	}

	var perms Perms
	checks := []struct {
		mode vfs.AccessMode
		dst  *bool
	}{
		{vfs.AccessRead, &perms.Read},
		{vfs.AccessWrite, &perms.Write},
		{vfs.AccessExecute, &perms.Execute},
	}
	for _, c := range checks {
		granted, err := afs.Access(abs, c.mode)
		if err != nil {
			return Perms{}, opError(err, "failed to check access", abs)
		}
		*c.dst = granted
	}
	return perms, nil
}

// SetPerms grants everyone exactly perms on path. On POSIX systems read,
// write and execute map to 0444, 0222 and 0111 and replace the whole mode.
// On Windows the grant is applied with icacls, and an empty Perms denies all
// access.
func (p *Paths) SetPerms(path string, perms Perms) error {
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	if _, err := p.fs.Stat(abs); err != nil {
		return opError(err, "path does not exist", abs)
	}

	if p.goos == "windows" {
		if err := p.setACL(context.Background(), abs, perms); err != nil {
			return err
		}
	} else {
		mfs, ok := p.fs.(vfs.MetadataFS)
		if !ok {
			return pathError(errors.CodeUnsupported, "filesystem does not support permissions", abs)
		}
		if err := mfs.Chmod(abs, permMode(perms)); err != nil {
			return opError(err, "failed to set permissions", abs)
		}
	}
	p.logger.Info("permissions set", zap.String("path", abs),
		zap.Bool("read", perms.Read), zap.Bool("write", perms.Write), zap.Bool("execute", perms.Execute))
	return nil
}

// permMode converts perms to a mode granting them to owner, group and others.
func permMode(perms Perms) fs.FileMode {
	var mode fs.FileMode
	if perms.Read {
		mode |= 0o444
	}
	if perms.Write {
		mode |= 0o222
	}
	if perms.Execute {
		mode |= 0o111
	}
	return mode
}

// aclRight returns the icacls simple right closest to perms.
func aclRight(perms Perms) string {
	switch {
	case perms.Read && perms.Write && perms.Execute:
		return "F"
	case perms.Read && perms.Write:
		return "M"
	case perms.Write:
		return "W"
	default:
		return "R"
	}
}

// setACL replaces the entries for everyone on path.
func (p *Paths) setACL(ctx context.Context, abs string, perms Perms) error {
	icacls := exec.NewWrapper(p.runner, "icacls")

	var args []string
	if !perms.Read && !perms.Write && !perms.Execute {
		args = []string{abs, "/deny", "everyone:(F)"}
	} else {
		// A leftover deny entry would override the grant.
		if _, err := icacls.Run(ctx, abs, "/remove:d", "everyone"); err != nil {
			p.logger.Debug("icacls deny removal failed", zap.String("path", abs), zap.Error(err))
		}
		args = []string{abs, "/grant:r", "everyone:(" + aclRight(perms) + ")"}
	}

	if _, err := icacls.Run(ctx, args...); err != nil {
		ctxMap := map[string]interface{}{"path": abs}
		var execErr *exec.ExecError
		if errors.As(err, &execErr) {
			ctxMap["exit_code"] = execErr.ExitCode
			ctxMap["stderr"] = execErr.Stderr
		}
		return errors.WrapWithContext(err, errors.CodeExecutionFailed, "failed to set permissions", ctxMap)
	}
	return nil
}

// ListAll lists the files and folders of the working directory.
func (p *Paths) ListAll() (Listing, error) {
	wd, err := p.CurrentDir()
	if err != nil {
		return Listing{}, err
	}
	listing := Listing{Files: []string{}, Folders: []string{}}
	err = p.scan(wd, false, func(e entry) error {
		switch {
		case e.dir:
			listing.Folders = append(listing.Folders, e.name)
		case e.file:
			listing.Files = append(listing.Files, e.name)
		}
		return nil
	})
	if err != nil {
		return Listing{}, err
	}
	return listing, nil
}

// GetDiskUsage reports the capacity of the volume holding path.
func (p *Paths) GetDiskUsage(path string) (DiskUsage, error) {
	abs, err := p.abs(path)
	if err != nil {
		return DiskUsage{}, err
	}
	ufs, ok := p.fs.(vfs.UsageFS)
	if !ok {
		return DiskUsage{}, pathError(errors.CodeUnsupported, "filesystem does not report disk usage", abs)
	}
	u, err := ufs.DiskUsage(abs)
	if err != nil {
		return DiskUsage{}, opError(err, "failed to read disk usage", abs)
	}
	return DiskUsage{Total: u.Total, Used: u.Used, Free: u.Free}, nil
}

// CreateSymlink creates link pointing to target. target is stored as given,
// so a relative target is relative to the folder holding link. An existing
// link, file or folder at link is an error unless WithOverwrite is given.
func (p *Paths) CreateSymlink(target, link string, opts ...Option) error {
	o := p.options(opts)
	abs, err := p.abs(link)
	if err != nil {
		return err
	}
	sfs, ok := p.fs.(vfs.SymlinkFS)
	if !ok {
		return pathError(errors.CodeUnsupported, "filesystem does not support symbolic links", abs)
	}
	if err := p.clearDestination(target, abs, o); err != nil {
		return err
	}
	if err := sfs.Symlink(target, abs); err != nil {
		return moveError(err, "failed to create symbolic link", target, abs)
	}
	p.logger.Info("symbolic link created", zap.String("target", target), zap.String("link", abs))
	return nil
}
