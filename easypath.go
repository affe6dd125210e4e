package easypath

import (
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jmgilman/go/easypath/internal/exec"
	"github.com/jmgilman/go/easypath/vfs"
)

// Paths runs filesystem operations against one filesystem with one set of
// defaults. The zero value is not usable; construct with New.
//
// A Paths holds no mutable state of its own and is safe for concurrent use.
// Relative paths are resolved against its working directory at call time.
type Paths struct {
	fs       vfs.FS
	cfg      Config
	logger   *zap.Logger
	prompter Prompter
	runner   exec.Runner
	getwd    func() (string, error)
	goos     string
}

// PathsOption configures a Paths at construction.
type PathsOption func(*Paths)

// WithFS selects the filesystem operations run against. The default is the
// host filesystem.
func WithFS(fsys vfs.FS) PathsOption {
	return func(p *Paths) {
		p.fs = fsys
	}
}

// WithConfig replaces the defaults loaded from the environment.
func WithConfig(cfg Config) PathsOption {
	return func(p *Paths) {
		p.cfg = cfg
	}
}

// WithLogger sets the logger. It takes precedence over Config.Log.
func WithLogger(logger *zap.Logger) PathsOption {
	return func(p *Paths) {
		p.logger = logger
	}
}

// WithPrompter sets where RemoveFolder asks for confirmation. The default
// reads a line from standard input.
func WithPrompter(prompter Prompter) PathsOption {
	return func(p *Paths) {
		p.prompter = prompter
	}
}

// WithWorkingDir fixes the directory relative paths resolve against instead
// of the process working directory.
func WithWorkingDir(dir string) PathsOption {
	return func(p *Paths) {
		dir = filepath.Clean(dir)
		p.getwd = func() (string, error) { return dir, nil }
	}
}

// WithRunner sets the command runner used to apply Windows ACLs.
func WithRunner(runner exec.Runner) PathsOption {
	return func(p *Paths) {
		p.runner = runner
	}
}

// New creates a Paths. Without options it operates on the host filesystem
// using configuration loaded from EASYPATH_* environment variables.
func New(opts ...PathsOption) *Paths {
	p := &Paths{
		cfg:  LoadConfigOrDefault(),
		goos: runtime.GOOS,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.fs == nil {
		p.fs = vfs.NewLocal()
	}
	if p.getwd == nil {
		if p.fs.Type() == vfs.TypeLocal {
			p.getwd = os.Getwd
		} else {
			root := string(filepath.Separator)
			p.getwd = func() (string, error) { return root, nil }
		}
	}
	if p.logger == nil {
		logger, err := newLogger(p.cfg.Log)
		if err != nil {
			logger = zap.NewNop()
		}
		p.logger = logger
	}
	if p.prompter == nil {
		p.prompter = NewStdinPrompter()
	}
	if p.runner == nil {
		p.runner = exec.New(exec.WithTimeout(p.cfg.CommandTimeout))
	}
	return p
}

// FS returns the filesystem p operates on.
func (p *Paths) FS() vfs.FS {
	return p.fs
}

// Config returns the defaults p was built with.
func (p *Paths) Config() Config {
	return p.cfg
}

var defaultPaths atomic.Pointer[Paths]

// Default returns the Paths behind the package-level functions, creating it
// with New on first use.
func Default() *Paths {
	if p := defaultPaths.Load(); p != nil {
		return p
	}
	defaultPaths.CompareAndSwap(nil, New())
	return defaultPaths.Load()
}

// SetDefault replaces the Paths behind the package-level functions.
// Passing nil restores lazy construction with New.
func SetDefault(p *Paths) {
	defaultPaths.Store(p)
}

// abs makes path absolute against the working directory and cleans it.
func (p *Paths) abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd, err := p.getwd()
	if err != nil {
		return "", opError(err, "failed to determine working directory", path)
	}
	return filepath.Join(wd, path), nil
}
