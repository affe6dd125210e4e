package easypath

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/jmgilman/go/easypath/errors"
)

// GlobPaths returns the names of the entries below path whose slash-separated
// path relative to path matches pattern. "*" stays within one component and
// "**" spans any number of them, so "*.txt" matches only children while
// "**/*.txt" matches at every depth. Symbolic links to folders are not
// descended.
func (p *Paths) GlobPaths(path, pattern string) ([]string, error) {
	return p.glob(path, pattern, false)
}

// RglobPaths is GlobPaths with pattern matched at every depth.
func (p *Paths) RglobPaths(path, pattern string) ([]string, error) {
	return p.glob(path, "**/"+pattern, false)
}

// FindFilesByExtension returns the names of the files below path whose name
// ends in ext. A missing leading dot is added.
func (p *Paths) FindFilesByExtension(path, ext string) ([]string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	abs, err := p.abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := p.requireDir(abs); err != nil {
		return nil, err
	}

	names := []string{}
	err = p.walkTree(abs, -1, func(e entry) error {
		if e.file && strings.HasSuffix(e.name, ext) {
			names = append(names, e.name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.logger.Debug("files found", zap.String("path", abs), zap.String("extension", ext), zap.Int("count", len(names)))
	return names, nil
}

// FindFilesByName returns the names of the files below path whose name
// matches name, which may itself be a pattern such as "config.*".
func (p *Paths) FindFilesByName(path, name string) ([]string, error) {
	return p.glob(path, "**/"+name, true)
}

func (p *Paths) glob(path, pattern string, filesOnly bool) ([]string, error) {
	abs, err := p.abs(path)
	if err != nil {
		return nil, err
	}
	if err := checkPattern(pattern); err != nil {
		return nil, errors.WithContext(err, "path", abs)
	}
	if _, err := p.requireDir(abs); err != nil {
		return nil, err
	}

	maxDepth := -1
	if !strings.Contains(pattern, "**") {
		maxDepth = strings.Count(pattern, "/") + 1
	}

	names := []string{}
	err = p.walkTree(abs, maxDepth, func(e entry) error {
		if filesOnly && !e.file {
			return nil
		}
		rel, err := filepath.Rel(abs, e.path)
		if err != nil {
			return opError(err, "failed to relativize path", e.path)
		}
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return errors.WithContext(errors.Wrap(err, errors.CodeInvalidInput, "invalid pattern"), "pattern", pattern)
		}
		if ok {
			names = append(names, e.name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.logger.Debug("glob matched", zap.String("path", abs), zap.String("pattern", pattern), zap.Int("count", len(names)))
	return names, nil
}

// checkPattern rejects empty, absolute and malformed patterns.
func checkPattern(pattern string) error {
	switch {
	case pattern == "" || pattern == "**/":
		return errors.New(errors.CodeInvalidInput, "empty pattern")
	case strings.HasPrefix(pattern, "/") || filepath.IsAbs(pattern):
		return errors.WithContext(errors.New(errors.CodeInvalidInput, "pattern must be relative"), "pattern", pattern)
	case !doublestar.ValidatePattern(pattern):
		return errors.WithContext(errors.New(errors.CodeInvalidInput, "invalid pattern"), "pattern", pattern)
	}
	return nil
}
