package easypath

import (
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/easypath/errors"
	"github.com/jmgilman/go/easypath/vfs"
)

// The functions in this file work on path strings alone and never touch a
// filesystem, except where a Paths method says otherwise.

const separator = string(filepath.Separator)

// GetName returns the final component of path, or "" for a root or empty
// path. Trailing separators are ignored.
func GetName(path string) string {
	cleaned := filepath.Clean(path)
	rest := cleaned[len(filepath.VolumeName(cleaned)):]
	if rest == "" || rest == "." || rest == separator {
		return ""
	}
	return filepath.Base(cleaned)
}

// suffixAt returns the index of the extension dot in name, or -1. A leading
// dot or a trailing one does not start an extension.
func suffixAt(name string) int {
	i := strings.LastIndex(name, ".")
	if i > 0 && i < len(name)-1 {
		return i
	}
	return -1
}

// GetExtension returns the final suffix of path's name including the dot:
// ".gz" for "archive.tar.gz", "" for ".bashrc" or "file.".
func GetExtension(path string) string {
	name := GetName(path)
	if i := suffixAt(name); i >= 0 {
		return name[i:]
	}
	return ""
}

// GetStem returns path's name without its final suffix.
func GetStem(path string) string {
	name := GetName(path)
	if i := suffixAt(name); i >= 0 {
		return name[:i]
	}
	return name
}

// StripExtension returns path's name without its final suffix.
func StripExtension(path string) string {
	return GetStem(path)
}

// ChangeExtension returns path with the final suffix of its name replaced by
// ext. A missing leading dot is added and an empty ext removes the suffix.
// Paths without a name are returned unchanged.
func ChangeExtension(path, ext string) string {
	cleaned := filepath.Clean(path)
	name := GetName(cleaned)
	if name == "" {
		return path
	}
	if ext == "." {
		ext = ""
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(cleaned, GetExtension(name)) + ext
}

// EnsureExtension returns path with ext as its final suffix, changing it
// only when it differs.
func EnsureExtension(path, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if GetName(path) == "" || GetExtension(path) == ext {
		return path
	}
	return ChangeExtension(path, ext)
}

// GetParent returns the folder containing path: "." for a bare name and the
// root for the root itself. Trailing separators are ignored.
func GetParent(path string) string {
	return filepath.Dir(filepath.Clean(path))
}

// GetDrive returns the volume name of path, such as "C:" or
// `\\server\share` on Windows. It is always "" elsewhere.
func GetDrive(path string) string {
	return filepath.VolumeName(path)
}

// PathJoin joins parts with the separator. An absolute part discards
// everything before it.
func PathJoin(parts ...string) string {
	joined := ""
	for _, part := range parts {
		if filepath.IsAbs(part) || (joined != "" && filepath.VolumeName(part) != "") {
			joined = part
			continue
		}
		joined = filepath.Join(joined, part)
	}
	if joined == "" {
		return ""
	}
	return filepath.Clean(joined)
}

// PathSplit returns the parent and name of path.
func PathSplit(path string) (parent, name string) {
	return GetParent(path), GetName(path)
}

// SplitExt returns the stem and extension of path's name.
func SplitExt(path string) (stem, ext string) {
	return GetStem(path), GetExtension(path)
}

// PathParts returns the components of path. An absolute path starts with its
// anchor, the volume name followed by a separator.
func PathParts(path string) []string {
	cleaned := filepath.Clean(path)
	vol := filepath.VolumeName(cleaned)
	rest := cleaned[len(vol):]

	parts := []string{}
	switch {
	case strings.HasPrefix(rest, separator):
		parts = append(parts, vol+separator)
		rest = strings.TrimLeft(rest, separator)
	case vol != "":
		parts = append(parts, vol)
	}
	for _, c := range strings.Split(rest, separator) {
		if c != "" && c != "." {
			parts = append(parts, c)
		}
	}
	return parts
}

// AsPosixPath returns path cleaned and with forward slashes.
func AsPosixPath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// ExpandPath replaces a leading "~" with the current user's home folder and
// "~name" with that user's.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	head, tail := path, ""
	if i := strings.IndexAny(path, `/`+separator); i >= 0 {
		head, tail = path[:i], path[i:]
	}

	var home string
	if head == "~" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", errors.WithContext(errors.Wrap(err, errors.CodeNotFound, "failed to determine home folder"), "path", path)
		}
		home = h
	} else {
		u, err := user.Lookup(head[1:])
		if err != nil {
			return "", errors.WithContext(errors.Wrap(err, errors.CodeNotFound, "unknown user"), "path", path)
		}
		home = u.HomeDir
	}
	return filepath.Clean(home + tail), nil
}

// AbsolutePath makes path absolute against the working directory without
// resolving symbolic links.
func (p *Paths) AbsolutePath(path string) (string, error) {
	return p.abs(path)
}

// maxLinkHops bounds how many symbolic links ResolvePath follows.
const maxLinkHops = 255

// ResolvePath makes path absolute and resolves every symbolic link in it.
// A ".." component applies to the resolved prefix, so "link/.." is the
// parent of the link's target. Components that do not exist are kept as
// written.
func (p *Paths) ResolvePath(path string) (string, error) {
	raw := path
	if !filepath.IsAbs(path) {
		wd, err := p.getwd()
		if err != nil {
			return "", opError(err, "failed to determine working directory", path)
		}
		raw = wd + separator + path
	}
	sfs, ok := p.fs.(vfs.SymlinkFS)
	if !ok {
		return filepath.Clean(raw), nil
	}

	vol := filepath.VolumeName(raw)
	resolved := vol + separator
	comps := splitComponents(raw[len(vol):])
	hops := 0
	for len(comps) > 0 {
		comp := comps[0]
		comps = comps[1:]
		switch comp {
		case ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, comp)
		info, err := p.lstat(next)
		if err != nil {
			if missing(err) {
				return filepath.Join(append([]string{next}, comps...)...), nil
			}
			return "", opError(err, "failed to stat path", next)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", pathError(errors.CodeInvalidInput, "too many levels of symbolic links", filepath.Clean(raw))
		}
		target, err := sfs.Readlink(next)
		if err != nil {
			return "", opError(err, "failed to read link", next)
		}
		tvol := filepath.VolumeName(target)
		if filepath.IsAbs(target) {
			resolved = tvol + separator
		}
		comps = append(splitComponents(target[len(tvol):]), comps...)
	}
	return resolved, nil
}

func splitComponents(path string) []string {
	var comps []string
	for _, c := range strings.Split(path, separator) {
		if c != "" {
			comps = append(comps, c)
		}
	}
	return comps
}

// RelativePath returns path relative to start, which defaults to the working
// directory when empty. path must lie under start.
func (p *Paths) RelativePath(path, start string) (string, error) {
	abs, err := p.abs(path)
	if err != nil {
		return "", err
	}
	if start == "" {
		start = "."
	}
	base, err := p.abs(start)
	if err != nil {
		return "", err
	}
	if !within(base, abs) {
		return "", errors.WithContextMap(errors.New(errors.CodeInvalidInput, "path is not under start"),
			map[string]interface{}{"path": abs, "start": base})
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return "", errors.WithContextMap(errors.Wrap(err, errors.CodeInvalidInput, "failed to relativize path"),
			map[string]interface{}{"path": abs, "start": base})
	}
	return rel, nil
}

// AsURI returns the file URI of path after resolving it, for example
// "file:///tmp/a%20b.txt".
func (p *Paths) AsURI(path string) (string, error) {
	resolved, err := p.ResolvePath(path)
	if err != nil {
		return "", err
	}
	slashed := filepath.ToSlash(resolved)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String(), nil
}
