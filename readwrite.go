package easypath

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jmgilman/go/easypath/errors"
	"github.com/jmgilman/go/easypath/vfs"
)

// ReadBytes returns the contents of the file at path.
func (p *Paths) ReadBytes(path string) ([]byte, error) {
	abs, err := p.abs(path)
	if err != nil {
		return nil, err
	}
	return p.readFile(abs)
}

// WriteBytes replaces the contents of the file at path with data, creating
// the file and its parents as needed.
func (p *Paths) WriteBytes(path string, data []byte, opts ...Option) error {
	o := p.options(opts, WithParents(true))
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	return p.writeFile(abs, data, o)
}

// AppendBytes adds data to the end of the file at path, creating the file
// and its parents as needed.
func (p *Paths) AppendBytes(path string, data []byte, opts ...Option) error {
	o := p.options(opts, WithParents(true))
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	return p.appendFile(abs, data, o)
}

// ReadText returns the contents of the file at path decoded from the
// configured encoding. WithEncoding("auto") detects the encoding.
func (p *Paths) ReadText(path string, opts ...Option) (string, error) {
	o := p.options(opts)
	abs, err := p.abs(path)
	if err != nil {
		return "", err
	}
	data, err := p.readFile(abs)
	if err != nil {
		return "", err
	}
	text, err := decodeText(data, o.encoding, o.errors)
	if err != nil {
		return "", errors.WithContext(err, "path", abs)
	}
	return text, nil
}

// WriteText replaces the contents of the file at path with data encoded in
// the configured encoding. WithNewline translates "\n" before encoding.
func (p *Paths) WriteText(path string, data string, opts ...Option) error {
	o := p.options(opts, WithParents(true))
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	encoded, err := p.encode(abs, translateNewlines(data, o), o)
	if err != nil {
		return err
	}
	return p.writeFile(abs, encoded, o)
}

// AppendText adds data to the end of the file at path.
func (p *Paths) AppendText(path string, data string, opts ...Option) error {
	o := p.options(opts, WithParents(true))
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	encoded, err := p.encode(abs, translateNewlines(data, o), o)
	if err != nil {
		return err
	}
	return p.appendFile(abs, encoded, o)
}

// ReadLines returns the lines of the file at path without their line
// terminators. "\n", "\r\n" and "\r" all end a line; a final terminator does
// not produce an empty last line.
func (p *Paths) ReadLines(path string, opts ...Option) ([]string, error) {
	text, err := p.ReadText(path, opts...)
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// WriteLines writes each line followed by a terminator, "\n" unless
// WithNewline says otherwise.
func (p *Paths) WriteLines(path string, lines []string, opts ...Option) error {
	o := p.options(opts, WithParents(true))
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	newline := "\n"
	if o.newline != nil {
		newline = *o.newline
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(newline)
	}
	encoded, err := p.encode(abs, b.String(), o)
	if err != nil {
		return err
	}
	return p.writeFile(abs, encoded, o)
}

// DetectEncoding guesses the text encoding of the file at path and returns
// its lower-case name.
func (p *Paths) DetectEncoding(path string) (string, error) {
	data, err := p.ReadBytes(path)
	if err != nil {
		return "", err
	}
	return detectCharset(data), nil
}

func (p *Paths) encode(abs, text string, o *options) ([]byte, error) {
	encoded, err := encodeText(text, o.encoding, o.errors)
	if err != nil {
		return nil, errors.WithContext(err, "path", abs)
	}
	return encoded, nil
}

func translateNewlines(s string, o *options) string {
	if o.newline == nil || *o.newline == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", *o.newline)
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// readFile reads a regular file.
func (p *Paths) readFile(abs string) ([]byte, error) {
	if _, err := p.requireFile(abs); err != nil {
		return nil, err
	}
	data, err := p.fs.ReadFile(abs)
	if err != nil {
		return nil, opError(err, "failed to read file", abs)
	}
	return data, nil
}

// writeFile replaces abs with data, atomically when requested.
func (p *Paths) writeFile(abs string, data []byte, o *options) error {
	existing, err := p.writable(abs, o)
	if err != nil {
		return err
	}

	if o.atomic {
		if err := p.writeAtomic(abs, data, existing, o); err != nil {
			return err
		}
	} else if err := p.fs.WriteFile(abs, data, o.perm); err != nil {
		return opError(err, "failed to write file", abs)
	}
	p.logger.Debug("file written", zap.String("path", abs), zap.Int("bytes", len(data)))
	return nil
}

// appendFile adds data to the end of abs.
func (p *Paths) appendFile(abs string, data []byte, o *options) error {
	if _, err := p.writable(abs, o); err != nil {
		return err
	}
	f, err := p.fs.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_APPEND, o.perm)
	if err != nil {
		return opError(err, "failed to open file", abs)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return opError(err, "failed to append to file", abs)
	}
	if err := f.Close(); err != nil {
		return opError(err, "failed to close file", abs)
	}
	p.logger.Debug("file appended", zap.String("path", abs), zap.Int("bytes", len(data)))
	return nil
}

// writable checks that abs may be written as a file and prepares its parent.
// It returns the current file's info, or nil when it does not exist yet.
func (p *Paths) writable(abs string, o *options) (os.FileInfo, error) {
	info, err := p.stat(abs)
	if err != nil {
		return nil, opError(err, "failed to stat file", abs)
	}
	if info != nil {
		if info.IsDir() {
			return nil, pathError(errors.CodeNotAFile, "path is a folder", abs)
		}
		return info, nil
	}
	if err := p.prepareParent(abs, o); err != nil {
		return nil, err
	}
	return nil, nil
}

// writeAtomic writes data to a uniquely named sibling and renames it over
// abs. An existing file's permission bits carry over.
func (p *Paths) writeAtomic(abs string, data []byte, existing os.FileInfo, o *options) error {
	tmp := filepath.Join(filepath.Dir(abs), fmt.Sprintf(".%s.%s.tmp", filepath.Base(abs), uuid.NewString()))

	f, err := p.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, o.perm)
	if err != nil {
		return opError(err, "failed to create temporary file", abs)
	}
	cleanup := func() { _ = p.fs.Remove(tmp) }

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return opError(err, "failed to write temporary file", abs)
	}
	if s, ok := f.(vfs.Syncer); ok {
		if err := s.Sync(); err != nil {
			_ = f.Close()
			cleanup()
			return opError(err, "failed to sync temporary file", abs)
		}
	}
	if err := f.Close(); err != nil {
		cleanup()
		return opError(err, "failed to close temporary file", abs)
	}

	if existing != nil {
		if mfs, ok := p.fs.(vfs.MetadataFS); ok {
			if err := mfs.Chmod(tmp, existing.Mode().Perm()); err != nil {
				cleanup()
				return opError(err, "failed to copy file mode", abs)
			}
		}
	}

	if err := p.fs.Rename(tmp, abs); err != nil {
		cleanup()
		return opError(err, "failed to replace file", abs)
	}
	return nil
}

// copyStream copies everything from r into a new file at abs.
func (p *Paths) copyStream(abs string, r io.Reader, perm os.FileMode) error {
	f, err := p.fs.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return opError(err, "failed to create file", abs)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return opError(err, "failed to write file", abs)
	}
	if err := f.Close(); err != nil {
		return opError(err, "failed to close file", abs)
	}
	return nil
}
