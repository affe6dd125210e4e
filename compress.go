package easypath

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/jmgilman/go/easypath/errors"
)

// Compression selects a single-file compression format.
type Compression int

const (
	// Gzip is RFC 1952 gzip.
	Gzip Compression = iota
	// Zstd is Zstandard.
	Zstd
)

// String returns the name of the format.
func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Extension returns the conventional file extension of the format.
func (c Compression) Extension() string {
	switch c {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	default:
		return ""
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// CompressFile writes a compressed copy of the file src to dst. An existing
// dst is an error unless WithOverwrite is given.
func (p *Paths) CompressFile(src, dst string, c Compression, opts ...Option) error {
	o := p.options(opts)
	srcAbs, dstAbs, err := p.absPair(src, dst)
	if err != nil {
		return err
	}
	info, err := p.requireFile(srcAbs)
	if err != nil {
		return err
	}

	in, err := p.fs.Open(srcAbs)
	if err != nil {
		return opError(err, "failed to open file", srcAbs)
	}
	defer func() { _ = in.Close() }()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case Gzip:
		gw := gzip.NewWriter(&buf)
		gw.Name = info.Name()
		gw.ModTime = info.ModTime()
		w = gw
	case Zstd:
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to create zstd encoder")
		}
		w = zw
	default:
		return errors.WithContext(errors.New(errors.CodeInvalidInput, "unknown compression format"), "format", int(c))
	}

	if _, err := io.Copy(w, in); err != nil {
		_ = w.Close()
		return opError(err, "failed to compress file", srcAbs)
	}
	if err := w.Close(); err != nil {
		return encodeError(err, "failed to finish compressed stream", dstAbs)
	}

	if err := p.fileDestination(srcAbs, dstAbs, o); err != nil {
		return err
	}
	if err := p.writeFile(dstAbs, buf.Bytes(), o); err != nil {
		return err
	}
	p.logger.Info("file compressed", zap.String("src", srcAbs), zap.String("dst", dstAbs),
		zap.Stringer("format", c), zap.Int64("size", info.Size()), zap.Int("compressed", buf.Len()))
	return nil
}

// DecompressFile writes the decompressed contents of src to dst. The format
// is recognised from the leading magic bytes of src. An existing dst is an
// error unless WithOverwrite is given.
func (p *Paths) DecompressFile(src, dst string, opts ...Option) error {
	o := p.options(opts)
	srcAbs, dstAbs, err := p.absPair(src, dst)
	if err != nil {
		return err
	}
	if _, err := p.requireFile(srcAbs); err != nil {
		return err
	}

	in, err := p.fs.Open(srcAbs)
	if err != nil {
		return opError(err, "failed to open file", srcAbs)
	}
	defer func() { _ = in.Close() }()

	br := bufio.NewReader(in)
	head, _ := br.Peek(len(zstdMagic))

	var r io.Reader
	var c Compression
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return decodeError(err, "invalid gzip stream", srcAbs)
		}
		defer func() { _ = gr.Close() }()
		r, c = gr, Gzip
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return decodeError(err, "invalid zstd stream", srcAbs)
		}
		defer zr.Close()
		r, c = zr, Zstd
	default:
		return pathError(errors.CodeDecodeFailed, "unrecognised compression format", srcAbs)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return decodeError(err, "failed to decompress file", srcAbs)
	}
	if err := p.fileDestination(srcAbs, dstAbs, o); err != nil {
		return err
	}
	if err := p.writeFile(dstAbs, data, o); err != nil {
		return err
	}
	p.logger.Info("file decompressed", zap.String("src", srcAbs), zap.String("dst", dstAbs),
		zap.Stringer("format", c), zap.Int("size", len(data)))
	return nil
}
