package easypath

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/easypath/errors"
)

func TestRemoveFile(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"f.txt": "x"})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder"), 0o755))

	require.NoError(t, p.RemoveFile("f.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "f.txt"))

	requireCode(t, p.RemoveFile("f.txt"), errors.CodeNotFound)
	require.NoError(t, p.RemoveFile("f.txt", WithMissingOK()))

	requireCode(t, p.RemoveFile("folder"), errors.CodeNotAFile)
	requireCode(t, p.RemoveFile("folder", WithMissingOK()), errors.CodeNotAFile)
	assert.DirExists(t, filepath.Join(dir, "folder"))
}

func TestRemoveFile_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symbolic links need privileges on Windows")
	}
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"target.txt": "x"})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "target.txt"), filepath.Join(dir, "file-link")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "folder"), filepath.Join(dir, "dir-link")))

	require.NoError(t, p.RemoveFile("file-link"))
	assert.FileExists(t, filepath.Join(dir, "target.txt"), "only the link is removed")

	requireCode(t, p.RemoveFile("dir-link"), errors.CodeNotAFile)
}

func TestFileExists(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"f.txt": "x"})

	ok, err := p.FileExists("f.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.FileExists(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.FileExists("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRenameFile(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"a.txt": "a", "b.txt": "b"})

	requireCode(t, p.RenameFile("a.txt", "b.txt"), errors.CodeAlreadyExists)
	requireCode(t, p.RenameFile("missing", "c.txt"), errors.CodeNotFound)

	require.NoError(t, p.RenameFile("a.txt", "c.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
	assert.FileExists(t, filepath.Join(dir, "c.txt"))
}

func TestMoveFile(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"a.txt": "a", "b.txt": "b"})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder"), 0o755))

	requireCode(t, p.MoveFile("a.txt", "b.txt"), errors.CodeAlreadyExists)

	require.NoError(t, p.MoveFile("a.txt", "b.txt", WithOverwrite()))
	data, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
	assert.NoFileExists(t, filepath.Join(dir, "a.txt"))

	requireCode(t, p.MoveFile("b.txt", "folder", WithOverwrite()), errors.CodeNotAFile)

	require.NoError(t, p.MoveFile("b.txt", "folder/b.txt"))
	assert.FileExists(t, filepath.Join(dir, "folder", "b.txt"))

	requireCode(t, p.MoveFile("folder/b.txt", "new/b.txt"), errors.CodeNotFound)
	require.NoError(t, p.MoveFile("folder/b.txt", "new/b.txt", WithParents(true)))
}

func TestMoveFile_OntoItself(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"keep.txt": "keep"})

	requireCode(t, p.MoveFile("keep.txt", "keep.txt", WithOverwrite()), errors.CodeInvalidInput)

	data, err := os.ReadFile(filepath.Join(dir, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestCopyFile(t *testing.T) {
	p, dir := newLocalPaths(t)
	src := filepath.Join(dir, "src.txt")
	writeTree(t, dir, map[string]string{"src.txt": "payload"})
	past := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, past, past))
	if runtime.GOOS != "windows" {
		require.NoError(t, os.Chmod(src, 0o640))
	}

	require.NoError(t, p.CopyFile("src.txt", "dst.txt"))

	dst := filepath.Join(dir, "dst.txt")
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past))
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	}

	requireCode(t, p.CopyFile("src.txt", "dst.txt"), errors.CodeAlreadyExists)
	requireCode(t, p.CopyFile("src.txt", "src.txt", WithOverwrite()), errors.CodeAlreadyExists)
	requireCode(t, p.CopyFile("missing", "x.txt"), errors.CodeNotFound)
	requireCode(t, p.CopyFile(dir, "x.txt"), errors.CodeNotAFile)
}

func TestCopyFile_Atomic(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"src.txt": "new", "dst.txt": "old"})

	require.NoError(t, p.CopyFile("src.txt", "dst.txt", WithOverwrite(), WithAtomic()))

	data, err := os.ReadFile(filepath.Join(dir, "dst.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGetFileSize(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"f.txt": "12345"})

	size, err := p.GetFileSize("f.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = p.GetFileSize("missing")
	requireCode(t, err, errors.CodeNotFound)
}

func TestGetFileInfo(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"report.tar.gz": "not really gzip", ".env": "KEY=1\n"})

	info, err := p.GetFileInfo("report.tar.gz")
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Equal(t, "report.tar.gz", info.Name)
	assert.Equal(t, filepath.Join(dir, "report.tar.gz"), info.Path)
	assert.Equal(t, int64(15), info.Size)
	assert.Equal(t, ".gz", info.Extension)
	assert.Equal(t, "report.tar", info.Stem)
	assert.True(t, strings.HasPrefix(info.MimeType, "text/plain"))

	info, err = p.GetFileInfo(".env")
	require.NoError(t, err)
	assert.Equal(t, "", info.Extension)
	assert.Equal(t, ".env", info.Stem)

	info, err = p.GetFileInfo("missing.txt")
	require.NoError(t, err)
	assert.False(t, info.Exists)
	assert.Equal(t, filepath.Join(dir, "missing.txt"), info.Path)

	info, err = p.GetFileInfo(dir)
	require.NoError(t, err)
	assert.False(t, info.Exists)
}

func TestDetectMIME(t *testing.T) {
	p, dir := newLocalPaths(t)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image"), png, 0o644))

	mime, err := p.DetectMIME("image")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = p.DetectMIME(dir)
	requireCode(t, err, errors.CodeNotAFile)
}

func TestFiles_Memory(t *testing.T) {
	p, _ := newMemoryPaths(t)
	require.NoError(t, p.WriteText("a.txt", "a"))

	require.NoError(t, p.CopyFile("a.txt", "b.txt", WithAtomic()))
	require.NoError(t, p.MoveFile("b.txt", "c.txt"))
	require.NoError(t, p.RenameFile("c.txt", "d.txt"))

	got, err := p.ReadText("d.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	require.NoError(t, p.RemoveFile("d.txt"))
	ok, err := p.FileExists("d.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	info, err := p.GetFileInfo("a.txt")
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Equal(t, "a.txt", info.Name)
}
