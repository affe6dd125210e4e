package easypath

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/easypath/errors"
)

// sampleTree lays out:
//
//	docs/a.txt       (5 bytes)
//	docs/b.md        (3 bytes)
//	docs/sub/c.txt   (1 byte)
//	docs/sub/deep/   (empty)
func sampleTree(t *testing.T, dir string) string {
	t.Helper()
	writeTree(t, dir, map[string]string{
		"docs/a.txt":     "hello",
		"docs/b.md":      "abc",
		"docs/sub/c.txt": "x",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs", "sub", "deep"), 0o755))
	return filepath.Join(dir, "docs")
}

func TestCreateFolder(t *testing.T) {
	p, dir := newLocalPaths(t)

	require.NoError(t, p.CreateFolder("one/two"))
	assert.DirExists(t, filepath.Join(dir, "one", "two"))
	require.NoError(t, p.CreateFolder("one/two"), "existing folder is fine")
}

func TestCreateFolders(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{"blocker": "x"})

	err := p.CreateFolders([]string{"a", "blocker", "b"})
	requireCode(t, err, errors.CodeAlreadyExists)
	assert.DirExists(t, filepath.Join(dir, "a"))
	assert.DirExists(t, filepath.Join(dir, "b"), "later folders are still created")
}

func TestRemoveFolder(t *testing.T) {
	t.Run("without confirmation", func(t *testing.T) {
		p, dir := newLocalPaths(t)
		docs := sampleTree(t, dir)

		require.NoError(t, p.RemoveFolder("docs"))
		assert.NoDirExists(t, docs)
	})

	t.Run("confirmed", func(t *testing.T) {
		var asked string
		prompter := PrompterFunc(func(q string) (bool, error) {
			asked = q
			return true, nil
		})
		p, dir := newLocalPaths(t, WithPrompter(prompter))
		docs := sampleTree(t, dir)

		require.NoError(t, p.RemoveFolder("docs", WithConfirm(true)))
		assert.Equal(t, "The folder 'docs' has 3 files and 2 folders. Continue y/n:", asked)
		assert.NoDirExists(t, docs)
	})

	t.Run("declined", func(t *testing.T) {
		p, dir := newLocalPaths(t, WithPrompter(PrompterFunc(no)))
		docs := sampleTree(t, dir)

		err := p.RemoveFolder("docs", WithConfirm(true))
		requireCode(t, err, errors.CodeCancelled)
		assert.True(t, IsCancelled(err))
		assert.DirExists(t, docs)
	})

	t.Run("force skips prompt", func(t *testing.T) {
		prompter := PrompterFunc(func(string) (bool, error) {
			t.Fatal("prompted despite force")
			return false, nil
		})
		p, dir := newLocalPaths(t, WithPrompter(prompter))
		docs := sampleTree(t, dir)

		require.NoError(t, p.RemoveFolder("docs", WithConfirm(true), WithForce()))
		assert.NoDirExists(t, docs)
	})

	t.Run("dry run", func(t *testing.T) {
		logger, logs := observed()
		p, dir := newLocalPaths(t, WithLogger(logger))
		docs := sampleTree(t, dir)

		require.NoError(t, p.RemoveFolder("docs", WithDryRun()))
		assert.DirExists(t, docs)
		assert.Equal(t, 1, logs.FilterMessage("dry run: folder would be removed").Len())
	})

	t.Run("missing", func(t *testing.T) {
		p, _ := newLocalPaths(t)
		requireCode(t, p.RemoveFolder("nope"), errors.CodeNotFound)
	})

	t.Run("file", func(t *testing.T) {
		p, dir := newLocalPaths(t)
		writeTree(t, dir, map[string]string{"f.txt": "x"})
		requireCode(t, p.RemoveFolder("f.txt"), errors.CodeNotADirectory)
	})

	t.Run("logs removal", func(t *testing.T) {
		logger, logs := observed()
		p, dir := newLocalPaths(t, WithLogger(logger))
		sampleTree(t, dir)

		require.NoError(t, p.RemoveFolder("docs"))
		entries := logs.FilterMessage("folder removed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Join(dir, "docs"), entries[0].ContextMap()["path"])
	})
}

func TestRemoveFolders(t *testing.T) {
	p, dir := newLocalPaths(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))

	err := p.RemoveFolders([]string{"a", "missing", "b"})
	requireCode(t, err, errors.CodeNotFound)
	assert.NoDirExists(t, filepath.Join(dir, "a"))
	assert.NoDirExists(t, filepath.Join(dir, "b"))
}

func TestEmptyFolder(t *testing.T) {
	p, dir := newLocalPaths(t)
	docs := sampleTree(t, dir)

	require.NoError(t, p.EmptyFolder("docs"))
	assert.DirExists(t, docs)

	empty, err := p.IsEmptyDir("docs")
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestListing(t *testing.T) {
	p, dir := newLocalPaths(t)
	sampleTree(t, dir)

	files, err := p.ListFiles("docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.md"}, files)

	files, err = p.ListFilesRecursive("docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.md", "c.txt"}, files)

	folders, err := p.ListFolders("docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"sub"}, folders)

	folders, err = p.ListFoldersRecursive("docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"sub", "deep"}, folders)

	all, err := p.ListPaths("docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.md", "sub"}, all)

	none, err := p.ListPaths("docs", WithFiles(false), WithDirs(false))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = p.ListFiles("missing")
	requireCode(t, err, errors.CodeNotFound)
	_, err = p.ListFiles("docs/a.txt")
	requireCode(t, err, errors.CodeNotADirectory)
}

func TestListing_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symbolic links need privileges on Windows")
	}
	p, dir := newLocalPaths(t)
	docs := sampleTree(t, dir)
	require.NoError(t, os.Symlink(filepath.Join(docs, "sub"), filepath.Join(docs, "link-dir")))
	require.NoError(t, os.Symlink(filepath.Join(docs, "a.txt"), filepath.Join(docs, "link-file")))
	require.NoError(t, os.Symlink(filepath.Join(docs, "gone"), filepath.Join(docs, "broken")))

	files, err := p.ListFiles("docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.md", "link-file"}, files)

	folders, err := p.ListFolders("docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"link-dir", "sub"}, folders)
}

func TestExistence(t *testing.T) {
	p, dir := newLocalPaths(t)
	sampleTree(t, dir)

	ok, err := p.FolderExists("docs")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.FolderExists("docs/a.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.FolderExists("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	empty, err := p.IsEmptyDir("docs/sub/deep")
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = p.IsEmptyDir("docs")
	require.NoError(t, err)
	assert.False(t, empty)

	empty, err = p.IsEmptyDir("missing")
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestCounts(t *testing.T) {
	p, dir := newLocalPaths(t)
	sampleTree(t, dir)

	tests := []struct {
		name  string
		count func(string, ...Option) (int, error)
		opts  []Option
		want  int
	}{
		{"files", p.CountFiles, nil, 2},
		{"files recursive", p.CountFiles, []Option{Recursive()}, 3},
		{"folders", p.CountFolders, nil, 1},
		{"folders recursive", p.CountFolders, []Option{Recursive()}, 2},
		{"entries", p.CountEntries, nil, 3},
		{"entries recursive", p.CountEntries, []Option{Recursive()}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.count("docs", tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := p.CountFiles("missing")
	requireCode(t, err, errors.CodeNotFound)
}

func TestGetFolderSize(t *testing.T) {
	p, dir := newLocalPaths(t)
	sampleTree(t, dir)

	size, err := p.GetFolderSize("docs")
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)
}

func TestCopyFolder(t *testing.T) {
	p, dir := newLocalPaths(t)
	docs := sampleTree(t, dir)
	past := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(docs, "a.txt"), past, past))
	if runtime.GOOS != "windows" {
		require.NoError(t, os.Chmod(filepath.Join(docs, "b.md"), 0o600))
	}

	require.NoError(t, p.CopyFolder("docs", "copy"))

	copied := filepath.Join(dir, "copy")
	data, err := os.ReadFile(filepath.Join(copied, "sub", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
	assert.DirExists(t, filepath.Join(copied, "sub", "deep"))

	info, err := os.Stat(filepath.Join(copied, "a.txt"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past))

	if runtime.GOOS != "windows" {
		info, err = os.Stat(filepath.Join(copied, "b.md"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	err = p.CopyFolder("docs", "copy")
	requireCode(t, err, errors.CodeAlreadyExists)

	err = p.CopyFolder("docs", "docs/inner")
	requireCode(t, err, errors.CodeInvalidInput)
}

func TestCopyFolder_OverwriteMerges(t *testing.T) {
	p, dir := newLocalPaths(t)
	sampleTree(t, dir)
	writeTree(t, dir, map[string]string{
		"dst/a.txt":   "stale",
		"dst/keep.md": "mine",
	})

	require.NoError(t, p.CopyFolder("docs", "dst", WithOverwrite()))

	data, err := os.ReadFile(filepath.Join(dir, "dst", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.FileExists(t, filepath.Join(dir, "dst", "keep.md"))
	assert.FileExists(t, filepath.Join(dir, "dst", "sub", "c.txt"))
}

func TestCopyFolder_FollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symbolic links need privileges on Windows")
	}
	p, dir := newLocalPaths(t)
	docs := sampleTree(t, dir)
	writeTree(t, dir, map[string]string{"outside/o.txt": "out"})
	require.NoError(t, os.Symlink(filepath.Join(dir, "outside"), filepath.Join(docs, "ext")))

	require.NoError(t, p.CopyFolder("docs", "copy"))

	info, err := os.Lstat(filepath.Join(dir, "copy", "ext"))
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "link is copied as a real folder")
	assert.FileExists(t, filepath.Join(dir, "copy", "ext", "o.txt"))
}

func TestMoveFolder(t *testing.T) {
	p, dir := newLocalPaths(t)
	docs := sampleTree(t, dir)

	require.NoError(t, p.MoveFolder("docs", "moved"))
	assert.NoDirExists(t, docs)
	assert.FileExists(t, filepath.Join(dir, "moved", "sub", "c.txt"))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "other"), 0o755))
	err := p.MoveFolder("moved", "other")
	requireCode(t, err, errors.CodeAlreadyExists)

	require.NoError(t, p.MoveFolder("moved", "other", WithOverwrite()))
	assert.FileExists(t, filepath.Join(dir, "other", "a.txt"))
	assert.NoDirExists(t, filepath.Join(dir, "moved"))

	err = p.MoveFolder("other", "missing/parent/dst")
	requireCode(t, err, errors.CodeNotFound)
}

func TestMoveFolder_OverParent(t *testing.T) {
	p, dir := newLocalPaths(t)
	writeTree(t, dir, map[string]string{
		"x/sub/inner.txt": "inner",
		"x/sibling.txt":   "sibling",
	})

	requireCode(t, p.MoveFolder("x/sub", "x", WithOverwrite()), errors.CodeInvalidInput)
	requireCode(t, p.MoveFolder("x/sub", ".", WithOverwrite()), errors.CodeInvalidInput)
	requireCode(t, p.MoveFolder("x", "x", WithOverwrite()), errors.CodeInvalidInput)

	assert.FileExists(t, filepath.Join(dir, "x", "sub", "inner.txt"))
	assert.FileExists(t, filepath.Join(dir, "x", "sibling.txt"))
}

func TestRenameFolder(t *testing.T) {
	p, dir := newLocalPaths(t)
	sampleTree(t, dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0o755))

	requireCode(t, p.RenameFolder("docs", "taken"), errors.CodeAlreadyExists)
	requireCode(t, p.RenameFolder("missing", "new"), errors.CodeNotFound)

	require.NoError(t, p.RenameFolder("docs", "renamed"))
	assert.DirExists(t, filepath.Join(dir, "renamed"))
}

func TestGetFolderInfo(t *testing.T) {
	p, dir := newLocalPaths(t)
	sampleTree(t, dir)

	info, err := p.GetFolderInfo("docs")
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Equal(t, "docs", info.Name)
	assert.Equal(t, filepath.Join(dir, "docs"), info.Path)
	assert.Equal(t, int64(9), info.Size)
	assert.Equal(t, 3, info.FileCount)
	assert.Equal(t, 2, info.FolderCount)
	assert.Equal(t, []string{"sub"}, info.Subfolders)
	assert.False(t, info.ModTime.IsZero())

	info, err = p.GetFolderInfo("missing")
	require.NoError(t, err)
	assert.False(t, info.Exists)
	assert.Equal(t, filepath.Join(dir, "missing"), info.Path)
}

func TestReadDirTree(t *testing.T) {
	p, dir := newLocalPaths(t)
	docs := sampleTree(t, dir)

	got, err := p.ReadDirTree("docs", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(docs, "a.txt"),
		filepath.Join(docs, "b.md"),
		filepath.Join(docs, "sub"),
	}, got)

	got, err = p.ReadDirTree("docs", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(docs, "a.txt"),
		filepath.Join(docs, "b.md"),
		filepath.Join(docs, "sub"),
		filepath.Join(docs, "sub", "c.txt"),
		filepath.Join(docs, "sub", "deep"),
	}, got)

	got, err = p.ReadDirTree("docs", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFolders_Memory(t *testing.T) {
	p, dir := newMemoryPaths(t)

	require.NoError(t, p.WriteText("tree/a.txt", "aa"))
	require.NoError(t, p.WriteText("tree/sub/b.txt", "bbb"))

	size, err := p.GetFolderSize("tree")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	n, err := p.CountFiles("tree", Recursive())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, p.CopyFolder("tree", "copy"))
	got, err := p.ReadText("copy/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "bbb", got)

	require.NoError(t, p.MoveFolder("copy", "moved"))
	ok, err := p.FolderExists(filepath.Join(dir, "copy"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.RemoveFolder("moved"))
	ok, err = p.FolderExists("moved")
	require.NoError(t, err)
	assert.False(t, ok)
}
