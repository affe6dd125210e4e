package easypath

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/easypath/vfs"
)

func TestNew_Defaults(t *testing.T) {
	p := New(WithConfig(testConfig()))

	assert.Equal(t, vfs.TypeLocal, p.FS().Type())
	assert.Equal(t, testConfig(), p.Config())

	wd, err := os.Getwd()
	require.NoError(t, err)
	got, err := p.CurrentDir()
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestNew_RunnerTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sleep")
	}
	cfg := testConfig()
	cfg.CommandTimeout = 50 * time.Millisecond
	p := New(WithConfig(cfg))

	start := time.Now()
	_, err := p.runner.Run(context.Background(), "sleep", "5")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestNew_MemoryWorkingDir(t *testing.T) {
	p := New(WithFS(vfs.NewMemory()), WithConfig(testConfig()))

	got, err := p.AbsolutePath("x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(string(filepath.Separator), "x"), got)
}

func TestDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	SetDefault(nil)
	first := Default()
	require.NotNil(t, first)
	assert.Same(t, first, Default())

	custom, _ := newMemoryPaths(t)
	SetDefault(custom)
	assert.Same(t, custom, Default())
}

func TestShortcuts(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })
	p, dir := newMemoryPaths(t)
	SetDefault(p)

	require.NoError(t, WriteText("notes/a.txt", "hello"))
	got, err := ReadText(filepath.Join(dir, "notes", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	ok, err := FileExists("notes/a.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	files, err := ListFiles("notes")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, files)

	require.NoError(t, CopyFile("notes/a.txt", "notes/b.txt"))
	n, err := CountFiles("notes")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, RemoveFolder("notes", WithForce()))
	ok, err = FolderExists("notes")
	require.NoError(t, err)
	assert.False(t, ok)
}
