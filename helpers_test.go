package easypath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jmgilman/go/easypath/errors"
	"github.com/jmgilman/go/easypath/vfs"
)

// testConfig is DefaultConfig with prompting disabled so tests never block
// on standard input.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Confirm = false
	return cfg
}

// newLocalPaths returns a Paths on the host filesystem whose working
// directory is a fresh temporary folder.
func newLocalPaths(t *testing.T, opts ...PathsOption) (*Paths, string) {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	base := []PathsOption{
		WithFS(vfs.NewLocal()),
		WithConfig(testConfig()),
		WithWorkingDir(dir),
		WithLogger(zap.NewNop()),
	}
	return New(append(base, opts...)...), dir
}

// newMemoryPaths returns a Paths on an empty in-memory filesystem whose
// working directory /work exists.
func newMemoryPaths(t *testing.T, opts ...PathsOption) (*Paths, string) {
	t.Helper()
	mem := vfs.NewMemory()
	dir := filepath.FromSlash("/work")
	require.NoError(t, mem.MkdirAll(dir, 0o755))
	base := []PathsOption{
		WithFS(mem),
		WithConfig(testConfig()),
		WithWorkingDir(dir),
		WithLogger(zap.NewNop()),
	}
	return New(append(base, opts...)...), dir
}

// observed returns a logger recording entries at debug level and above.
func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// writeTree creates files relative to root, with parents, on the host
// filesystem.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// requireCode fails unless err carries code.
func requireCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.HasCode(err, code), "expected %s, got %v", code, err)
}

func yes(string) (bool, error) { return true, nil }
func no(string) (bool, error)  { return false, nil }
