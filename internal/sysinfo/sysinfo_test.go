//go:build linux || darwin || freebsd

package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskUsage(t *testing.T) {
	usage, err := DiskUsage(t.TempDir())
	require.NoError(t, err)

	assert.Positive(t, usage.Total)
	assert.LessOrEqual(t, usage.Used, usage.Total)
	assert.LessOrEqual(t, usage.Free, usage.Total)
}

func TestDiskUsage_Missing(t *testing.T) {
	_, err := DiskUsage(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestAccess(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ok, err := Access(dir, Read|Write|Execute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Access(file, Read)
	require.NoError(t, err)
	assert.True(t, ok)

	if os.Geteuid() != 0 {
		ok, err = Access(file, Execute)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	_, err = Access(filepath.Join(dir, "missing"), Read)
	require.ErrorIs(t, err, os.ErrNotExist)
}
