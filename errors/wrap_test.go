package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "file not found")

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "file not found", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND] file not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeNotADirectory, "%s is not a directory", "/tmp/a.txt")

	require.Equal(t, CodeNotADirectory, err.Code())
	require.Equal(t, "/tmp/a.txt is not a directory", err.Message())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk exploded")
	err := Wrap(cause, CodeIO, "write failed")

	require.NotNil(t, err)
	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, "write failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[IO_ERROR] write failed: disk exploded", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeNotFound, "test"))
	require.Nil(t, Wrapf(nil, CodeNotFound, "test %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeNotFound, "test", map[string]interface{}{"k": "v"}))
}

func TestWrap_PreservesClassification(t *testing.T) {
	original := New(CodeBusy, "device busy")
	require.True(t, original.Classification().IsRetryable())

	wrapped := Wrap(original, CodeIO, "copy failed")

	require.Equal(t, CodeIO, wrapped.Code())
	require.True(t, wrapped.Classification().IsRetryable())
}

func TestWrap_KeepsChain(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "/missing", Err: fs.ErrNotExist}
	wrapped := Wrap(pathErr, CodeNotFound, "read failed")

	require.True(t, Is(wrapped, fs.ErrNotExist))

	var target *fs.PathError
	require.True(t, As(wrapped, &target))
	require.Equal(t, "/missing", target.Path)
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrapf(cause, CodeDecodeFailed, "failed to parse %s", "data.json")

	require.Equal(t, "failed to parse data.json", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrapWithContext(t *testing.T) {
	ctx := map[string]interface{}{"src": "/a", "dst": "/b"}
	err := WrapWithContext(stderrors.New("boom"), CodeIO, "move failed", ctx)

	// Mutating the caller's map must not leak into the error.
	ctx["src"] = "/changed"

	require.Equal(t, "/a", err.Context()["src"])
	require.Equal(t, "/b", err.Context()["dst"])
	require.Equal(t, "[IO_ERROR] move failed (dst=/b, src=/a): boom", err.Error())
}
