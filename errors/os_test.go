package errors

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyOS(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, CodeUnknown},
		{"not exist", fs.ErrNotExist, CodeNotFound},
		{"path error not exist", &fs.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}, CodeNotFound},
		{"exist", fs.ErrExist, CodeAlreadyExists},
		{"permission", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, CodeForbidden},
		{"not a directory", &fs.PathError{Op: "readdir", Path: "/x", Err: syscall.ENOTDIR}, CodeNotADirectory},
		{"is a directory", &fs.PathError{Op: "read", Path: "/x", Err: syscall.EISDIR}, CodeNotAFile},
		{"not empty", &os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: syscall.ENOTEMPTY}, CodeNotEmpty},
		{"busy", syscall.EBUSY, CodeBusy},
		{"again", syscall.EAGAIN, CodeBusy},
		{"unsupported", stderrors.ErrUnsupported, CodeUnsupported},
		{"invalid", fs.ErrInvalid, CodeInvalidInput},
		{"eof", io.ErrUnexpectedEOF, CodeIO},
		{"platform error", New(CodeCancelled, "declined"), CodeCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyOS(tt.err))
		})
	}
}

func TestFromOS(t *testing.T) {
	require.Nil(t, FromOS(nil, "ignored"))

	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing"))
	err := FromOS(statErr, "stat failed")

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "stat failed", err.Message())
	require.False(t, err.Classification().IsRetryable())
	require.True(t, Is(err, fs.ErrNotExist))
}

func TestFromOS_BusyIsRetryable(t *testing.T) {
	err := FromOS(&fs.PathError{Op: "remove", Path: "/mnt", Err: syscall.EBUSY}, "remove failed")

	require.Equal(t, CodeBusy, err.Code())
	require.True(t, IsRetryable(err))
}
