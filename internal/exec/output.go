package exec

import (
	"bytes"
	"io"
	"sync"
)

// multiWriter writes to every writer in turn, serialising concurrent writes
// from the stdout and stderr copiers.
type multiWriter struct {
	writers []io.Writer
	mu      sync.Mutex
}

func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{writers: writers}
}

// Write writes p to all underlying writers.
func (mw *multiWriter) Write(p []byte) (n int, err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	for _, w := range mw.writers {
		n, err = w.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// capture is a goroutine-safe buffer.
type capture struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

func newCapture() *capture {
	return &capture{}
}

// Write appends p to the buffer.
func (c *capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Write(p)
}

// String returns everything written so far.
func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.String()
}
