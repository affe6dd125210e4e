package easypath

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	// Confirm shows question and reports whether the answer was "y".
	Confirm(question string) (bool, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(question string) (bool, error)

// Confirm calls f.
func (f PrompterFunc) Confirm(question string) (bool, error) {
	return f(question)
}

// StreamPrompter writes questions to out and reads answers line by line from
// in. Only "y" (case-insensitive, surrounding space ignored) confirms.
type StreamPrompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewStreamPrompter creates a StreamPrompter over in and out.
func NewStreamPrompter(in io.Reader, out io.Writer) *StreamPrompter {
	return &StreamPrompter{in: bufio.NewReader(in), out: out}
}

// NewStdinPrompter creates a StreamPrompter over standard input and output.
func NewStdinPrompter() *StreamPrompter {
	return NewStreamPrompter(os.Stdin, os.Stdout)
}

// Confirm prints question and reads one answer.
func (s *StreamPrompter) Confirm(question string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.out, question); err != nil {
		return false, err
	}
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y", nil
}
