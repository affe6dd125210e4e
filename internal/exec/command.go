package exec

import (
	"context"
	osexec "os/exec"
	"time"
)

// Command is the process-backed Runner.
type Command struct {
	timeout time.Duration
}

// New creates a Command with the given options. Commands inherit the
// environment so programs such as icacls resolve via PATH.
func New(opts ...Option) *Command {
	c := &Command{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes args[0] with the remaining arguments.
func (c *Command) Run(ctx context.Context, args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ExecError{ExitCode: -1, Err: osexec.ErrNotFound}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)

	stdout := newCapture()
	stderr := newCapture()
	combined := newCapture()
	cmd.Stdout = newMultiWriter(stdout, combined)
	cmd.Stderr = newMultiWriter(stderr, combined)

	err := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}
	return result, nil
}

var _ Runner = (*Command)(nil)
