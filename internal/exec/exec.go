package exec

import (
	"context"
	"time"
)

// Runner executes a command. args[0] is the program and the rest are its
// arguments.
type Runner interface {
	Run(ctx context.Context, args ...string) (*Result, error)
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is stdout and stderr interleaved in the order written
	Combined string

	// ExitCode is the exit code returned by the command
	ExitCode int
}

// Option configures a Command.
type Option func(*Command)

// WithTimeout bounds each run. Zero means no limit beyond the caller's
// context.
func WithTimeout(d time.Duration) Option {
	return func(c *Command) {
		c.timeout = d
	}
}
