package exec

import "context"

// Wrapper prepends a fixed program name to every Run call, turning a general
// Runner into one for a single tool such as icacls.
type Wrapper struct {
	runner Runner
	cmd    string
}

// NewWrapper returns a Runner that invokes cmd through runner.
func NewWrapper(runner Runner, cmd string) *Wrapper {
	return &Wrapper{runner: runner, cmd: cmd}
}

// Run executes the wrapped program with args.
func (w *Wrapper) Run(ctx context.Context, args ...string) (*Result, error) {
	return w.runner.Run(ctx, append([]string{w.cmd}, args...)...)
}

var _ Runner = (*Wrapper)(nil)
