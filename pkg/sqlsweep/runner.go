package sqlsweep

import "context"

// Runner executes one scanner invocation and returns its combined
// stdout/stderr as text.
//
// Arguments are passed as a discrete argv slice, never spliced into a shell
// command line, so extracted database/table names cannot inject into the
// local invocation.
//
// The scanner's exit status is deliberately not part of the contract: a run
// that produced output and exited non-zero still returns that output, and the
// returned error only reports that the process could not be started or did
// not run to completion. Callers extract identifiers from whatever text came
// back either way.
type Runner interface {
	Run(ctx context.Context, args []string) (output string, err error)
}

// RunnerFunc adapts a function to the Runner interface.
// Useful for substituting canned output in tests.
type RunnerFunc func(ctx context.Context, args []string) (string, error)

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, args []string) (string, error) {
	return f(ctx, args)
}
