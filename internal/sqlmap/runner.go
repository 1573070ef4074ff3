package sqlmap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/skarn-dev/sqlsweep/pkg/sqlsweep"
)

// ExecRunner runs the scanner binary as a child process and captures its
// combined stdout/stderr.
type ExecRunner struct {
	binary string
	logger sqlsweep.Logger
}

// NewExecRunner creates an ExecRunner for the given scanner binary.
func NewExecRunner(binary string, logger sqlsweep.Logger) *ExecRunner {
	return &ExecRunner{binary: binary, logger: logger}
}

// Run executes one scanner invocation and returns whatever text it produced.
//
// A non-zero exit status is not an error: the scanner exits non-zero for many
// non-fatal conditions (unreachable target, no injectable parameter) and its
// output is extracted the same way regardless. Only a failure to start the
// process is reported as an error, alongside any partial output.
func (r *ExecRunner) Run(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	r.logger.Verbose("executing %s with %d args", r.binary, len(args))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Verbose("%s exited with status %d", r.binary, exitErr.ExitCode())
			return out.String(), nil
		}
		if errors.Is(err, exec.ErrNotFound) {
			return out.String(), fmt.Errorf("%w: %q", sqlsweep.ErrScannerNotFound, r.binary)
		}
		return out.String(), fmt.Errorf("failed to run %q: %w", r.binary, err)
	}

	return out.String(), nil
}

var _ sqlsweep.Runner = (*ExecRunner)(nil)
