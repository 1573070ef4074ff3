package sqlsweep

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ScanConfig contains all parameters needed for one discovery run.
type ScanConfig struct {
	// Target is the URL probed by every scanner invocation
	Target string

	// Binary is the scanner executable (default: sqlmap)
	Binary string

	// ExtraArgs are appended verbatim to every invocation's argv
	ExtraArgs []string

	// Marker is the line prefix identifiers are extracted behind.
	// The same marker applies to all three discovery levels.
	Marker string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ScanConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ScanConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Target) == "" {
		errs = append(errs, fmt.Errorf("Target is required: %w", ErrInvalidTarget))
	}

	if len(c.Target) > MaxTargetLength {
		errs = append(errs, fmt.Errorf("Target exceeds %d characters: %w", MaxTargetLength, ErrInvalidTarget))
	}

	if c.Binary == "" {
		errs = append(errs, fmt.Errorf("Binary is required: %w", ErrInvalidConfig))
	}

	if c.Marker == "" {
		errs = append(errs, fmt.Errorf("Marker is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Summary describes one completed discovery run.
type Summary struct {
	// RunID uniquely identifies this run in logs and reports
	RunID string

	// Target is the scanned URL
	Target string

	// Invocations is the number of scanner executions performed
	Invocations int

	// Databases, Tables and Columns count the identifiers discovered at
	// each level across the whole run
	Databases int
	Tables    int
	Columns   int

	// Elapsed is the wall-clock duration of the run
	Elapsed time.Duration
}
