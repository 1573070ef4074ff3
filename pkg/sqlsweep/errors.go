package sqlsweep

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := orchestrator.Run(ctx, target)
//	if errors.Is(err, sqlsweep.ErrInvalidTarget) {
//	    // Handle empty/unusable target URL
//	}
var (
	// ErrInvalidTarget indicates the target URL was empty after trimming.
	ErrInvalidTarget = errors.New("invalid target URL")

	// ErrScannerNotFound indicates the scanner binary could not be started.
	ErrScannerNotFound = errors.New("scanner binary not found")

	// ErrPromptCancelled indicates the user cancelled the target prompt.
	ErrPromptCancelled = errors.New("prompt cancelled")

	// ErrInvalidConfig indicates the project configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidTarget):
		return ExitInvalidTarget
	case errors.Is(err, ErrScannerNotFound):
		return ExitScannerMissing
	case errors.Is(err, ErrPromptCancelled):
		return ExitPromptCancelled
	case errors.Is(err, ErrInvalidConfig):
		return ExitInvalidTarget
	}

	errStr := err.Error()

	// Cobra reports flag/argument misuse as plain errors
	if isUsageError(errStr) {
		return ExitUsageError
	}

	// exec.Command surfaces a missing binary as "executable file not found"
	if strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory") {
		return ExitScannerMissing
	}

	return ExitGeneralError
}

func isUsageError(errStr string) bool {
	patterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"required flag",
		"arg(s), received",
		"missing required argument",
	}
	for _, p := range patterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}
	return false
}
