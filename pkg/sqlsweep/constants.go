package sqlsweep

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Scan completed (including empty results)
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitInvalidTarget   = 10 // Empty or unusable target URL
	ExitScannerMissing  = 11 // Scanner binary could not be started
	ExitPromptCancelled = 12 // User cancelled the target prompt
)

const (
	// DefaultScannerBinary is the external scanner executed for every
	// discovery pass when no override is configured.
	DefaultScannerBinary = "sqlmap"

	// DefaultMarker is the line prefix identifiers are extracted behind.
	// Matches the scanner's database listing lines ("[*] information_schema").
	DefaultMarker = "[*] "

	// MaxTargetLength caps the length of a target URL accepted from the
	// prompt or the command line.
	MaxTargetLength = 2048
)
