package logging

import "github.com/skarn-dev/sqlsweep/pkg/sqlsweep"

// NullLogger discards all log messages.
// Safe for concurrent use by multiple goroutines. Useful for tests.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose is a no-op.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info is a no-op.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Error is a no-op.
func (l *NullLogger) Error(format string, args ...interface{}) {}

var _ sqlsweep.Logger = (*NullLogger)(nil)
