package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/skarn-dev/sqlsweep/internal/cli"
	"github.com/skarn-dev/sqlsweep/pkg/sqlsweep"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(sqlsweep.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(sqlsweep.ExitCodeForError(err))
	}
}
