package scan

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skarn-dev/sqlsweep/internal/extract"
	"github.com/skarn-dev/sqlsweep/internal/sqlmap"
	"github.com/skarn-dev/sqlsweep/pkg/sqlsweep"
)

// Orchestrator walks a target through the three discovery passes:
// databases, tables per database, columns per table.
//
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance;
// passes execute strictly sequentially by design.
type Orchestrator struct {
	runner sqlsweep.Runner
	logger sqlsweep.Logger
	out    io.Writer
}

// NewOrchestrator creates an Orchestrator with all dependencies injected.
// Panics on nil dependencies: those are programmer errors that should fail
// loudly at startup, not surface as nil dereferences mid-scan.
func NewOrchestrator(runner sqlsweep.Runner, logger sqlsweep.Logger, out io.Writer) *Orchestrator {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	return &Orchestrator{runner: runner, logger: logger, out: out}
}

// Run performs one full discovery run against cfg.Target.
//
// Every scanner invocation's raw output is echoed verbatim to the output
// writer, followed by the identifiers extracted from it. An empty result at
// any level is a normal outcome, not an error: pass one ends the run, deeper
// passes skip to the next sibling. Invocation failures are logged and the
// pass continues with whatever output came back, so a broken scanner is
// indistinguishable from an empty result.
func (o *Orchestrator) Run(ctx context.Context, cfg sqlsweep.ScanConfig) (sqlsweep.Summary, error) {
	start := time.Now()

	cfg.Target = strings.TrimSpace(cfg.Target)
	if cfg.Target == "" {
		return sqlsweep.Summary{}, fmt.Errorf("empty target: %w", sqlsweep.ErrInvalidTarget)
	}
	if len(cfg.Target) > sqlsweep.MaxTargetLength {
		return sqlsweep.Summary{}, fmt.Errorf("target exceeds %d characters: %w", sqlsweep.MaxTargetLength, sqlsweep.ErrInvalidTarget)
	}

	// One marker for every level. sqlmap renders table and column listings
	// as ASCII boxes rather than "[*] " lines, so those passes typically
	// extract nothing against a real scanner.
	// TODO: map per-level markers once the table/column output grammar is pinned down.
	extractor := extract.New(cfg.Marker)

	summary := sqlsweep.Summary{
		RunID:  uuid.NewString(),
		Target: cfg.Target,
	}
	o.logger.Verbose("run %s: target %s", summary.RunID, cfg.Target)

	o.logger.Info("Running sqlmap on %s to fetch databases...", cfg.Target)
	databases := o.discover(ctx, &summary, extractor, sqlmap.DatabasesArgs(cfg.Target, cfg.ExtraArgs))
	summary.Databases = len(databases)
	if len(databases) == 0 {
		fmt.Fprintln(o.out, "No databases found.")
		summary.Elapsed = time.Since(start)
		return summary, nil
	}

	for _, db := range databases {
		fmt.Fprintf(o.out, "Found database: %s\n", db)

		tables := o.discover(ctx, &summary, extractor, sqlmap.TablesArgs(cfg.Target, db, cfg.ExtraArgs))
		summary.Tables += len(tables)
		if len(tables) == 0 {
			fmt.Fprintf(o.out, "No tables found in database %s.\n", db)
			continue
		}

		for _, table := range tables {
			o.logger.Info("Extracting columns from %s...", table)

			columns := o.discover(ctx, &summary, extractor, sqlmap.ColumnsArgs(cfg.Target, db, table, cfg.ExtraArgs))
			summary.Columns += len(columns)
			if len(columns) == 0 {
				fmt.Fprintf(o.out, "No columns found in table %s.\n", table)
				continue
			}
			fmt.Fprintf(o.out, "Columns in %s: %s\n", table, strings.Join(columns, ", "))
		}
	}

	summary.Elapsed = time.Since(start)
	o.logger.Info("Scan %s complete: %d invocations, %d databases, %d tables, %d columns in %s",
		summary.RunID, summary.Invocations, summary.Databases, summary.Tables, summary.Columns,
		summary.Elapsed.Round(time.Millisecond))
	return summary, nil
}

// discover runs one scanner invocation, echoes its raw output, and returns
// the identifiers extracted from it. Exit status and invocation errors do
// not abort the run; extraction happens over whatever text came back.
func (o *Orchestrator) discover(ctx context.Context, summary *sqlsweep.Summary, extractor extract.Extractor, args []string) []string {
	summary.Invocations++

	output, err := o.runner.Run(ctx, args)
	if err != nil {
		o.logger.Error("scanner invocation failed: %v", err)
	}
	if output != "" {
		fmt.Fprint(o.out, output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Fprintln(o.out)
		}
	}

	ids := extractor.Identifiers(output)
	o.logger.Verbose("extracted %d identifier(s) from %d bytes of output", len(ids), len(output))
	return ids
}
