package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/skarn-dev/sqlsweep/internal/config"
	"github.com/skarn-dev/sqlsweep/internal/logging"
	"github.com/skarn-dev/sqlsweep/internal/scan"
	"github.com/skarn-dev/sqlsweep/internal/sqlmap"
	"github.com/skarn-dev/sqlsweep/internal/tui"
	"github.com/skarn-dev/sqlsweep/internal/ui"
	"github.com/skarn-dev/sqlsweep/pkg/sqlsweep"
)

var scanCmd = &cobra.Command{
	Use:   "scan [target_url]",
	Short: "Enumerate databases, tables and columns for a target URL",
	Long: `Scan runs the external scanner against the target URL in three nested
passes and prints everything it finds.

The scan command:
1. Lists databases for the target (--dbs)
2. Lists tables within each discovered database (-D <db> --tables)
3. Lists columns within each discovered table (-D <db> -T <table> --columns)

Each pass shells out to the scanner in batch mode and extracts identifiers
from its console output. Passes run strictly one after another; an empty
result at any level skips that branch and moves on.

When no target_url argument is given, sqlsweep prompts for one: a terminal
gets an interactive prompt, piped input is read as a single line from stdin.

Scanner resolution precedence: --binary flag > $SQLSWEEP_BINARY >
sqlsweep.yaml > "sqlmap". A .env file in the working directory is loaded
first.

Examples:
  # Scan with an explicit target
  sqlsweep scan "http://testphp.vulnweb.com/artists.php?artist=1"

  # Prompt for the target
  sqlsweep scan

  # Use a specific scanner build and pass extra flags through
  sqlsweep scan URL --binary /opt/sqlmap/sqlmap.py --extra --level --extra 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

type scanFlagValues struct {
	binary string
	marker string
	extra  []string
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanFlags.binary, "binary", "",
		"Scanner executable\n"+
			"Precedence: --binary > $SQLSWEEP_BINARY > sqlsweep.yaml > sqlmap")
	scanCmd.Flags().StringVar(&scanFlags.marker, "marker", "",
		"Line prefix identifiers are extracted behind (default \"[*] \")\n"+
			"Applied to all three discovery levels")
	scanCmd.Flags().StringArrayVar(&scanFlags.extra, "extra", nil,
		"Extra argument appended to every scanner invocation\n"+
			"(can be specified multiple times; each value is one argv element)")
}

// buildScanConfig resolves the scan configuration from flags, environment
// and the optional sqlsweep.yaml in dir. Extracted for testability.
func buildScanConfig(dir, target string, verbose bool) (sqlsweep.ScanConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return sqlsweep.ScanConfig{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		projectCfg = &config.ProjectConfig{}
	}

	cfg := sqlsweep.ScanConfig{
		Target:  target,
		Binary:  firstNonEmpty(scanFlags.binary, os.Getenv("SQLSWEEP_BINARY"), projectCfg.Scanner.Binary, sqlsweep.DefaultScannerBinary),
		Marker:  firstNonEmpty(scanFlags.marker, projectCfg.Scanner.Marker, sqlsweep.DefaultMarker),
		Verbose: verbose,
	}

	// Config-file args first, CLI --extra after, so flags win on conflicts.
	cfg.ExtraArgs = append(append([]string{}, projectCfg.Scanner.ExtraArgs...), scanFlags.extra...)

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveTarget returns the target from the command line, or prompts for it.
func resolveTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if tui.IsInteractive() {
		return tui.RunTargetPrompt()
	}
	prompt := ui.NewStdinPrompt(os.Stdin, os.Stderr)
	return prompt.Ask("Enter target URL: ")
}

func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	target, err := resolveTarget(args)
	if err != nil {
		if errors.Is(err, sqlsweep.ErrPromptCancelled) {
			logger.Info("Cancelled.")
		}
		return err
	}

	cfg, err := buildScanConfig(".", target, verbose)
	if err != nil {
		return err
	}

	runner := sqlmap.NewExecRunner(cfg.Binary, logger)
	orchestrator := scan.NewOrchestrator(runner, logger, os.Stdout)

	if _, err := orchestrator.Run(cmd.Context(), cfg); err != nil {
		if errors.Is(err, sqlsweep.ErrInvalidTarget) {
			logger.Error("Invalid URL")
		}
		return err
	}
	return nil
}
