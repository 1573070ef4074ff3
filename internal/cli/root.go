package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `           _
 ___  __ _| |_____      _____  ___ _ __
/ __|/ _' | / __\ \ /\ / / _ \/ _ \ '_ \
\__ \ (_| | \__ \\ V  V /  __/  __/ |_) |
|___/\__, |_|___/ \_/\_/ \___|\___| .__/
        |_|                       |_|`

var rootCmd = &cobra.Command{
	Use:   "sqlsweep",
	Short: "Nested schema discovery over an external SQL-injection scanner",
	Long: asciiLogo + `

sqlsweep drives sqlmap (or a compatible scanner) against a target URL and
walks its console output through three nested discovery passes: databases,
tables per database, columns per table. Results are printed as they are
found; nothing is stored.

The scanner does all the probing. sqlsweep only knows which flags to pass at
each level and how to pick identifiers out of the output text.

Exit Codes:
  0  - Scan completed (including empty results)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid target URL
  11 - Scanner binary could not be started
  12 - Target prompt cancelled`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
