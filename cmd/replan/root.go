package main

import (
	"replan/internal/config"
	"replan/internal/logging"
	"replan/internal/version"

	"github.com/spf13/cobra"
)

var (
	// formatFlag is the CLI --format flag value
	formatFlag string
	// verboseFlag surfaces rule-provider load diagnostics
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "replan",
	Short: "replan - repro command planner",
	Long: `replan ingests a free-text problem description and a local repository and
produces a ranked, explainable list of candidate shell commands likely to
reproduce the reported issue, plus the assumptions and environment they need.
It never executes the suggested commands.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("replan version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "text",
		"Output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false,
		"Surface rule-provider load failures and debug logs")
}

// newLogger builds the per-invocation logger. Verbose mode lowers the level
// to debug; diagnostics always go to stderr so results stay on stdout.
func newLogger(cfg *config.Config) *logging.Logger {
	level := logging.LogLevel(cfg.Logging.Level)
	if verboseFlag || cfg.Verbose {
		level = logging.DebugLevel
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})
}
