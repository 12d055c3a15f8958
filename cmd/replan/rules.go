package main

import (
	"time"

	"github.com/spf13/cobra"

	"replan/internal/evidence"
	"replan/internal/logging"
	"replan/internal/rules"
)

var (
	rulesLangs     []string
	rulesProviders []string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the merged rule registry with source attribution",
	Long: `List the builtin command rules merged with any provider-supplied rules.
Provider rules whose command collides with a builtin for the same language
are shown but marked: the builtin instance always wins for scoring.

Examples:
  replan rules
  replan rules --lang python
  replan rules --rules extra.yaml --verbose`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringSliceVar(&rulesLangs, "lang", nil, "Restrict the listing to a language (repeatable)")
	rulesCmd.Flags().StringSliceVar(&rulesProviders, "rules", nil, "Additional rule-provider file (json/yaml/toml, repeatable)")
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	start := time.Now()

	langs := evidence.Languages()
	if len(rulesLangs) > 0 {
		parsed, err := parseLanguages(rulesLangs)
		if err != nil {
			return err
		}
		langs = parsed
	}

	var diagnostics *logging.Logger
	if verboseFlag {
		diagnostics = logging.NewLogger(logging.Config{
			Format: logging.HumanFormat,
			Level:  logging.DebugLevel,
		})
	}
	registry := rules.New(rules.FileProviders(rulesProviders), diagnostics)

	listing := registry.All(langs)
	if formatFlag == "json" {
		resp := NewResponse(listing, measureDuration(start))
		for _, failure := range registry.Failures() {
			resp.AddWarning("rule provider " + failure.Provider + " skipped: " + failure.Reason)
		}
		return emitJSON(resp)
	}
	renderRulesText(listing)
	return nil
}
