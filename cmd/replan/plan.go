package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"replan/internal/config"
	"replan/internal/errors"
	"replan/internal/evidence"
	"replan/internal/logging"
	"replan/internal/plan"
	"replan/internal/rules"
)

var (
	planText           string
	planTextFile       string
	planLangs          []string
	planMinScore       int
	planMaxSuggestions int
	planStrict         bool
	planRules          []string
)

var planCmd = &cobra.Command{
	Use:   "plan [path]",
	Short: "Rank candidate commands to reproduce a reported issue",
	Long: `Scan a repository root for language indicators, extract keywords from the
problem description, and rank the candidate shell commands most likely to
reproduce the issue. Commands are suggested, never executed.

Examples:
  replan plan --text "pytest tests failing"
  replan plan ./service --text-file issue.txt --strict
  replan plan --text "npm build broken" --lang node --min-score 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planText, "text", "", "Problem description text")
	planCmd.Flags().StringVar(&planTextFile, "text-file", "", "File containing the problem description")
	planCmd.Flags().StringSliceVar(&planLangs, "lang", nil, "Force-include a language even without on-disk evidence (repeatable)")
	planCmd.Flags().IntVar(&planMinScore, "min-score", 1, "Minimum candidate score")
	planCmd.Flags().IntVar(&planMaxSuggestions, "max-suggestions", 5, "Maximum number of candidates")
	planCmd.Flags().BoolVar(&planStrict, "strict", false, "Fail when no candidate meets the minimum score")
	planCmd.Flags().StringSliceVar(&planRules, "rules", nil, "Additional rule-provider file (json/yaml/toml, repeatable)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	start := time.Now()
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := config.Load(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = planMinScore
	}
	if cmd.Flags().Changed("max-suggestions") {
		cfg.MaxSuggestions = planMaxSuggestions
	}
	if len(planRules) > 0 {
		cfg.RuleProviders = planRules
	}

	// Fail fast on configuration misuse before any scan work.
	if err := cfg.Validate(); err != nil {
		return errors.New(errors.ConfigInvalid, "invalid configuration", err)
	}

	forced, err := parseLanguages(planLangs)
	if err != nil {
		return err
	}

	text := planText
	if planTextFile != "" {
		data, err := os.ReadFile(planTextFile)
		if err != nil {
			return errors.New(errors.TextUnreadable, "failed to read problem description", err)
		}
		text = string(data)
	}

	logger := newLogger(cfg)
	var diagnostics *logging.Logger
	if verboseFlag || cfg.Verbose {
		diagnostics = logger
	}
	registry := rules.New(rules.FileProviders(cfg.RuleProviders), diagnostics)

	result, err := plan.Build(plan.Request{
		Root:           root,
		Text:           text,
		ForceLanguages: forced,
		Options: plan.Options{
			MinScore:       cfg.MinScore,
			MaxSuggestions: cfg.MaxSuggestions,
			Strict:         planStrict,
		},
		Registry: registry,
	})
	if err != nil {
		return err
	}

	resp := NewResponse(result, measureDuration(start))
	for _, failure := range registry.Failures() {
		resp.AddWarning(fmt.Sprintf("rule provider %s skipped: %s", failure.Provider, failure.Reason))
	}

	if formatFlag == "json" {
		if err := emitJSON(resp); err != nil {
			return err
		}
	} else {
		renderPlanText(result, resp.Warnings)
	}

	// Strict mode turns the typed "no qualifying candidates" outcome into
	// a hard failure; lenient callers just see qualifies=false.
	if planStrict && !result.Qualifies {
		return fmt.Errorf("no qualifying candidates above min score %d", cfg.MinScore)
	}
	return nil
}

// parseLanguages validates --lang values against the supported set.
func parseLanguages(names []string) ([]evidence.Language, error) {
	langs := make([]evidence.Language, 0, len(names))
	for _, name := range names {
		lang := evidence.Language(name)
		if !evidence.Known(lang) {
			return nil, errors.New(errors.ConfigInvalid,
				fmt.Sprintf("unknown language %q (supported: csharp, go, java, node, python, rust)", name), nil)
		}
		langs = append(langs, lang)
	}
	return langs, nil
}
