package main

import (
	"time"

	"github.com/spf13/cobra"

	"replan/internal/detect"
	"replan/internal/evidence"
)

var detectScores bool

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Report the languages detected in a repository root",
	Long: `Scan only the immediate entries of a repository root for per-language
indicator files and report each detected language with the indicators that
matched.

Examples:
  replan detect                # scan the current directory
  replan detect ./service      # scan another root
  replan detect --scores       # include numeric confidence scores`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectScores, "scores", false, "Include numeric confidence scores")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	start := time.Now()
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	reports := detect.Detect(evidence.Collect(root))

	if formatFlag == "json" {
		return emitJSON(NewResponse(reports, measureDuration(start)))
	}
	renderDetectText(reports, detectScores)
	return nil
}
