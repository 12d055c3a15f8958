package main

import (
	"fmt"
	"strings"

	"replan/internal/detect"
	"replan/internal/plan"
	"replan/internal/rules"
)

// renderPlanText formats a plan in human-readable form
func renderPlanText(p *plan.Plan, warnings []string) {
	fmt.Print(formatPlanHuman(p, warnings))
}

func formatPlanHuman(p *plan.Plan, warnings []string) string {
	var b strings.Builder

	if len(p.Languages) == 0 {
		b.WriteString("Detected languages: none\n")
	} else {
		names := make([]string, 0, len(p.Languages))
		for _, report := range p.Languages {
			names = append(names, string(report.Language))
		}
		b.WriteString("Detected languages: " + strings.Join(names, ", ") + "\n")
	}
	b.WriteString("\n")

	if len(p.Candidates) == 0 {
		if p.Qualifies {
			b.WriteString("No candidate commands matched.\n")
		} else {
			b.WriteString("No candidates met the minimum score.\n")
		}
	} else {
		b.WriteString("Candidates:\n")
		for i, cand := range p.Candidates {
			b.WriteString(fmt.Sprintf("%d. %s  [score %d]\n", i+1, cand.Command, cand.Score))
			if len(cand.MatchedKeywords) > 0 {
				b.WriteString("   keywords: " + strings.Join(cand.MatchedKeywords, ", ") + "\n")
			}
			if len(cand.Rationale) > 0 {
				b.WriteString("   why: " + strings.Join(cand.Rationale, "; ") + "\n")
			}
		}
	}

	if len(p.Assumptions) > 0 {
		b.WriteString("\nAssumptions:\n")
		for _, assumption := range p.Assumptions {
			b.WriteString("  - " + assumption + "\n")
		}
	}
	if len(p.Environment) > 0 {
		b.WriteString("\nEnvironment:\n")
		for _, need := range p.Environment {
			b.WriteString("  - " + need + "\n")
		}
	}
	if len(warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, warning := range warnings {
			b.WriteString("  - " + warning + "\n")
		}
	}

	return b.String()
}

// renderDetectText formats a language report in human-readable form
func renderDetectText(reports []detect.Report, withScores bool) {
	fmt.Print(formatDetectHuman(reports, withScores))
}

func formatDetectHuman(reports []detect.Report, withScores bool) string {
	if len(reports) == 0 {
		return "No languages detected.\n"
	}

	var b strings.Builder
	for _, report := range reports {
		if withScores {
			b.WriteString(fmt.Sprintf("%s (score %d): %s\n",
				report.Language, report.Score, strings.Join(report.Reasons, ", ")))
		} else {
			b.WriteString(fmt.Sprintf("%s: %s\n",
				report.Language, strings.Join(report.Reasons, ", ")))
		}
	}
	return b.String()
}

// renderRulesText formats a registry listing in human-readable form
func renderRulesText(listing []rules.Registered) {
	fmt.Print(formatRulesHuman(listing))
}

func formatRulesHuman(listing []rules.Registered) string {
	if len(listing) == 0 {
		return "No rules registered.\n"
	}

	var b strings.Builder
	current := ""
	for _, reg := range listing {
		if string(reg.Language) != current {
			current = string(reg.Language)
			b.WriteString(current + ":\n")
		}
		b.WriteString(fmt.Sprintf("  %-40s [%s] keywords: %s\n",
			reg.Command, reg.Source, strings.Join(reg.Keywords, ", ")))
	}
	return b.String()
}
