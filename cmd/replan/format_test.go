package main

import (
	"strings"
	"testing"

	"replan/internal/detect"
	"replan/internal/evidence"
	"replan/internal/plan"
	"replan/internal/rules"
)

func TestFormatPlanHuman(t *testing.T) {
	p := &plan.Plan{
		Languages: []detect.Report{
			{Language: evidence.LangPython, Score: 3, Reasons: []string{"pyproject.toml"}},
		},
		Candidates: []plan.Candidate{
			{
				Command:         "pytest -q",
				Score:           3,
				MatchedKeywords: []string{"pytest"},
				Languages:       []string{"python"},
				Source:          "builtin",
				Rationale:       []string{"lang: python is active (+2)", "keyword: matched pytest (+1)"},
			},
		},
		Qualifies:   true,
		Assumptions: []string{"language node was forced without on-disk evidence"},
		Environment: []string{"python3 and pip on PATH"},
	}

	got := formatPlanHuman(p, []string{"rule provider extra.yaml skipped: boom"})

	for _, want := range []string{
		"Detected languages: python",
		"1. pytest -q  [score 3]",
		"keywords: pytest",
		"why: lang: python is active (+2); keyword: matched pytest (+1)",
		"Assumptions:",
		"Environment:",
		"Warnings:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatPlanHuman() missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatPlanHuman_EmptyOutcomes(t *testing.T) {
	qualified := formatPlanHuman(&plan.Plan{Qualifies: true}, nil)
	if !strings.Contains(qualified, "No candidate commands matched.") {
		t.Errorf("formatPlanHuman() = %q, want empty-but-successful wording", qualified)
	}

	filtered := formatPlanHuman(&plan.Plan{Qualifies: false}, nil)
	if !strings.Contains(filtered, "No candidates met the minimum score.") {
		t.Errorf("formatPlanHuman() = %q, want min-score wording", filtered)
	}
}

func TestFormatDetectHuman(t *testing.T) {
	reports := []detect.Report{
		{Language: evidence.LangNode, Score: 7, Reasons: []string{"package.json", "pnpm-lock.yaml"}},
	}

	plain := formatDetectHuman(reports, false)
	if !strings.Contains(plain, "node: package.json, pnpm-lock.yaml") {
		t.Errorf("formatDetectHuman() = %q", plain)
	}
	if strings.Contains(plain, "score") {
		t.Errorf("formatDetectHuman() without scores shows scores: %q", plain)
	}

	scored := formatDetectHuman(reports, true)
	if !strings.Contains(scored, "node (score 7): package.json, pnpm-lock.yaml") {
		t.Errorf("formatDetectHuman(scores) = %q", scored)
	}

	if got := formatDetectHuman(nil, false); got != "No languages detected.\n" {
		t.Errorf("formatDetectHuman(nil) = %q", got)
	}
}

func TestFormatRulesHuman(t *testing.T) {
	listing := []rules.Registered{
		{
			Rule:     rules.Rule{Command: "pytest -q", Keywords: []string{"pytest", "test"}},
			Language: evidence.LangPython,
			Source:   rules.SourceBuiltin,
		},
		{
			Rule:     rules.Rule{Command: "pytest -vv", Keywords: []string{"verbose"}},
			Language: evidence.LangPython,
			Source:   rules.SourceProvider,
		},
	}

	got := formatRulesHuman(listing)
	if !strings.Contains(got, "python:") {
		t.Errorf("formatRulesHuman() missing language header: %q", got)
	}
	if !strings.Contains(got, "[builtin]") || !strings.Contains(got, "[provider]") {
		t.Errorf("formatRulesHuman() missing source attribution: %q", got)
	}
}

func TestParseLanguages(t *testing.T) {
	langs, err := parseLanguages([]string{"python", "node"})
	if err != nil {
		t.Fatalf("parseLanguages() error = %v", err)
	}
	if len(langs) != 2 {
		t.Errorf("parseLanguages() = %v, want 2 languages", langs)
	}

	if _, err := parseLanguages([]string{"cobol"}); err == nil {
		t.Errorf("parseLanguages(cobol) = nil error, want error")
	}
}
