package plan

import (
	"reflect"
	"testing"

	"replan/internal/errors"
	"replan/internal/evidence"
	"replan/internal/keywords"
	"replan/internal/rules"
)

func reg(lang evidence.Language, command string, kws ...string) rules.Registered {
	return rules.Registered{
		Rule:     rules.Rule{Command: command, Keywords: kws, Score: 1},
		Language: lang,
		Source:   rules.SourceBuiltin,
	}
}

func defaultOpts() Options {
	return Options{MinScore: 1, MaxSuggestions: 10}
}

func TestRank_Bonuses(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		active    []evidence.Language
		view      []rules.Registered
		wantScore int
	}{
		{
			name:      "lang bonus only",
			text:      "something unrelated",
			active:    []evidence.Language{evidence.LangPython},
			view:      []rules.Registered{reg(evidence.LangPython, "pytest -q", "pytest")},
			wantScore: 2,
		},
		{
			name:      "lang plus one keyword",
			text:      "pytest tests failing",
			active:    []evidence.Language{evidence.LangPython},
			view:      []rules.Registered{reg(evidence.LangPython, "pytest -q", "pytest")},
			wantScore: 3,
		},
		{
			name:      "two keywords add specific bonus",
			text:      "pytest tests failing",
			active:    []evidence.Language{evidence.LangPython},
			view:      []rules.Registered{reg(evidence.LangPython, "pytest -q", "pytest", "failing")},
			wantScore: 5, // lang 2 + keywords 2 + specific 1
		},
		{
			name:      "direct command mention",
			text:      "running pytest -q reproduces it",
			active:    []evidence.Language{evidence.LangPython},
			view:      []rules.Registered{reg(evidence.LangPython, "pytest -q", "pytest")},
			wantScore: 6, // lang 2 + keyword 1 + direct 3
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Rank(keywords.Extract(tt.text), tt.active, tt.view, defaultOpts())
			if err != nil {
				t.Fatalf("Rank() error = %v", err)
			}
			if len(result.Candidates) != 1 {
				t.Fatalf("Rank() = %d candidates, want 1 (got %v)", len(result.Candidates), result.Candidates)
			}
			if got := result.Candidates[0].Score; got != tt.wantScore {
				t.Errorf("Rank() score = %d, want %d (rationale %v)", got, tt.wantScore, result.Candidates[0].Rationale)
			}
		})
	}
}

func TestRank_ZeroScoreExcluded(t *testing.T) {
	// Rule for a language outside the active set with no keyword match
	// scores 0 and must never appear, independent of MinScore.
	view := []rules.Registered{reg(evidence.LangRust, "cargo test", "cargo")}
	result, err := Rank(keywords.Extract("unrelated text"), []evidence.Language{evidence.LangPython}, view, Options{MinScore: 0, MaxSuggestions: 10})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(result.Candidates) != 0 {
		t.Errorf("Rank() = %v, want zero-scored rule excluded", result.Candidates)
	}
	if !result.Qualifies {
		t.Errorf("Rank() qualifies = false, want true for empty-but-successful result")
	}
}

func TestRank_DedupKeepsHighestScore(t *testing.T) {
	// "make test" registered for two languages; the rust instance matches
	// a keyword and must win.
	view := []rules.Registered{
		reg(evidence.LangPython, "make test"),
		reg(evidence.LangRust, "make test", "cargo"),
	}
	result, err := Rank(keywords.Extract("cargo issue"),
		[]evidence.Language{evidence.LangPython, evidence.LangRust}, view, defaultOpts())
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("Rank() = %d candidates, want 1 after dedup", len(result.Candidates))
	}
	cand := result.Candidates[0]
	if cand.Score != 3 {
		t.Errorf("Rank() dedup kept score %d, want 3 (highest instance)", cand.Score)
	}
	wantLangs := []string{"python", "rust"}
	if !reflect.DeepEqual(cand.Languages, wantLangs) {
		t.Errorf("Rank() languages = %v, want %v", cand.Languages, wantLangs)
	}
}

func TestRank_DedupTieBreaksByLanguage(t *testing.T) {
	// Equal scores: the alphabetically first language wins.
	view := []rules.Registered{
		reg(evidence.LangRust, "make build"),
		reg(evidence.LangGo, "make build"),
	}
	result, err := Rank(keywords.Extract(""),
		[]evidence.Language{evidence.LangGo, evidence.LangRust}, view, defaultOpts())
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("Rank() = %d candidates, want 1", len(result.Candidates))
	}
	// Winner rationale names the go instance
	found := false
	for _, line := range result.Candidates[0].Rationale {
		if line == "lang: go is active (+2)" {
			found = true
		}
	}
	if !found {
		t.Errorf("Rank() tie-break rationale = %v, want go instance to win", result.Candidates[0].Rationale)
	}
}

func TestRank_TotalOrder(t *testing.T) {
	view := []rules.Registered{
		reg(evidence.LangGo, "go vet ./..."),
		reg(evidence.LangGo, "go build ./..."),
		reg(evidence.LangGo, "go test ./...", "test"),
	}
	result, err := Rank(keywords.Extract("test broke"), []evidence.Language{evidence.LangGo}, view, defaultOpts())
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	got := make([]string, 0, len(result.Candidates))
	for _, cand := range result.Candidates {
		got = append(got, cand.Command)
	}
	// go test scores 3; the two score-2 candidates sort by command ascending.
	want := []string{"go test ./...", "go build ./...", "go vet ./..."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() order = %v, want %v", got, want)
	}
}

func TestRank_MinScoreMonotonic(t *testing.T) {
	view := []rules.Registered{
		reg(evidence.LangPython, "pytest -q", "pytest", "failing"),
		reg(evidence.LangPython, "tox"),
		reg(evidence.LangPython, "mypy .", "mypy"),
	}
	kw := keywords.Extract("pytest failing with mypy errors")
	active := []evidence.Language{evidence.LangPython}

	prev := -1
	for minScore := 0; minScore <= 8; minScore++ {
		result, err := Rank(kw, active, view, Options{MinScore: minScore, MaxSuggestions: 10})
		if err != nil {
			t.Fatalf("Rank(minScore=%d) error = %v", minScore, err)
		}
		count := len(result.Candidates)
		if prev >= 0 && count > prev {
			t.Errorf("Rank() count increased from %d to %d when minScore rose to %d", prev, count, minScore)
		}
		prev = count
	}
}

func TestRank_QualifiesFalseWhenFilterEmpties(t *testing.T) {
	view := []rules.Registered{reg(evidence.LangPython, "pytest -q", "pytest")}
	result, err := Rank(keywords.Extract("pytest failing"),
		[]evidence.Language{evidence.LangPython}, view, Options{MinScore: 10, MaxSuggestions: 5})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if result.Qualifies {
		t.Errorf("Rank() qualifies = true, want false when filter removed all candidates")
	}
	if len(result.Candidates) != 0 {
		t.Errorf("Rank() = %v, want empty candidate list", result.Candidates)
	}
}

func TestRank_Truncation(t *testing.T) {
	view := []rules.Registered{
		reg(evidence.LangGo, "go build ./..."),
		reg(evidence.LangGo, "go test ./..."),
		reg(evidence.LangGo, "go vet ./..."),
	}
	result, err := Rank(keywords.Extract(""), []evidence.Language{evidence.LangGo}, view,
		Options{MinScore: 1, MaxSuggestions: 2})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(result.Candidates) != 2 {
		t.Errorf("Rank() = %d candidates, want truncation to 2", len(result.Candidates))
	}
}

func TestRank_RationaleOrder(t *testing.T) {
	view := []rules.Registered{reg(evidence.LangPython, "pytest -q", "pytest", "failing")}
	result, err := Rank(keywords.Extract("pytest -q keeps failing"),
		[]evidence.Language{evidence.LangPython}, view, defaultOpts())
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	rationale := result.Candidates[0].Rationale
	want := []string{
		"direct: command appears verbatim in the report (+3)",
		"lang: python is active (+2)",
		"keyword: matched failing, pytest (+2)",
		"specific: more than one keyword matched (+1)",
	}
	if !reflect.DeepEqual(rationale, want) {
		t.Errorf("Rank() rationale = %v, want %v", rationale, want)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid", Options{MinScore: 0, MaxSuggestions: 1}, false},
		{"negative min score", Options{MinScore: -1, MaxSuggestions: 5}, true},
		{"zero max suggestions", Options{MinScore: 1, MaxSuggestions: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.CodeOf(err) != errors.ConfigInvalid {
				t.Errorf("Validate() code = %s, want CONFIG_INVALID", errors.CodeOf(err))
			}
		})
	}
}
