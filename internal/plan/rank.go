package plan

import (
	"fmt"
	"sort"
	"strings"

	"replan/internal/evidence"
	"replan/internal/keywords"
	"replan/internal/output"
	"replan/internal/rules"
)

// Bonus values, summed per (language, rule) pair. Evaluation order is
// fixed; the rationale lists applicable bonuses as direct, lang, keyword,
// specific.
const (
	langBonus     = 2
	keywordBonus  = 1
	directBonus   = 3
	specificBonus = 1
)

// Candidate is a scored, ranked command suggestion.
type Candidate struct {
	Command         string   `json:"command"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	Languages       []string `json:"languages"`
	Source          string   `json:"source"`
	Rationale       []string `json:"rationale"`
}

// Result is the outcome of one ranking request. Qualifies is false exactly
// when the MinScore filter removed every scored candidate; an empty list
// with Qualifies=true means nothing matched at all (empty-but-successful).
type Result struct {
	Candidates []Candidate `json:"candidates"`
	Qualifies  bool        `json:"qualifies"`
}

// Rank scores every (language, rule) pair in the registry view against the
// extracted keywords, dedups by command string, filters, sorts, and
// truncates. All steps are pure functions of their inputs.
func Rank(kw keywords.Set, active []evidence.Language, view []rules.Registered, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	activeSet := make(map[evidence.Language]bool, len(active))
	for _, lang := range active {
		activeSet[lang] = true
	}

	// Stable ordering by language keeps the dedup tie-break deterministic:
	// language alphabetical first, registration order within a language.
	ordered := make([]rules.Registered, len(view))
	copy(ordered, view)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Language < ordered[j].Language
	})

	byCommand := make(map[string]*Candidate)
	var commands []string

	for _, reg := range ordered {
		cand := scorePair(kw, reg, activeSet[reg.Language])
		if cand.Score == 0 {
			continue
		}

		existing, ok := byCommand[cand.Command]
		if !ok {
			byCommand[cand.Command] = &cand
			commands = append(commands, cand.Command)
			continue
		}

		// Same command from another (language, rule) pair: remember the
		// extra language, keep the instance only if strictly better.
		langs := mergeLanguages(existing.Languages, cand.Languages)
		if cand.Score > existing.Score {
			cand.Languages = langs
			byCommand[cand.Command] = &cand
		} else {
			existing.Languages = langs
		}
	}

	pre := make([]Candidate, 0, len(commands))
	for _, command := range commands {
		pre = append(pre, *byCommand[command])
	}

	post := pre[:0:0]
	for _, cand := range pre {
		if cand.Score >= opts.MinScore {
			post = append(post, cand)
		}
	}

	qualifies := len(post) > 0 || len(pre) == 0

	if err := output.MultiFieldSort(&post, []output.SortCriteria{
		{Field: "Score", Descending: true},
		{Field: "Command"},
	}); err != nil {
		return Result{}, err
	}

	if len(post) > opts.MaxSuggestions {
		post = post[:opts.MaxSuggestions]
	}

	if post == nil {
		post = []Candidate{}
	}
	return Result{Candidates: post, Qualifies: qualifies}, nil
}

// scorePair applies the bonus table to one (language, rule) pair.
func scorePair(kw keywords.Set, reg rules.Registered, langActive bool) Candidate {
	matched := make([]string, 0, len(reg.Keywords))
	for _, keyword := range reg.Keywords {
		if kw.Match(keyword) {
			matched = append(matched, strings.ToLower(strings.TrimSpace(keyword)))
		}
	}
	sort.Strings(matched)
	direct := kw.ContainsPhrase(reg.Command)

	score := 0
	if langActive {
		score += langBonus
	}
	score += keywordBonus * len(matched)
	if direct {
		score += directBonus
	}
	if len(matched) > 1 {
		score += specificBonus
	}

	var rationale []string
	if direct {
		rationale = append(rationale,
			fmt.Sprintf("direct: command appears verbatim in the report (+%d)", directBonus))
	}
	if langActive {
		rationale = append(rationale,
			fmt.Sprintf("lang: %s is active (+%d)", reg.Language, langBonus))
	}
	if len(matched) > 0 {
		rationale = append(rationale,
			fmt.Sprintf("keyword: matched %s (+%d)", strings.Join(matched, ", "), keywordBonus*len(matched)))
	}
	if len(matched) > 1 {
		rationale = append(rationale,
			fmt.Sprintf("specific: more than one keyword matched (+%d)", specificBonus))
	}

	return Candidate{
		Command:         reg.Command,
		Score:           score,
		MatchedKeywords: matched,
		Languages:       []string{string(reg.Language)},
		Source:          string(reg.Source),
		Rationale:       rationale,
	}
}

// mergeLanguages unions two language lists, sorted alphabetically.
func mergeLanguages(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, lang := range append(append([]string{}, a...), b...) {
		if seen[lang] {
			continue
		}
		seen[lang] = true
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}
