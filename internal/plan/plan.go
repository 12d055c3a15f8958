package plan

import (
	"fmt"
	"sort"

	"replan/internal/detect"
	"replan/internal/evidence"
	"replan/internal/keywords"
	"replan/internal/rules"
)

// Plan is the renderer-facing artifact for one request: the ranked
// candidates plus the assumptions and environment needs that go with them.
// Plans are built fresh per request and never persisted.
type Plan struct {
	Languages   []detect.Report `json:"languages"`
	Candidates  []Candidate     `json:"candidates"`
	Qualifies   bool            `json:"qualifies"`
	Assumptions []string        `json:"assumptions"`
	Environment []string        `json:"environment"`
}

// Request carries everything one plan computation needs. The registry is
// the only shared input; everything else is recomputed per request.
type Request struct {
	Root           string
	Text           string
	ForceLanguages []evidence.Language
	Options        Options
	Registry       *rules.Registry
}

// environmentNeeds maps a language to the toolchain a candidate for it
// assumes is present.
var environmentNeeds = map[string]string{
	string(evidence.LangCSharp): "dotnet SDK on PATH",
	string(evidence.LangGo):     "go toolchain on PATH",
	string(evidence.LangJava):   "JDK plus maven or gradle on PATH",
	string(evidence.LangNode):   "node and npm on PATH",
	string(evidence.LangPython): "python3 and pip on PATH",
	string(evidence.LangRust):   "cargo toolchain on PATH",
}

// Build runs the full pipeline: validate options, collect evidence, score
// languages, extract keywords, rank candidates, and assemble assumptions
// and environment needs.
func Build(req Request) (*Plan, error) {
	// Fail fast on caller misconfiguration before touching the filesystem.
	if err := req.Options.Validate(); err != nil {
		return nil, err
	}

	found := evidence.Collect(req.Root)
	reports := detect.Detect(found)

	detected := make(map[evidence.Language]bool, len(reports))
	active := make([]evidence.Language, 0, len(reports)+len(req.ForceLanguages))
	for _, report := range reports {
		detected[report.Language] = true
		active = append(active, report.Language)
	}
	for _, lang := range req.ForceLanguages {
		if !detected[lang] {
			active = append(active, lang)
		}
	}

	kw := keywords.Extract(req.Text)
	result, err := Rank(kw, active, req.Registry.For(active), req.Options)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Languages:   reports,
		Candidates:  result.Candidates,
		Qualifies:   result.Qualifies,
		Assumptions: assumptions(req, reports, detected, kw),
		Environment: environment(result.Candidates),
	}, nil
}

// assumptions spells out what the plan takes on faith so a reader can
// reject it early.
func assumptions(req Request, reports []detect.Report, detected map[evidence.Language]bool, kw keywords.Set) []string {
	var out []string
	if len(reports) == 0 {
		out = append(out, "no language indicators found in the repository root; relying on forced languages and keywords only")
	}
	for _, lang := range normalizeForced(req.ForceLanguages) {
		if !detected[lang] {
			out = append(out, fmt.Sprintf("language %s was forced without on-disk evidence", lang))
		}
	}
	if kw.Len() == 0 {
		out = append(out, "the problem description yielded no usable keywords")
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// environment lists the toolchains assumed by the languages behind the
// surviving candidates, alphabetically.
func environment(candidates []Candidate) []string {
	needed := make(map[string]bool)
	for _, cand := range candidates {
		for _, lang := range cand.Languages {
			if need, ok := environmentNeeds[lang]; ok {
				needed[need] = true
			}
		}
	}

	out := make([]string, 0, len(needed))
	for need := range needed {
		out = append(out, need)
	}
	sort.Strings(out)
	return out
}

func normalizeForced(langs []evidence.Language) []evidence.Language {
	seen := make(map[evidence.Language]bool, len(langs))
	out := make([]evidence.Language, 0, len(langs))
	for _, lang := range langs {
		if seen[lang] {
			continue
		}
		seen[lang] = true
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
