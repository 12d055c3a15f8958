// Package detect converts indicator evidence into weighted per-language
// confidence scores.
package detect

import (
	"sort"

	"replan/internal/evidence"
)

// Report is the scored view of one detected language.
type Report struct {
	Language evidence.Language `json:"language"`
	Score    int               `json:"score"`
	Reasons  []string          `json:"reasons"`
}

// Detect returns a report for every language whose evidence sums to a
// positive score. Languages are alphabetical and reasons within a language
// are alphabetical, so repeated runs on unchanged evidence are identical.
func Detect(found map[evidence.Language][]evidence.Evidence) []Report {
	reports := make([]Report, 0, len(found))
	for lang, items := range found {
		r := score(lang, items)
		if r.Score > 0 {
			reports = append(reports, r)
		}
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Language < reports[j].Language
	})

	return reports
}

// Languages returns just the detected-language set. It is derived from
// Detect so the plain and scored views can never diverge.
func Languages(found map[evidence.Language][]evidence.Evidence) []evidence.Language {
	reports := Detect(found)
	langs := make([]evidence.Language, 0, len(reports))
	for _, r := range reports {
		langs = append(langs, r.Language)
	}
	return langs
}

// score sums kind weights over unique (kind, indicator) pairs. The collector
// already deduplicates, but the scorer does not rely on that.
func score(lang evidence.Language, items []evidence.Evidence) Report {
	seen := make(map[string]bool, len(items))
	reasonSet := make(map[string]bool, len(items))
	total := 0

	for _, ev := range items {
		key := string(ev.Kind) + "\x00" + ev.Indicator
		if seen[key] {
			continue
		}
		seen[key] = true
		total += ev.Kind.Weight()
		reasonSet[ev.Indicator] = true
	}

	reasons := make([]string, 0, len(reasonSet))
	for reason := range reasonSet {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)

	return Report{Language: lang, Score: total, Reasons: reasons}
}
