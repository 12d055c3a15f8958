package rules

import (
	"sort"

	"replan/internal/evidence"
	"replan/internal/logging"
)

// LoadFailure records one provider that could not be loaded.
type LoadFailure struct {
	Provider string `json:"provider"`
	Reason   string `json:"reason"`
}

// Registry merges builtin rules with provider rules. Build it once at
// process start; it is read-only afterwards.
type Registry struct {
	byLang   map[evidence.Language][]Registered
	failures []LoadFailure
}

// New builds a registry from the builtins plus the given providers, in
// order. Provider failures are isolated: a provider that cannot be loaded
// is recorded and skipped. They are logged only when a logger is supplied
// (the verbose-diagnostics toggle); the default is a silent skip.
func New(providers []Provider, logger *logging.Logger) *Registry {
	r := &Registry{byLang: make(map[evidence.Language][]Registered)}

	for _, lang := range evidence.Languages() {
		for _, rule := range builtins[lang] {
			r.byLang[lang] = append(r.byLang[lang], Registered{
				Rule:     rule,
				Language: lang,
				Source:   SourceBuiltin,
			})
		}
	}

	for _, provider := range providers {
		provided, err := provider.Provide()
		if err != nil {
			r.failures = append(r.failures, LoadFailure{
				Provider: provider.Name(),
				Reason:   err.Error(),
			})
			if logger != nil {
				logger.Warn("rule provider skipped", map[string]interface{}{
					"provider": provider.Name(),
					"error":    err.Error(),
				})
			}
			continue
		}

		// Iterate languages in fixed order so registration order does
		// not depend on map iteration.
		for _, lang := range evidence.Languages() {
			for _, rule := range provided[lang] {
				r.byLang[lang] = append(r.byLang[lang], Registered{
					Rule:     rule,
					Language: lang,
					Source:   SourceProvider,
				})
			}
		}
	}

	return r
}

// For returns the effective rules for the requested languages: builtins
// first, then provider rules in load order. A provider rule whose command
// exactly collides with a builtin command for the same language is shadowed
// by the builtin, independent of provider load order. The requested set may
// include languages that were never detected (explicit force-include).
func (r *Registry) For(langs []evidence.Language) []Registered {
	var out []Registered
	for _, lang := range normalizeLangs(langs) {
		builtinCommands := make(map[string]bool)
		for _, reg := range r.byLang[lang] {
			if reg.Source == SourceBuiltin {
				builtinCommands[reg.Command] = true
			}
		}
		for _, reg := range r.byLang[lang] {
			if reg.Source == SourceProvider && builtinCommands[reg.Command] {
				continue
			}
			out = append(out, reg)
		}
	}
	return out
}

// All returns every registered rule for the requested languages, including
// provider rules shadowed by builtin collisions, for attribution listings.
func (r *Registry) All(langs []evidence.Language) []Registered {
	var out []Registered
	for _, lang := range normalizeLangs(langs) {
		out = append(out, r.byLang[lang]...)
	}
	return out
}

// Failures returns provider load failures in load order.
func (r *Registry) Failures() []LoadFailure {
	return r.failures
}

// normalizeLangs sorts and deduplicates the requested language set so
// registry views are deterministic regardless of caller ordering.
func normalizeLangs(langs []evidence.Language) []evidence.Language {
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
