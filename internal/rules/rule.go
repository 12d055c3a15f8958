// Package rules holds the builtin command rules and merges in rules from
// externally supplied providers. The merged registry is built once at
// startup and is read-only afterwards, so concurrent plan requests can
// share it without locking.
package rules

import "replan/internal/evidence"

// Source identifies where a registered rule came from.
type Source string

const (
	SourceBuiltin  Source = "builtin"
	SourceProvider Source = "provider"
)

// Rule is a candidate command template with trigger keywords. Score is the
// provider-declared base score; it is carried for attribution and listing
// but does not enter the ranked bonus sum.
type Rule struct {
	Command  string   `json:"command" yaml:"command" toml:"command"`
	Keywords []string `json:"keywords" yaml:"keywords" toml:"keywords"`
	Score    int      `json:"score" yaml:"score" toml:"score"`
	Tags     []string `json:"tags,omitempty" yaml:"tags" toml:"tags"`
}

// Registered pairs a rule with the language scope and source it was
// registered under.
type Registered struct {
	Rule
	Language evidence.Language `json:"language"`
	Source   Source            `json:"source"`
}
