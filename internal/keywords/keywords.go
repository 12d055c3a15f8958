// Package keywords normalizes free-form issue text into a canonical token
// set plus a normalized full text for literal-phrase checks.
package keywords

import (
	"sort"
	"strings"
)

// Set holds the extracted tokens and the normalized text they came from.
// Rule matching consults both: single-word keywords against the token set,
// multi-word phrases against the normalized text.
type Set struct {
	tokens map[string]bool
	text   string
}

// Normalize collapses whitespace runs to a single space, trims, and
// lowercases. It is idempotent.
func Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// Extract tokenizes free text. Chunks are split on commas and whitespace,
// stripped of characters outside [a-z0-9_-], and dropped when empty or
// purely numeric. Empty input yields an empty set; Extract never fails.
func Extract(text string) Set {
	normalized := Normalize(text)

	s := Set{tokens: make(map[string]bool), text: normalized}
	chunks := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == ','
	})
	for _, chunk := range chunks {
		token := cleanToken(chunk)
		if token == "" || isNumeric(token) {
			continue
		}
		s.tokens[token] = true
	}

	return s
}

// Has reports whether the exact token was extracted.
func (s Set) Has(token string) bool {
	return s.tokens[strings.ToLower(token)]
}

// ContainsPhrase reports whether the normalized phrase appears literally in
// the normalized source text.
func (s Set) ContainsPhrase(phrase string) bool {
	normalized := Normalize(phrase)
	if normalized == "" || s.text == "" {
		return false
	}
	return strings.Contains(s.text, normalized)
}

// Match answers a rule keyword: multi-word keywords are checked as literal
// phrases, single words against the token set.
func (s Set) Match(keyword string) bool {
	if strings.ContainsRune(strings.TrimSpace(keyword), ' ') {
		return s.ContainsPhrase(keyword)
	}
	return s.Has(strings.TrimSpace(keyword))
}

// Tokens returns the extracted tokens in alphabetical order.
func (s Set) Tokens() []string {
	out := make([]string, 0, len(s.tokens))
	for token := range s.tokens {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of extracted tokens.
func (s Set) Len() int {
	return len(s.tokens)
}

// Text returns the normalized full text.
func (s Set) Text() string {
	return s.text
}

func cleanToken(chunk string) string {
	var b strings.Builder
	for _, r := range chunk {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isNumeric(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(token) > 0
}
