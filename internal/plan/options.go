// Package plan scores and ranks candidate repro commands from detected
// languages, extracted keywords, and the merged rule registry.
package plan

import (
	"fmt"

	"replan/internal/errors"
)

// Options control candidate filtering and truncation. Defaults are owned by
// the caller (config/CLI), not by this package.
type Options struct {
	// MinScore drops candidates scoring below it, after dedup.
	MinScore int
	// MaxSuggestions caps the ranked list, after sort/dedup/filter.
	MaxSuggestions int
	// Strict marks that the caller treats "no qualifying candidates" as
	// a hard failure. The core only reports the flag; fatality is the
	// caller's decision.
	Strict bool
}

// Validate fails fast on invalid caller configuration, before any scan
// work is performed.
func (o Options) Validate() error {
	if o.MinScore < 0 {
		return errors.New(errors.ConfigInvalid,
			fmt.Sprintf("min score must be >= 0, got %d", o.MinScore), nil)
	}
	if o.MaxSuggestions < 1 {
		return errors.New(errors.ConfigInvalid,
			fmt.Sprintf("max suggestions must be >= 1, got %d", o.MaxSuggestions), nil)
	}
	return nil
}
