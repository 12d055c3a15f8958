package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"replan/internal/evidence"
)

// Provider supplies additional rules keyed by language. A provider that
// fails to load is skipped in isolation; it never affects other providers
// or the builtins.
type Provider interface {
	// Name identifies the provider in diagnostics.
	Name() string
	// Provide returns the provider's rules, keyed by language.
	Provide() (map[evidence.Language][]Rule, error)
}

// FileProvider loads rules from a JSON, YAML, or TOML file on disk. Each
// file decodes to a mapping of language name to rule list.
type FileProvider struct {
	Path string
}

// Name identifies the provider by its file path.
func (p FileProvider) Name() string {
	return p.Path
}

// Provide reads and decodes the rule file. Any read or decode failure, an
// unknown language key, or a rule without a command is a load failure for
// the whole file.
func (p FileProvider) Provide() (map[evidence.Language][]Rule, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, err
	}

	raw := map[string][]Rule{}
	switch ext := strings.ToLower(filepath.Ext(p.Path)); ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported rule file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.Path, err)
	}

	out := make(map[evidence.Language][]Rule, len(raw))
	for name, ruleList := range raw {
		lang := evidence.Language(strings.ToLower(strings.TrimSpace(name)))
		if !evidence.Known(lang) {
			return nil, fmt.Errorf("unknown language %q in %s", name, p.Path)
		}
		for _, r := range ruleList {
			if strings.TrimSpace(r.Command) == "" {
				return nil, fmt.Errorf("rule with empty command for %q in %s", name, p.Path)
			}
		}
		out[lang] = append(out[lang], ruleList...)
	}

	return out, nil
}

// FileProviders builds providers for an ordered list of rule-file paths.
func FileProviders(paths []string) []Provider {
	providers := make([]Provider, 0, len(paths))
	for _, path := range paths {
		providers = append(providers, FileProvider{Path: path})
	}
	return providers
}
