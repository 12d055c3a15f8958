// Package config loads and validates replan configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvRuleProviders overrides the configured rule-provider list with an
// os.PathListSeparator-separated list of rule files.
const EnvRuleProviders = "REPLAN_RULES"

// Config represents the complete replan configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// MinScore and MaxSuggestions are the caller-owned defaults for plan
	// filtering and truncation; flags override them per invocation.
	MinScore       int `json:"minScore" mapstructure:"minScore"`
	MaxSuggestions int `json:"maxSuggestions" mapstructure:"maxSuggestions"`

	// RuleProviders is the ordered list of rule-file paths merged into
	// the registry after the builtins.
	RuleProviders []string `json:"ruleProviders" mapstructure:"ruleProviders"`

	// Verbose surfaces rule-provider load failures; default is a silent skip.
	Verbose bool `json:"verbose" mapstructure:"verbose"`

	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		MinScore:       1,
		MaxSuggestions: 5,
		RuleProviders:  []string{},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from .replan/config.json under the repo root,
// falling back to defaults when absent. The REPLAN_RULES environment
// variable, when set, replaces the configured provider list.
func Load(repoRoot string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("minScore", 1)
	v.SetDefault("maxSuggestions", 5)
	v.SetDefault("ruleProviders", []string{})
	v.SetDefault("verbose", false)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(repoRoot, ".replan"))

	cfg := DefaultConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	} else {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	// Explicit injection of the environment override keeps the core free
	// of ambient state: it is resolved once here, at the boundary.
	if env := os.Getenv(EnvRuleProviders); env != "" {
		cfg.RuleProviders = filepath.SplitList(env)
	}

	return cfg, nil
}

// Save writes the configuration to .replan/config.json
func (c *Config) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, ".replan")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.MinScore < 0 {
		return &ConfigError{Field: "minScore", Message: "must be >= 0"}
	}
	if c.MaxSuggestions < 1 {
		return &ConfigError{Field: "maxSuggestions", Message: "must be >= 1"}
	}
	for _, path := range c.RuleProviders {
		if strings.TrimSpace(path) == "" {
			return &ConfigError{Field: "ruleProviders", Message: "provider path must not be empty"}
		}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
