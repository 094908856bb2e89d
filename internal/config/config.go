// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/mhoran/resumegen/internal/types"
)

// Defaults applied by ApplyDefaults when the corresponding field is unset.
const (
	DefaultNumGenerations = 3
	DefaultTimeoutSeconds = 120
	DefaultTemplate       = "markdown"
)

// Config is the run configuration loaded from a JSON file. Variant
// definitions are required; everything else has defaults or can be supplied
// via CLI flags and environment.
type Config struct {
	Variants []types.VariantConfig `json:"variants" validate:"required,min=1,dive"`

	// Weights for ATS compatibility scoring. A zero value means the
	// built-in defaults apply.
	CategoryWeights types.CategoryWeights `json:"category_weights,omitempty"`

	// Generation behavior. Pointer bools distinguish "unset" from "false"
	// so a config file can explicitly disable them.
	NumGenerations    int   `json:"num_generations,omitempty" validate:"omitempty,min=1,max=10"`
	JudgeEnabled      *bool `json:"judge_enabled,omitempty"`
	FallbackOnFailure *bool `json:"fallback_on_failure,omitempty"`
	TimeoutSeconds    int   `json:"timeout_seconds,omitempty" validate:"omitempty,min=1"`

	Template string `json:"template,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	Model    string `json:"model,omitempty"`
	Verbose  bool   `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file, applies defaults, and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.NumGenerations == 0 {
		c.NumGenerations = DefaultNumGenerations
	}
	if c.JudgeEnabled == nil {
		enabled := true
		c.JudgeEnabled = &enabled
	}
	if c.FallbackOnFailure == nil {
		enabled := true
		c.FallbackOnFailure = &enabled
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.CategoryWeights.IsZero() {
		c.CategoryWeights = types.DefaultCategoryWeights()
	}
}

// Validate checks struct constraints and variant name uniqueness.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if !c.CategoryWeights.IsZero() {
		for name, w := range map[string]int{
			"format_parsing":    c.CategoryWeights.FormatParsing,
			"keywords":          c.CategoryWeights.Keywords,
			"section_structure": c.CategoryWeights.SectionStructure,
			"contact_info":      c.CategoryWeights.ContactInfo,
			"readability":       c.CategoryWeights.Readability,
		} {
			if w < 0 {
				return fmt.Errorf("config error: category weight %s is negative", name)
			}
		}
		if c.CategoryWeights.Total() <= 0 {
			return fmt.Errorf("config error: category weights must sum to a positive total")
		}
	}

	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if seen[v.Name] {
			return fmt.Errorf("config error: duplicate variant name %q", v.Name)
		}
		seen[v.Name] = true
	}

	return nil
}

// Variant looks up a variant definition by name.
func (c *Config) Variant(name string) (*types.VariantConfig, error) {
	for i := range c.Variants {
		if c.Variants[i].Name == name {
			return &c.Variants[i], nil
		}
	}

	names := make([]string, 0, len(c.Variants))
	for _, v := range c.Variants {
		names = append(names, v.Name)
	}
	return nil, fmt.Errorf("unknown variant %q (available: %v)", name, names)
}
