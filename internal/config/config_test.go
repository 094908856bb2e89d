package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoran/resumegen/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `{
	"variants": [
		{
			"name": "backend",
			"summary_key": "backend",
			"skill_categories": ["Languages", "Infrastructure"],
			"max_bullets_per_entry": 3
		}
	]
}`

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, DefaultNumGenerations, cfg.NumGenerations)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Equal(t, DefaultTemplate, cfg.Template)
	require.NotNil(t, cfg.JudgeEnabled)
	assert.True(t, *cfg.JudgeEnabled)
	require.NotNil(t, cfg.FallbackOnFailure)
	assert.True(t, *cfg.FallbackOnFailure)
	assert.Equal(t, types.DefaultCategoryWeights(), cfg.CategoryWeights)
}

func TestLoadConfig_ExplicitFalseSurvivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{
		"variants": [
			{"name": "backend", "skill_categories": ["Languages"], "max_bullets_per_entry": 2}
		],
		"judge_enabled": false,
		"fallback_on_failure": false
	}`))
	require.NoError(t, err)

	require.NotNil(t, cfg.JudgeEnabled)
	assert.False(t, *cfg.JudgeEnabled)
	require.NotNil(t, cfg.FallbackOnFailure)
	assert.False(t, *cfg.FallbackOnFailure)
}

func TestLoadConfig_NoVariants(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"variants": []}`))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidVariant(t *testing.T) {
	// max_bullets_per_entry missing (zero) fails validation.
	_, err := LoadConfig(writeConfig(t, `{
		"variants": [{"name": "backend", "skill_categories": ["Languages"]}]
	}`))
	assert.Error(t, err)
}

func TestValidate_DuplicateVariantNames(t *testing.T) {
	cfg := &Config{
		Variants: []types.VariantConfig{
			{Name: "backend", SkillCategories: []string{"Languages"}, MaxBulletsPerEntry: 3},
			{Name: "backend", SkillCategories: []string{"Languages"}, MaxBulletsPerEntry: 3},
		},
	}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate variant name")
}

func TestValidate_RejectsBadCategoryWeights(t *testing.T) {
	base := func() *Config {
		cfg := &Config{
			Variants: []types.VariantConfig{
				{Name: "backend", SkillCategories: []string{"Languages"}, MaxBulletsPerEntry: 3},
			},
		}
		cfg.ApplyDefaults()
		return cfg
	}

	cfg := base()
	cfg.CategoryWeights.Keywords = -5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")

	cfg = base()
	cfg.CategoryWeights = types.CategoryWeights{}
	// Zero weights mean defaults; ApplyDefaults normally fills them, but a
	// zeroed struct passed directly must still validate.
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestConfig_Variant(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	v, err := cfg.Variant("backend")
	require.NoError(t, err)
	assert.Equal(t, "backend", v.Name)
	assert.Equal(t, 3, v.MaxBulletsPerEntry)

	_, err = cfg.Variant("frontend")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}
