package types

// VariantConfig is a named targeting profile controlling which content is
// selected from the history document. Variants are defined statically as
// configuration and are read-only at generation time.
type VariantConfig struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description,omitempty"`
	SummaryKey         string   `json:"summary_key,omitempty"`
	SkillCategories    []string `json:"skill_categories" validate:"required,min=1"`
	MaxBulletsPerEntry int      `json:"max_bullets_per_entry" validate:"required,min=1"`
	EmphasizeKeywords  []string `json:"emphasize_keywords,omitempty"`
}
