package selection

import (
	"fmt"
	"sort"

	"github.com/mhoran/resumegen/internal/keywords"
	"github.com/mhoran/resumegen/internal/types"
)

// Select resolves a history document against a variant into a ContentSet.
// jobKeywords is optional; when present it widens keyword-based bullet
// inclusion beyond the variant's own emphasis keywords.
//
// Select is a pure transformation: identical inputs always yield a
// structurally identical ContentSet.
func Select(history *types.HistoryDocument, variant *types.VariantConfig, jobKeywords []string) (*types.ContentSet, error) {
	if history == nil {
		return nil, &Error{Message: "history document is nil"}
	}
	if variant == nil {
		return nil, &Error{Message: "variant config is nil"}
	}
	if variant.MaxBulletsPerEntry < 1 {
		return nil, &Error{Message: fmt.Sprintf("variant %q has no bullet capacity", variant.Name)}
	}

	skills := make(map[string][]string, len(variant.SkillCategories))
	categories := make([]string, 0, len(variant.SkillCategories))
	for _, category := range variant.SkillCategories {
		entries, ok := history.Skills[category]
		if !ok {
			return nil, &Error{
				Message: fmt.Sprintf("variant %q references skill category %q absent from history", variant.Name, category),
			}
		}
		categories = append(categories, category)
		skills[category] = append([]string(nil), entries...)
	}

	matchKeywords := make([]string, 0, len(variant.EmphasizeKeywords)+len(jobKeywords))
	matchKeywords = append(matchKeywords, variant.EmphasizeKeywords...)
	matchKeywords = append(matchKeywords, jobKeywords...)

	experience := make([]types.SelectedExperience, 0, len(history.Experience))
	for _, entry := range history.Experience {
		experience = append(experience, types.SelectedExperience{
			Company:   entry.Company,
			Title:     entry.Title,
			StartDate: entry.StartDate,
			EndDate:   entry.EndDate,
			Bullets:   selectBullets(entry.Bullets, variant.Name, matchKeywords, variant.MaxBulletsPerEntry),
		})
	}

	return &types.ContentSet{
		Variant:         variant.Name,
		Contact:         history.Contact,
		Summary:         resolveSummary(history, variant),
		SkillCategories: categories,
		Skills:          skills,
		Experience:      experience,
		Education:       append([]string(nil), history.Education...),
		Certifications:  append([]string(nil), history.Certifications...),
		Projects:        append([]string(nil), history.Projects...),
	}, nil
}

// resolveSummary prefers the variant's summary override and falls back to the
// base summary, which the history invariant guarantees to exist.
func resolveSummary(history *types.HistoryDocument, variant *types.VariantConfig) string {
	if variant.SummaryKey != "" {
		if override, ok := history.SummaryVariants[variant.SummaryKey]; ok && override != "" {
			return override
		}
	}
	return history.Summary
}

// selectBullets picks up to limit bullets from one experience entry, in three
// precedence phases:
//
//  1. bullets emphasized for this variant, in original order;
//  2. bullets matching an emphasis or job keyword, ranked by match coverage
//     descending with ties broken by original order;
//  3. remaining bullets in original order, filling leftover capacity.
//
// Phase 3 guarantees every entry carries min(limit, len(bullets)) bullets even
// when nothing matches.
func selectBullets(bullets []types.Bullet, variantName string, matchKeywords []string, limit int) []string {
	selected := make([]string, 0, limit)
	used := make([]bool, len(bullets))

	// Phase 1: explicit emphasis.
	for i, bullet := range bullets {
		if len(selected) == limit {
			break
		}
		if containsString(bullet.EmphasizeFor, variantName) {
			selected = append(selected, bullet.Text)
			used[i] = true
		}
	}

	// Phase 2: keyword coverage.
	if len(selected) < limit && len(matchKeywords) > 0 {
		type scored struct {
			index    int
			coverage float64
		}
		var candidates []scored
		for i, bullet := range bullets {
			if used[i] {
				continue
			}
			result := keywords.Match(bullet.Text, matchKeywords)
			if len(result.Matched) > 0 {
				candidates = append(candidates, scored{index: i, coverage: result.Coverage})
			}
		}
		sort.SliceStable(candidates, func(a, b int) bool {
			if candidates[a].coverage != candidates[b].coverage {
				return candidates[a].coverage > candidates[b].coverage
			}
			return candidates[a].index < candidates[b].index
		})
		for _, c := range candidates {
			if len(selected) == limit {
				break
			}
			selected = append(selected, bullets[c.index].Text)
			used[c.index] = true
		}
	}

	// Phase 3: fill remaining capacity in original order.
	for i, bullet := range bullets {
		if len(selected) == limit {
			break
		}
		if !used[i] {
			selected = append(selected, bullet.Text)
			used[i] = true
		}
	}

	return selected
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
