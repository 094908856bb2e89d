// Package ats estimates how well a rendered document survives automated
// resume screening. Five independently-scored categories combine into a
// weighted compatibility score with ordered remediation suggestions.
package ats

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/mhoran/resumegen/internal/keywords"
	"github.com/mhoran/resumegen/internal/types"
)

// Category names as they appear in reports.
const (
	CategoryFormatParsing    = "format_parsing"
	CategoryKeywords         = "keywords"
	CategorySectionStructure = "section_structure"
	CategoryContactInfo      = "contact_info"
	CategoryReadability      = "readability"
)

// Scorer scores rendered documents against job descriptions. The keyword
// extractor is chosen at construction time: LLM-backed when a completion
// client is available, regex otherwise. A failing LLM extractor degrades to
// the regex extractor inside Score, so keyword scoring always produces a
// usable result.
type Scorer struct {
	extractor keywords.Extractor
}

// NewScorer creates a Scorer using the given keyword extractor. A nil
// extractor means regex extraction.
func NewScorer(extractor keywords.Extractor) *Scorer {
	if extractor == nil {
		extractor = keywords.NewRegexExtractor()
	}
	return &Scorer{extractor: extractor}
}

// Score produces the compatibility report for a rendered document. Zero-value
// weights fall back to the default 20/30/20/15/15 split. Each category score
// lies in [0, weight] and the total never exceeds the weight sum.
func (s *Scorer) Score(ctx context.Context, document, jobDescription string, weights types.CategoryWeights) (*types.ScoreReport, error) {
	if weights.IsZero() {
		weights = types.DefaultCategoryWeights()
	}
	if err := validateWeights(weights); err != nil {
		return nil, err
	}

	jobKeywords, err := s.extractor.Extract(ctx, jobDescription)
	if err != nil || len(jobKeywords) == 0 {
		// The regex extractor is the mandated always-usable fallback.
		jobKeywords = keywords.ExtractRegex(jobDescription)
	}

	categories := []types.CategoryScore{
		checkFormatParsing(document, weights.FormatParsing),
		checkKeywords(document, jobKeywords, weights.Keywords),
		checkSectionStructure(document, weights.SectionStructure),
		checkContactInfo(document, weights.ContactInfo),
		checkReadability(document, weights.Readability),
	}

	total := 0
	for _, cat := range categories {
		total += cat.PointsEarned
	}

	report := &types.ScoreReport{
		TotalScore:    total,
		TotalPossible: weights.Total(),
		Categories:    categories,
		Suggestions:   collectSuggestions(categories),
	}
	report.Summary = summarize(report.Percentage())
	return report, nil
}

// validateWeights rejects negative category weights and an empty total.
func validateWeights(w types.CategoryWeights) error {
	for name, v := range map[string]int{
		CategoryFormatParsing:    w.FormatParsing,
		CategoryKeywords:         w.Keywords,
		CategorySectionStructure: w.SectionStructure,
		CategoryContactInfo:      w.ContactInfo,
		CategoryReadability:      w.Readability,
	} {
		if v < 0 {
			return fmt.Errorf("ats: negative weight for category %s", name)
		}
	}
	if w.Total() == 0 {
		return fmt.Errorf("ats: category weights sum to zero")
	}
	return nil
}

// points converts a fraction in [0,1] into whole points against a weight,
// clamped to [0, weight].
func points(fraction float64, weight int) int {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return int(math.Round(fraction * float64(weight)))
}

// collectSuggestions orders every category's suggestions by recoverable
// points descending, so the first entry is always the highest-leverage fix.
func collectSuggestions(categories []types.CategoryScore) []types.Suggestion {
	var suggestions []types.Suggestion
	for _, cat := range categories {
		recoverable := cat.PointsPossible - cat.PointsEarned
		for _, text := range cat.Suggestions {
			suggestions = append(suggestions, types.Suggestion{
				Text:              text,
				Category:          cat.Name,
				RecoverablePoints: recoverable,
			})
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].RecoverablePoints > suggestions[j].RecoverablePoints
	})
	return suggestions
}

func summarize(percentage float64) string {
	switch {
	case percentage >= 85:
		return "Excellent: the resume is highly ATS-optimized."
	case percentage >= 70:
		return "Good: the resume is ATS-friendly with room for improvement."
	case percentage >= 50:
		return "Fair: some optimizations are needed for better ATS compatibility."
	default:
		return "Poor: the resume needs significant ATS optimization."
	}
}
