package ats

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoran/resumegen/internal/types"
)

const goodResume = `# Jane Doe

jane@example.com | +1 (555) 010-0100 | linkedin.com/in/janedoe

## Summary

Backend engineer focused on distributed systems.

## Skills

- **Languages**: Go, Python
- **Infrastructure**: Kubernetes, Docker

## Experience

### Senior Engineer — Acme Corp

2019-03 – Present

- Built the billing pipeline processing 2 million records daily.
- Reduced infrastructure costs by 40%.
- Led a team of 5 engineers.

## Education

- BS Computer Science, State University, 2012
`

const jobDescription = "Looking for a Go engineer with Kubernetes and GraphQL experience."

// fixedExtractor returns a canned keyword list or error.
type fixedExtractor struct {
	keywords []string
	err      error
}

func (f *fixedExtractor) Extract(_ context.Context, _ string) ([]string, error) {
	return f.keywords, f.err
}

func TestScore_GoodResume(t *testing.T) {
	scorer := NewScorer(&fixedExtractor{keywords: []string{"go", "kubernetes", "graphql"}})

	report, err := scorer.Score(context.Background(), goodResume, jobDescription, types.CategoryWeights{})
	require.NoError(t, err)

	assert.Equal(t, 100, report.TotalPossible)
	assert.Greater(t, report.TotalScore, 60)
	assert.NotEmpty(t, report.Summary)
	require.Len(t, report.Categories, 5)

	var kw types.CategoryScore
	for _, cat := range report.Categories {
		if cat.Name == CategoryKeywords {
			kw = cat
		}
	}
	assert.ElementsMatch(t, []string{"go", "kubernetes"}, kw.MatchedKeywords)
	assert.Equal(t, []string{"graphql"}, kw.MissingKeywords)
}

func TestScore_BoundsHoldForAnyDocument(t *testing.T) {
	scorer := NewScorer(nil)

	for _, doc := range []string{
		"",
		"word",
		goodResume,
		strings.Repeat("| a | b |\n", 40) + strings.Repeat("◆", 100),
		strings.Repeat("AAAA BBBB CCCC ", 50),
	} {
		report, err := scorer.Score(context.Background(), doc, jobDescription, types.CategoryWeights{})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, report.TotalScore, 0)
		assert.LessOrEqual(t, report.TotalScore, report.TotalPossible)
		for _, cat := range report.Categories {
			assert.GreaterOrEqual(t, cat.PointsEarned, 0)
			assert.LessOrEqual(t, cat.PointsEarned, cat.PointsPossible)
		}
	}
}

func TestScore_SuggestionsOrderedByRecoverablePoints(t *testing.T) {
	scorer := NewScorer(&fixedExtractor{keywords: []string{"graphql", "terraform", "scala"}})

	// A document failing most checks produces suggestions in every category.
	report, err := scorer.Score(context.Background(), "just some text without structure", jobDescription, types.CategoryWeights{})
	require.NoError(t, err)
	require.NotEmpty(t, report.Suggestions)

	for i := 1; i < len(report.Suggestions); i++ {
		assert.GreaterOrEqual(t,
			report.Suggestions[i-1].RecoverablePoints,
			report.Suggestions[i].RecoverablePoints)
	}
}

func TestScore_ExtractorFailureDegradesToRegex(t *testing.T) {
	scorer := NewScorer(&fixedExtractor{err: errors.New("llm down")})

	report, err := scorer.Score(context.Background(), goodResume, jobDescription, types.CategoryWeights{})
	require.NoError(t, err)

	var kw types.CategoryScore
	for _, cat := range report.Categories {
		if cat.Name == CategoryKeywords {
			kw = cat
		}
	}
	// Regex extraction still finds the posting's tech terms.
	assert.NotEmpty(t, kw.MatchedKeywords)
}

func TestScore_CustomWeights(t *testing.T) {
	scorer := NewScorer(&fixedExtractor{keywords: []string{"go"}})
	weights := types.CategoryWeights{
		FormatParsing:    10,
		Keywords:         50,
		SectionStructure: 20,
		ContactInfo:      10,
		Readability:      10,
	}

	report, err := scorer.Score(context.Background(), goodResume, jobDescription, weights)
	require.NoError(t, err)

	assert.Equal(t, 100, report.TotalPossible)
	for _, cat := range report.Categories {
		if cat.Name == CategoryKeywords {
			assert.Equal(t, 50, cat.PointsPossible)
			assert.Equal(t, 50, cat.PointsEarned) // full coverage of the single keyword
		}
	}
}

func TestScore_InvalidWeights(t *testing.T) {
	scorer := NewScorer(nil)

	_, err := scorer.Score(context.Background(), goodResume, jobDescription, types.CategoryWeights{
		FormatParsing: -1,
		Keywords:      10,
	})
	assert.Error(t, err)
}

func TestCheckFormatParsing_PenalizesTables(t *testing.T) {
	clean := checkFormatParsing("plain text resume", 20)
	assert.Equal(t, 20, clean.PointsEarned)

	withTable := checkFormatParsing("| Skill | Years |\n| Go | 10 |", 20)
	assert.Less(t, withTable.PointsEarned, clean.PointsEarned)
	assert.NotEmpty(t, withTable.Suggestions)
}

func TestCheckSectionStructure(t *testing.T) {
	full := checkSectionStructure(goodResume, 20)
	assert.Equal(t, 20, full.PointsEarned)

	missing := checkSectionStructure("## Summary\n\ntext\n", 20)
	assert.Equal(t, 5, missing.PointsEarned) // 1 of 4 sections
	assert.Len(t, missing.Suggestions, 3)
}

func TestCheckContactInfo(t *testing.T) {
	full := checkContactInfo(goodResume, 15)
	assert.Equal(t, 15, full.PointsEarned)

	none := checkContactInfo("no contact details here", 15)
	assert.Equal(t, 0, none.PointsEarned)
	assert.Len(t, none.Suggestions, 3)
}

func TestCheckReadability_RewardsMetricsAndVerbs(t *testing.T) {
	good := checkReadability(goodResume, 15)
	weak := checkReadability("I was responsible for stuff. Things happened.", 15)

	assert.Greater(t, good.PointsEarned, weak.PointsEarned)
}

func TestSummarize(t *testing.T) {
	assert.Contains(t, summarize(90), "Excellent")
	assert.Contains(t, summarize(75), "Good")
	assert.Contains(t, summarize(55), "Fair")
	assert.Contains(t, summarize(30), "Poor")
}
