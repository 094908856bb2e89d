package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhoran/resumegen/internal/generation"
	"github.com/mhoran/resumegen/internal/types"
)

func TestPrintContentSet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContentSet(&types.ContentSet{
		Variant:         "backend",
		Summary:         "Backend engineer.",
		SkillCategories: []string{"Languages"},
		Skills:          map[string][]string{"Languages": {"Go", "Python"}},
		Experience: []types.SelectedExperience{
			{Company: "Acme Corp", Title: "Senior Engineer", Bullets: []string{"Built things.", "Shipped things."}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "SELECTED CONTENT")
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "Languages (2 skills)")
	assert.Contains(t, out, "1 entries, 2 bullets")
}

func TestPrintContentSet_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContentSet(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRunResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunResult(&generation.Result{
		RunID:          "run-123",
		Mode:           types.ModeAI,
		State:          "done",
		Judged:         true,
		JudgeScore:     0.82,
		CandidateCount: 3,
	})

	out := buf.String()
	assert.Contains(t, out, "GENERATION RESULT")
	assert.Contains(t, out, "run-123")
	assert.Contains(t, out, "0.82")
	assert.NotContains(t, out, "degraded")
}

func TestPrintRunResult_Degraded(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunResult(&generation.Result{
		RunID:          "run-456",
		Mode:           types.ModeFallback,
		State:          "done",
		Degraded:       true,
		FallbackReason: "timeout",
	})

	out := buf.String()
	assert.Contains(t, out, "degraded")
	assert.Contains(t, out, "timeout")
}

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ScoreReport{
		TotalScore:    75,
		TotalPossible: 100,
		Summary:       "Good ATS compatibility with room for improvement.",
		Categories: []types.CategoryScore{
			{Name: "keywords", PointsEarned: 20, PointsPossible: 30},
			{Name: "format_parsing", PointsEarned: 20, PointsPossible: 20},
		},
		Suggestions: []types.Suggestion{
			{Text: "Add missing keywords", Category: "keywords", RecoverablePoints: 10},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS COMPATIBILITY")
	assert.Contains(t, out, "75/100")
	assert.Contains(t, out, "keywords")
	assert.Contains(t, out, "(+10)")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ScoreReport{
		TotalScore:    10,
		TotalPossible: 100,
		Summary:       strings.Repeat("very long summary ", 20),
	})

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth+2)
	}
}
