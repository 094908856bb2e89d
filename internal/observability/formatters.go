// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mhoran/resumegen/internal/generation"
	"github.com/mhoran/resumegen/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContentSet outputs a summary of the deterministically selected content.
func (p *Printer) PrintContentSet(cs *types.ContentSet) {
	if cs == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Variant:  %s\n", cs.Variant))

	summary := cs.Summary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Summary:  %s\n", summary))
	sb.WriteString("\n")

	if len(cs.SkillCategories) > 0 {
		sb.WriteString("Skill categories:\n")
		for _, category := range cs.SkillCategories {
			sb.WriteString(fmt.Sprintf("  • %s (%d skills)\n", category, len(cs.Skills[category])))
		}
		sb.WriteString("\n")
	}

	totalBullets := 0
	for _, exp := range cs.Experience {
		totalBullets += len(exp.Bullets)
	}
	sb.WriteString(fmt.Sprintf("Experience: %d entries, %d bullets\n", len(cs.Experience), totalBullets))

	count := min(len(cs.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := cs.Experience[i]
		sb.WriteString(fmt.Sprintf("  • %s, %s (%d bullets)\n", exp.Title, exp.Company, len(exp.Bullets)))
	}
	if len(cs.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cs.Experience)-maxItemsToShow))
	}

	p.printBox("SELECTED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunResult outputs the outcome of a generation run: mode, candidate
// count, judging outcome, and any degradation.
func (p *Printer) PrintRunResult(result *generation.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Mode:       %s\n", result.Mode))
	sb.WriteString(fmt.Sprintf("State:      %s\n", result.State))

	if result.CandidateCount > 0 {
		sb.WriteString(fmt.Sprintf("Candidates: %d\n", result.CandidateCount))
	}
	if result.Judged {
		sb.WriteString(fmt.Sprintf("Judge:      %.2f (best of %d)\n", result.JudgeScore, result.CandidateCount))
	}
	if result.Degraded {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("⚠ degraded to deterministic output (%s)\n", result.FallbackReason))
	}

	p.printBox("GENERATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the ATS compatibility report with per-category
// breakdown and the top suggestions.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/%d (%.0f%%)\n", report.TotalScore, report.TotalPossible, report.Percentage()))
	sb.WriteString(fmt.Sprintf("%s\n", report.Summary))
	sb.WriteString("\n")

	for _, cat := range report.Categories {
		sb.WriteString(fmt.Sprintf("%-18s %3d/%d\n", cat.Name, cat.PointsEarned, cat.PointsPossible))
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(report.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := report.Suggestions[i]
			text := s.Text
			if len(text) > 45 {
				text = text[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s (+%d)\n", text, s.RecoverablePoints))
		}
		if len(report.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Suggestions)-maxItemsToShow))
		}
	}

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}
