package ranking

import (
	"regexp"
	"strings"

	"github.com/mhoran/resumegen/internal/keywords"
	"github.com/mhoran/resumegen/internal/types"
)

// Weights holds the relative importance of the three judging criteria.
type Weights struct {
	KeywordAlignment float64
	Faithfulness     float64
	Completeness     float64
}

// DefaultWeights gives the three criteria equal importance.
func DefaultWeights() Weights {
	return Weights{
		KeywordAlignment: 1.0 / 3,
		Faithfulness:     1.0 / 3,
		Completeness:     1.0 / 3,
	}
}

// fabricationPenalty is deducted from the faithfulness component per
// fabricated term, floored at zero.
const fabricationPenalty = 0.25

// requiredSections are the canonical sections every candidate must carry,
// checked by structural marker.
var requiredSections = [][]string{
	{"summary", "profile", "about"},
	{"skills", "technologies", "competencies"},
	{"experience", "employment", "work history"},
}

// Judge scores candidate documents and selects the best one. The judge never
// synthesizes a new document by merging candidates; it only selects.
type Judge struct {
	weights Weights
}

// NewJudge creates a Judge. Zero-value weights fall back to DefaultWeights.
func NewJudge(weights Weights) *Judge {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &Judge{weights: weights}
}

// Select scores every candidate against the job description and the source
// content set and returns the highest-scoring one. Ties are broken by the
// lowest generation index, so repeated invocations over the same candidates
// always select the same document. Each candidate's JudgeScore is populated
// as a side effect for observability.
func (j *Judge) Select(candidates []*types.Candidate, jobDescription string, cs *types.ContentSet) (*types.Candidate, error) {
	if len(candidates) == 0 {
		return nil, &JudgeInputError{}
	}

	jobKeywords := keywords.ExtractRegex(jobDescription)
	corpus := cs.CorpusText()

	best := candidates[0]
	best.JudgeScore = j.score(best, jobKeywords, corpus)
	for _, c := range candidates[1:] {
		c.JudgeScore = j.score(c, jobKeywords, corpus)
		// Strict inequality keeps the earliest-indexed candidate on ties.
		if c.JudgeScore > best.JudgeScore {
			best = c
		}
	}
	return best, nil
}

// score combines the weighted criterion scores, each in [0,1].
func (j *Judge) score(c *types.Candidate, jobKeywords []string, corpus string) float64 {
	return j.weights.KeywordAlignment*keywordAlignment(c.Text, jobKeywords) +
		j.weights.Faithfulness*faithfulness(c.Text, corpus) +
		j.weights.Completeness*completeness(c.Text)
}

// keywordAlignment is the fraction of job keywords present in the candidate.
// With no extractable keywords every candidate aligns equally.
func keywordAlignment(text string, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return 1.0
	}
	return keywords.Match(text, jobKeywords).Coverage
}

// faithfulness penalizes proper nouns the candidate introduces that are
// absent from the source content set.
func faithfulness(text, corpus string) float64 {
	fabricated := keywords.FabricatedTerms(text, corpus)
	score := 1.0 - float64(len(fabricated))*fabricationPenalty
	if score < 0 {
		return 0
	}
	return score
}

// completeness is the fraction of required sections present and non-empty.
func completeness(text string) float64 {
	present := 0
	for _, aliases := range requiredSections {
		if sectionPresent(text, aliases) {
			present++
		}
	}
	return float64(present) / float64(len(requiredSections))
}

// headingRe matches structural heading lines: markdown headings, ALL-CAPS
// lines, and short "Title:"-style lines.
var headingRe = regexp.MustCompile(`^\s*(?:#{1,6}\s+\S|[A-Z][A-Z &]{2,}$|[A-Za-z][A-Za-z ]{0,30}:$)`)

// sectionPresent reports whether the text contains a heading naming any of
// the section aliases with at least one non-blank line of content after it.
func sectionPresent(text string, aliases []string) bool {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !headingRe.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		for _, alias := range aliases {
			if !strings.Contains(lower, alias) {
				continue
			}
			for _, rest := range lines[i+1:] {
				if strings.TrimSpace(rest) != "" {
					return true
				}
			}
		}
	}
	return false
}
