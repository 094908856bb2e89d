package types

// CategoryWeights holds the maximum points per ATS scoring category.
// The sum of the weights is the total possible score.
type CategoryWeights struct {
	FormatParsing    int `json:"format_parsing"`
	Keywords         int `json:"keywords"`
	SectionStructure int `json:"section_structure"`
	ContactInfo      int `json:"contact_info"`
	Readability      int `json:"readability"`
}

// DefaultCategoryWeights returns the standard 20/30/20/15/15 split summing to 100.
func DefaultCategoryWeights() CategoryWeights {
	return CategoryWeights{
		FormatParsing:    20,
		Keywords:         30,
		SectionStructure: 20,
		ContactInfo:      15,
		Readability:      15,
	}
}

// Total returns the sum of all category weights.
func (w CategoryWeights) Total() int {
	return w.FormatParsing + w.Keywords + w.SectionStructure + w.ContactInfo + w.Readability
}

// IsZero reports whether no weight has been configured.
func (w CategoryWeights) IsZero() bool {
	return w == CategoryWeights{}
}

// ScoreReport is the full ATS compatibility report. It is plain structured
// data suitable for JSON serialization; presentation belongs to the caller.
type ScoreReport struct {
	TotalScore    int             `json:"total_score"`
	TotalPossible int             `json:"total_possible"`
	Categories    []CategoryScore `json:"categories"`
	Summary       string          `json:"summary"`
	Suggestions   []Suggestion    `json:"suggestions"`
}

// Percentage returns the overall score as a percentage of the possible total.
func (r *ScoreReport) Percentage() float64 {
	if r.TotalPossible == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.TotalPossible) * 100
}

// CategoryScore is the result for a single ATS category.
type CategoryScore struct {
	Name            string   `json:"name"`
	PointsEarned    int      `json:"points_earned"`
	PointsPossible  int      `json:"points_possible"`
	Details         []string `json:"details,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
}

// Suggestion is one remediation step. Suggestions in a report are ordered by
// RecoverablePoints descending so the first entry is the highest-leverage fix.
type Suggestion struct {
	Text              string `json:"text"`
	Category          string `json:"category"`
	RecoverablePoints int    `json:"recoverable_points"`
}
