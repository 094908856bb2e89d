package types

import "strings"

// ContentSet is the resolved, variant-filtered material passed to rendering
// and generation. It is created fresh per generation request, never persisted,
// and owned exclusively by the run that produced it. Nothing mutates a
// ContentSet after selection completes, which is what makes concurrent
// candidate generation safe without locking.
type ContentSet struct {
	Variant string  `json:"variant"`
	Contact Contact `json:"contact"`
	Summary string  `json:"summary"`

	// SkillCategories preserves the variant's declared category order;
	// Skills maps each listed category to its ordered entries.
	SkillCategories []string            `json:"skill_categories"`
	Skills          map[string][]string `json:"skills"`

	Experience []SelectedExperience `json:"experience"`

	Education      []string `json:"education,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Projects       []string `json:"projects,omitempty"`
}

// CorpusText concatenates every piece of text in the content set. Generation
// and judging use it as the ground-truth corpus for faithfulness checks: any
// name a candidate document carries must occur somewhere in this text.
func (cs *ContentSet) CorpusText() string {
	var sb strings.Builder
	write := func(parts ...string) {
		for _, p := range parts {
			sb.WriteString(p)
			sb.WriteByte('\n')
		}
	}

	write(cs.Contact.Name, cs.Contact.Email, cs.Contact.Phone, cs.Contact.Location,
		cs.Contact.LinkedIn, cs.Contact.GitHub, cs.Contact.Website, cs.Summary)
	for _, category := range cs.SkillCategories {
		write(category)
		write(cs.Skills[category]...)
	}
	for _, exp := range cs.Experience {
		write(exp.Company, exp.Title, exp.StartDate, exp.EndDate)
		write(exp.Bullets...)
	}
	write(cs.Education...)
	write(cs.Certifications...)
	write(cs.Projects...)
	return sb.String()
}

// SelectedExperience is one experience entry with its bullets already
// filtered, ordered, and capped for the active variant.
type SelectedExperience struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets"`
}
