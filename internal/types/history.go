// Package types provides type definitions for structured data used throughout the resume generation system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// HistoryDocument is the single source of truth for a person's work history.
// It arrives from an external loader already parsed and schema-validated;
// the core never reads it from disk itself.
type HistoryDocument struct {
	Contact         Contact             `json:"contact"`
	Summary         string              `json:"summary"`
	SummaryVariants map[string]string   `json:"summary_variants,omitempty"`
	Skills          map[string][]string `json:"skills"`
	Experience      []ExperienceEntry   `json:"experience"`

	// Opaque pass-through blocks: pre-formatted lines the core carries into
	// the ContentSet without interpreting them.
	Education      []string `json:"education,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Projects       []string `json:"projects,omitempty"`
}

// Contact holds candidate contact information.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry represents one position held. An empty EndDate means the
// position is current; when both dates are present StartDate precedes EndDate.
type ExperienceEntry struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Location  string   `json:"location,omitempty"`
	Bullets   []Bullet `json:"bullets"`
}

// Bullet is one atomic accomplishment statement. A bullet whose EmphasizeFor
// set is empty is only a candidate for keyword-based inclusion; it is never
// guaranteed a slot.
type Bullet struct {
	Text         string   `json:"text"`
	Skills       []string `json:"skills,omitempty"`
	EmphasizeFor []string `json:"emphasize_for,omitempty"`
}
