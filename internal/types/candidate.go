package types

// GenerationMode tags how a candidate document was produced.
type GenerationMode string

// Generation mode constants. ModeFallback marks a document produced by the
// deterministic path after the AI path could not deliver a candidate.
const (
	ModeDeterministic GenerationMode = "deterministic"
	ModeAI            GenerationMode = "ai"
	ModeFallback      GenerationMode = "fallback"
)

// Candidate is one complete generated document produced by one generation
// attempt. Index is the generation slot the candidate was produced in and is
// stable regardless of completion order, so judge tie-breaking stays
// reproducible.
type Candidate struct {
	Index      int            `json:"index"`
	Text       string         `json:"text"`
	Mode       GenerationMode `json:"mode"`
	JudgeScore float64        `json:"judge_score,omitempty"`
}
