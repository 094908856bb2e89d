package keywords

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mhoran/resumegen/internal/llm"
	"github.com/mhoran/resumegen/internal/prompts"
)

// maxExtractedKeywords caps the number of terms an extractor returns.
const maxExtractedKeywords = 20

// Extractor extracts salient keywords from a job description. Two
// implementations exist: an LLM-backed one and a regex one. Callers choose at
// construction time; the regex extractor is the mandatory fallback and must
// produce usable output with no AI available.
type Extractor interface {
	Extract(ctx context.Context, jobDescription string) ([]string, error)
}

// LLMExtractor extracts keywords by prompting the text-completion capability.
type LLMExtractor struct {
	client llm.Client
}

// NewLLMExtractor creates an extractor backed by the given completion client.
func NewLLMExtractor(client llm.Client) *LLMExtractor {
	return &LLMExtractor{client: client}
}

// Extract prompts the LLM for the most important skills, technologies, and
// qualifications in the job description. The response contract is a JSON
// array of lowercase strings.
func (e *LLMExtractor) Extract(ctx context.Context, jobDescription string) ([]string, error) {
	template := prompts.MustGet("keywords.json", "extract-job-keywords")
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
	})

	resp, err := e.client.CompleteJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction failed: %w", err)
	}

	var raw []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse keyword response: %w", err)
	}

	keywords := make([]string, 0, len(raw))
	seen := make(map[string]bool)
	for _, kw := range raw {
		kw = Normalize(kw)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		keywords = append(keywords, kw)
		if len(keywords) == maxExtractedKeywords {
			break
		}
	}
	return keywords, nil
}

// RegexExtractor extracts keywords with a curated vocabulary and simple
// patterns. Less precise than the LLM extractor but always available.
type RegexExtractor struct{}

// NewRegexExtractor creates the regex-based extractor.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

// Extract never fails; it delegates to ExtractRegex.
func (e *RegexExtractor) Extract(_ context.Context, jobDescription string) ([]string, error) {
	return ExtractRegex(jobDescription), nil
}

// techVocabulary is the known-term list scanned by the regex extractor,
// ordered roughly by how often the terms appear in postings. Multi-word
// entries rely on phrase matching in Match.
var techVocabulary = []string{
	"python", "javascript", "typescript", "react", "vue", "angular",
	"node.js", "django", "flask", "fastapi", "kubernetes", "docker",
	"aws", "gcp", "azure", "terraform", "sql", "mongodb", "postgresql",
	"mysql", "redis", "kafka", "elasticsearch", "ci/cd", "devops",
	"machine learning", "deep learning", "ai", "llm", "pytorch",
	"tensorflow", "react native", "graphql", "rest api", "grpc",
	"microservices", "distributed systems", "java", "go", "golang",
	"rust", "c++", "c#", ".net", "ruby", "rails", "spring", "hibernate",
	"linux", "git", "agile", "scrum", "kanban", "leadership",
	"communication", "teamwork", "mentoring",
}

// acronymRe captures standalone uppercase acronyms (ETL, SRE, SDLC).
var acronymRe = regexp.MustCompile(`\b[A-Z]{2,5}\b`)

// ExtractRegex scans a job description for known technology and soft-skill
// terms plus uppercase acronyms. Results are lowercase, deduplicated, and
// capped at maxExtractedKeywords.
func ExtractRegex(jobDescription string) []string {
	found := make([]string, 0, maxExtractedKeywords)
	seen := make(map[string]bool)

	res := Match(jobDescription, techVocabulary)
	for _, kw := range res.Matched {
		if !seen[kw] {
			seen[kw] = true
			found = append(found, kw)
		}
		if len(found) == maxExtractedKeywords {
			return found
		}
	}

	for _, acr := range acronymRe.FindAllString(jobDescription, -1) {
		kw := strings.ToLower(acr)
		if seen[kw] {
			continue
		}
		seen[kw] = true
		found = append(found, kw)
		if len(found) == maxExtractedKeywords {
			break
		}
	}

	return found
}
