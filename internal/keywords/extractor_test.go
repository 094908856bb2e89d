package keywords

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient satisfies llm.Client with canned responses.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) Complete(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubClient) CompleteJSON(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func TestLLMExtractor_Extract(t *testing.T) {
	e := NewLLMExtractor(&stubClient{
		response: "```json\n[\"Go\", \"Kubernetes\", \"go\", \"\", \"gRPC\"]\n```",
	})

	got, err := e.Extract(context.Background(), "some job description")
	require.NoError(t, err)

	// Normalized, deduplicated, empty entries dropped.
	assert.Equal(t, []string{"go", "kubernetes", "grpc"}, got)
}

func TestLLMExtractor_CapsResults(t *testing.T) {
	resp := "["
	for i := 0; i < 30; i++ {
		if i > 0 {
			resp += ","
		}
		resp += fmt.Sprintf("%q", fmt.Sprintf("term%d", i))
	}
	resp += "]"

	e := NewLLMExtractor(&stubClient{response: resp})

	got, err := e.Extract(context.Background(), "jd")
	require.NoError(t, err)
	assert.Len(t, got, maxExtractedKeywords)
}

func TestLLMExtractor_ClientError(t *testing.T) {
	e := NewLLMExtractor(&stubClient{err: errors.New("boom")})

	_, err := e.Extract(context.Background(), "jd")
	assert.Error(t, err)
}

func TestLLMExtractor_MalformedResponse(t *testing.T) {
	e := NewLLMExtractor(&stubClient{response: "not json"})

	_, err := e.Extract(context.Background(), "jd")
	assert.Error(t, err)
}

func TestExtractRegex(t *testing.T) {
	jd := `We need a Go engineer with Kubernetes and Docker experience.
Familiarity with PostgreSQL, CI/CD pipelines, and SRE practices required.
Machine learning exposure is a plus.`

	got := ExtractRegex(jd)

	assert.Contains(t, got, "go")
	assert.Contains(t, got, "kubernetes")
	assert.Contains(t, got, "docker")
	assert.Contains(t, got, "postgresql")
	assert.Contains(t, got, "ci/cd")
	assert.Contains(t, got, "machine learning")
	// Acronyms not in the vocabulary are still picked up.
	assert.Contains(t, got, "sre")
	assert.LessOrEqual(t, len(got), maxExtractedKeywords)
}

func TestExtractRegex_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractRegex(""))
}

func TestRegexExtractor_NeverFails(t *testing.T) {
	got, err := NewRegexExtractor().Extract(context.Background(), "plain text with no tech terms whatsoever")
	assert.NoError(t, err)
	assert.NotNil(t, got)
}
