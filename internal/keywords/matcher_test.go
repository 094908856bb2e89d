package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_CaseInsensitive(t *testing.T) {
	res := Match("Experienced with KUBERNETES and docker.", []string{"Kubernetes", "Docker"})

	assert.Equal(t, []string{"Kubernetes", "Docker"}, res.Matched)
	assert.Empty(t, res.Missing)
	assert.Equal(t, 1.0, res.Coverage)
}

func TestMatch_WordBoundary(t *testing.T) {
	// "java" must not match inside "javascript".
	res := Match("Deep JavaScript experience.", []string{"java", "javascript"})

	assert.Equal(t, []string{"javascript"}, res.Matched)
	assert.Equal(t, []string{"java"}, res.Missing)
	assert.Equal(t, 0.5, res.Coverage)
}

func TestMatch_Phrases(t *testing.T) {
	corpus := "Built machine   learning pipelines on distributed systems."

	res := Match(corpus, []string{"machine learning", "distributed systems", "deep learning"})

	assert.Equal(t, []string{"machine learning", "distributed systems"}, res.Matched)
	assert.Equal(t, []string{"deep learning"}, res.Missing)
}

func TestMatch_TechnologyPunctuation(t *testing.T) {
	corpus := "Stack: Node.js, C++, CI/CD, C#."

	res := Match(corpus, []string{"node.js", "c++", "ci/cd", "c#"})
	assert.Len(t, res.Matched, 4)
	assert.Empty(t, res.Missing)
}

func TestMatch_NoStemming(t *testing.T) {
	res := Match("We containerized everything.", []string{"container"})
	assert.Equal(t, []string{"container"}, res.Missing)
}

func TestMatch_PreservesSpellingAndOrder(t *testing.T) {
	res := Match("go and rust here", []string{"Rust", "Go", "Zig"})

	assert.Equal(t, []string{"Rust", "Go"}, res.Matched)
	assert.Equal(t, []string{"Zig"}, res.Missing)
}

func TestMatch_DeduplicatesKeywords(t *testing.T) {
	res := Match("go services", []string{"Go", "go", "GO"})

	assert.Equal(t, []string{"Go"}, res.Matched)
	assert.Equal(t, 1.0, res.Coverage)
}

func TestMatch_EmptyKeywords(t *testing.T) {
	res := Match("anything", nil)

	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Missing)
	assert.Equal(t, 0.0, res.Coverage)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "go and rust", Normalize("  Go\tAND\n Rust "))
}
