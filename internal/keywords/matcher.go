// Package keywords provides the text-matching primitives shared by content
// selection, candidate judging, and ATS scoring: exact normalized keyword
// matching plus job-description keyword extraction.
package keywords

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// MatchResult holds the outcome of matching a keyword set against a corpus.
type MatchResult struct {
	Matched  []string
	Missing  []string
	Coverage float64
}

// Match reports which of the given keywords occur in the corpus. Matching is
// case-insensitive. Single-word keywords match on word boundaries only, so
// "java" does not match inside "javascript". Multi-word phrases match as
// substrings after normalization (lowercasing, whitespace collapsing).
// No stemming or fuzzy matching is applied.
//
// Matched and Missing preserve the original keyword spellings and order.
// Coverage is len(Matched)/len(keywords), or 0 for an empty keyword set.
func Match(corpus string, keywords []string) MatchResult {
	result := MatchResult{}
	if len(keywords) == 0 {
		return result
	}

	normalized := Normalize(corpus)
	tokens := tokenSet(normalized)

	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		nkw := Normalize(kw)
		if nkw == "" || seen[nkw] {
			continue
		}
		seen[nkw] = true

		var hit bool
		if strings.ContainsRune(nkw, ' ') {
			hit = strings.Contains(normalized, nkw)
		} else {
			hit = tokens[nkw]
		}

		if hit {
			result.Matched = append(result.Matched, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}

	total := len(result.Matched) + len(result.Missing)
	if total > 0 {
		result.Coverage = float64(len(result.Matched)) / float64(total)
	}
	return result
}

// Normalize lowercases text and collapses runs of whitespace to single spaces.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(s), " "))
}

// tokenSet splits normalized text on word boundaries and returns the set of
// tokens. Intra-word punctuation common in technology names (+, #, ., /, -)
// is kept so tokens like "node.js", "c++" and "ci/cd" survive intact.
func tokenSet(normalized string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(normalized, func(r rune) bool {
		switch r {
		case '+', '#', '.', '/', '-':
			return false
		}
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		tok = strings.Trim(tok, ".-/")
		if tok != "" {
			tokens[tok] = true
		}
	}
	return tokens
}
