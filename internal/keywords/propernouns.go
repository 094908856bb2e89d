package keywords

import (
	"regexp"
	"strings"
)

// properNounRe captures capitalized words, including multi-word runs such as
// "Acme Corp" and mixed-case product names such as "PostgreSQL".
var properNounRe = regexp.MustCompile(`\b[A-Z][A-Za-z0-9+#.]*(?: [A-Z][A-Za-z0-9+#.]*)*\b`)

// sentenceStartRe marks positions after which a capitalized word is likely
// just sentence case rather than a name: start of text, end of sentence,
// newlines, list markers, and markdown headings.
var sentenceStartRe = regexp.MustCompile(`(?:^[\s#*\-•]*|[.!?:]\s+|\n[\s#*\-•]*)$`)

// ProperNouns returns the distinct capitalized terms in the text that do not
// open a sentence, line, or list item. It is a heuristic, not NER: good
// enough to catch a generator inventing a company or product name, cheap
// enough to run on every candidate.
func ProperNouns(text string) []string {
	var nouns []string
	seen := make(map[string]bool)

	for _, loc := range properNounRe.FindAllStringIndex(text, -1) {
		term := text[loc[0]:loc[1]]
		if sentenceStartRe.MatchString(text[:loc[0]]) {
			// Sentence-case word, not a name. A multi-word run may still
			// carry a name after the leading verb ("Led Acme Corp ...").
			_, rest, ok := strings.Cut(term, " ")
			if !ok {
				continue
			}
			term = rest
		}
		key := strings.ToLower(term)
		if seen[key] {
			continue
		}
		seen[key] = true
		nouns = append(nouns, term)
	}
	return nouns
}

// FabricatedTerms returns the proper nouns in the text that do not occur
// anywhere in the source corpus (case-insensitive). An empty result means the
// text introduces no names the source does not already contain.
func FabricatedTerms(text, sourceCorpus string) []string {
	source := strings.ToLower(sourceCorpus)

	var fabricated []string
	for _, noun := range ProperNouns(text) {
		if !strings.Contains(source, strings.ToLower(noun)) {
			fabricated = append(fabricated, noun)
		}
	}
	return fabricated
}
