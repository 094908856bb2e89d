package ats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mhoran/resumegen/internal/keywords"
	"github.com/mhoran/resumegen/internal/types"
)

var (
	tableRe      = regexp.MustCompile(`(?m)^\s*\|[^\n]*\|\s*$`)
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)|<img\b`)
	specialRe    = regexp.MustCompile(`[^a-zA-Z0-9\s\-.,@()#/+:%$'&*|!?_=<>\[\]]`)
	emailRe      = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe      = regexp.MustCompile(`(\+?\d[\d\s().\-]{7,}\d)`)
	profileRe    = regexp.MustCompile(`(?i)(linkedin\.com/|github\.com/)`)
	metricRe     = regexp.MustCompile(`\d+(\.\d+)?\s*(%|percent|x\b|ms\b|s\b|qps\b|rps\b|users\b|customers\b|requests\b|records\b|servers\b|engineers\b|teams\b|projects\b|million\b|billion\b|k\b|m\b|gb\b|tb\b)|\$\d+`)
	acronymRe    = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
	headingRe    = regexp.MustCompile(`(?m)^\s*(?:#{1,6}\s+.+|[A-Z][A-Z &]{2,}\s*$|[A-Za-z][A-Za-z ]{0,30}:\s*$)`)
	bulletLineRe = regexp.MustCompile(`(?m)^\s*[-*•]\s+\S`)
)

// specialCharThreshold is the count above which special characters start
// costing format points.
const specialCharThreshold = 50

// acronymDensityThreshold is the acronyms-per-word ratio above which
// readability is penalized.
const acronymDensityThreshold = 0.05

// actionVerbs are the bullet openers screeners treat as strong signal.
var actionVerbs = []string{
	"achieved", "architected", "built", "created", "delivered", "designed",
	"developed", "engineered", "implemented", "improved", "increased",
	"launched", "led", "managed", "optimized", "reduced", "scaled", "shipped",
}

// canonicalSections are the structural sections screeners look for, with the
// heading aliases each accepts.
var canonicalSections = []struct {
	name    string
	aliases []string
}{
	{"experience", []string{"experience", "employment", "work history"}},
	{"education", []string{"education"}},
	{"skills", []string{"skills", "technologies", "competencies"}},
	{"summary", []string{"summary", "profile", "about"}},
}

// checkFormatParsing penalizes constructs that break text extraction: tables,
// embedded images, and excessive special characters.
func checkFormatParsing(document string, weight int) types.CategoryScore {
	cat := types.CategoryScore{Name: CategoryFormatParsing, PointsPossible: weight}
	if strings.TrimSpace(document) == "" {
		cat.Suggestions = append(cat.Suggestions, "Document is empty or not text-extractable")
		return cat
	}

	fraction := 1.0

	if tableRe.MatchString(document) {
		fraction -= 0.5
		cat.Details = append(cat.Details, "tables detected (may break ATS parsing)")
		cat.Suggestions = append(cat.Suggestions, "Remove tables or convert them to simple lists")
	} else {
		cat.Details = append(cat.Details, "no tables detected")
	}

	if imageRe.MatchString(document) {
		fraction -= 0.25
		cat.Details = append(cat.Details, "embedded images detected")
		cat.Suggestions = append(cat.Suggestions, "Remove embedded images; ATS parsers only read text")
	}

	if n := len(specialRe.FindAllString(document, -1)); n >= specialCharThreshold {
		fraction -= 0.25
		cat.Details = append(cat.Details, fmt.Sprintf("%d special characters found", n))
		cat.Suggestions = append(cat.Suggestions, "Reduce special characters for cleaner parsing")
	} else {
		cat.Details = append(cat.Details, "minimal special characters")
	}

	cat.PointsEarned = points(fraction, weight)
	return cat
}

// checkKeywords computes keyword coverage of the document against the terms
// extracted from the job description. Missing keywords are reported verbatim.
func checkKeywords(document string, jobKeywords []string, weight int) types.CategoryScore {
	cat := types.CategoryScore{Name: CategoryKeywords, PointsPossible: weight}
	if len(jobKeywords) == 0 {
		// Nothing to match against; do not punish the document for it.
		cat.PointsEarned = weight
		cat.Details = append(cat.Details, "no keywords extractable from job description")
		return cat
	}

	result := keywords.Match(document, jobKeywords)
	cat.MatchedKeywords = result.Matched
	cat.MissingKeywords = result.Missing
	cat.PointsEarned = points(result.Coverage, weight)
	cat.Details = append(cat.Details,
		fmt.Sprintf("%d of %d job keywords present", len(result.Matched), len(jobKeywords)))

	if len(result.Missing) > 0 {
		shown := result.Missing
		if len(shown) > 5 {
			shown = shown[:5]
		}
		cat.Suggestions = append(cat.Suggestions,
			fmt.Sprintf("Add missing keywords to skills or experience: %s", strings.Join(shown, ", ")))
	}
	return cat
}

// checkSectionStructure verifies the canonical sections exist by structural
// marker (heading lines), not by prose heuristics.
func checkSectionStructure(document string, weight int) types.CategoryScore {
	cat := types.CategoryScore{Name: CategorySectionStructure, PointsPossible: weight}

	present := 0
	for _, section := range canonicalSections {
		if sectionPresent(document, section.aliases) {
			present++
			cat.Details = append(cat.Details, fmt.Sprintf("%s section present", section.name))
		} else {
			cat.Suggestions = append(cat.Suggestions,
				fmt.Sprintf("Add a clearly-headed %s section", section.name))
		}
	}

	cat.PointsEarned = points(float64(present)/float64(len(canonicalSections)), weight)
	return cat
}

// sectionPresent reports whether any heading line names one of the aliases
// and is followed by non-blank content.
func sectionPresent(document string, aliases []string) bool {
	lines := strings.Split(document, "\n")
	for i, line := range lines {
		if !headingRe.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		matched := false
		for _, alias := range aliases {
			if strings.Contains(lower, alias) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, rest := range lines[i+1:] {
			if strings.TrimSpace(rest) != "" {
				return true
			}
		}
	}
	return false
}

// checkContactInfo validates presence and format of email and phone, with
// bonus credit for professional-network links.
func checkContactInfo(document string, weight int) types.CategoryScore {
	cat := types.CategoryScore{Name: CategoryContactInfo, PointsPossible: weight}

	fraction := 0.0

	if emailRe.MatchString(document) {
		fraction += 0.4
		cat.Details = append(cat.Details, "email present and well-formed")
	} else {
		cat.Suggestions = append(cat.Suggestions, "Add a valid email address")
	}

	if phoneRe.MatchString(document) {
		fraction += 0.4
		cat.Details = append(cat.Details, "phone number present")
	} else {
		cat.Suggestions = append(cat.Suggestions, "Add a phone number")
	}

	if profileRe.MatchString(document) {
		fraction += 0.2
		cat.Details = append(cat.Details, "professional-network link present")
	} else {
		cat.Suggestions = append(cat.Suggestions, "Add a LinkedIn or GitHub link")
	}

	cat.PointsEarned = points(fraction, weight)
	return cat
}

// checkReadability rewards action-verb-led bullets and quantifiable metrics,
// and penalizes acronym density above the threshold.
func checkReadability(document string, weight int) types.CategoryScore {
	cat := types.CategoryScore{Name: CategoryReadability, PointsPossible: weight}

	fraction := 1.0
	lower := strings.ToLower(document)

	verbCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			verbCount++
		}
	}
	if verbCount >= 3 {
		cat.Details = append(cat.Details, fmt.Sprintf("action verbs in use (%d found)", verbCount))
	} else {
		fraction -= 1.0 / 3
		cat.Suggestions = append(cat.Suggestions, "Lead bullets with action verbs (built, led, reduced)")
	}

	if metricRe.MatchString(document) {
		cat.Details = append(cat.Details, "quantifiable metrics present")
	} else {
		fraction -= 1.0 / 3
		cat.Suggestions = append(cat.Suggestions, "Quantify achievements (e.g. \"reduced latency 40%\")")
	}

	if !bulletLineRe.MatchString(document) {
		fraction -= 1.0 / 6
		cat.Suggestions = append(cat.Suggestions, "Use bullet points for experience entries")
	}

	wordCount := len(strings.Fields(document))
	acronyms := len(acronymRe.FindAllString(document, -1))
	if wordCount > 0 && float64(acronyms)/float64(wordCount) > acronymDensityThreshold {
		fraction -= 1.0 / 6
		cat.Details = append(cat.Details, fmt.Sprintf("high acronym density (%d acronyms)", acronyms))
		cat.Suggestions = append(cat.Suggestions, "Spell out or trim acronyms; screeners match full terms")
	}

	cat.PointsEarned = points(fraction, weight)
	return cat
}
