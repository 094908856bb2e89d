// Package jobparse turns a job posting, supplied as a URL, an HTML file, or
// plain text, into the description text the pipeline consumes.
package jobparse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds the HTTP request when fetching a posting by URL.
const DefaultTimeout = 30 * time.Second

const defaultUserAgent = "Mozilla/5.0 (compatible; resumegen/1.0)"

// JobPosting is the parsed form of a job advertisement.
type JobPosting struct {
	Company string
	Title   string
	Text    string
}

// Error represents a failure to fetch or parse a job posting.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job posting error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("job posting error for %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// contentSelectors are tried in order when locating the posting body. Job
// boards rarely agree on markup, so the list runs from specific to generic.
var contentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// FetchURL retrieves a job posting page and parses it.
func FetchURL(ctx context.Context, rawURL string) (*JobPosting, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{Source: rawURL, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Source: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{Source: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Source: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Source: rawURL, Message: "failed to read response body", Cause: err}
	}

	posting, err := ParseHTML(string(body))
	if err != nil {
		return nil, &Error{Source: rawURL, Message: "failed to parse page", Cause: err}
	}
	return posting, nil
}

// ParseHTML extracts the posting title, company, and body text from a job
// page. Noise elements (navigation, scripts, cookie banners) are stripped
// before the body is located.
func ParseHTML(html string) (*JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Source: "(html)", Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	posting := &JobPosting{
		Title:   firstText(doc, "h1", "[data-testid='job-title']", ".job-title", "title"),
		Company: firstText(doc, "[data-testid='company-name']", ".company-name", ".company", "[itemprop='hiringOrganization']"),
	}

	var body *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			body = sel.First()
			break
		}
	}
	if body == nil {
		body = doc.Find("body")
	}

	posting.Text = cleanWhitespace(body.Text())
	if posting.Text == "" {
		return nil, &Error{Source: "(html)", Message: "no text content found"}
	}
	return posting, nil
}

// ParseText wraps already-plain job description text in a JobPosting.
func ParseText(text string) (*JobPosting, error) {
	cleaned := cleanWhitespace(text)
	if cleaned == "" {
		return nil, &Error{Source: "(text)", Message: "empty job description"}
	}
	return &JobPosting{Text: cleaned}, nil
}

func firstText(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			if text := strings.TrimSpace(sel.First().Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// cleanWhitespace trims each line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
