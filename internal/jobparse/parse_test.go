package jobparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Senior Backend Engineer - Acme Corp</title></head>
<body>
<nav>Home | Jobs | About</nav>
<h1>Senior Backend Engineer</h1>
<div class="company-name">Acme Corp</div>
<div class="job-description">
<p>We are looking for a backend engineer with Go and Kubernetes experience.</p>
<p>You will build distributed systems at scale.</p>
</div>
<footer>Copyright Acme</footer>
<script>trackPageView();</script>
</body>
</html>`

func TestParseHTML(t *testing.T) {
	posting, err := ParseHTML(samplePage)
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", posting.Title)
	assert.Equal(t, "Acme Corp", posting.Company)
	assert.Contains(t, posting.Text, "Go and Kubernetes")
	assert.Contains(t, posting.Text, "distributed systems")

	// Noise elements are stripped before extraction.
	assert.NotContains(t, posting.Text, "Home | Jobs")
	assert.NotContains(t, posting.Text, "trackPageView")
	assert.NotContains(t, posting.Text, "Copyright")
}

func TestParseHTML_BodyFallback(t *testing.T) {
	posting, err := ParseHTML("<html><body><p>Plain posting with no wrapper divs.</p></body></html>")
	require.NoError(t, err)
	assert.Contains(t, posting.Text, "Plain posting")
}

func TestParseHTML_NoContent(t *testing.T) {
	_, err := ParseHTML("<html><body><script>only();</script></body></html>")
	require.Error(t, err)

	var perr *Error
	assert.ErrorAs(t, err, &perr)
}

func TestParseText(t *testing.T) {
	posting, err := ParseText("  Senior   Engineer \n\n Go, Kubernetes  \n")
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer\nGo, Kubernetes", posting.Text)
}

func TestParseText_Empty(t *testing.T) {
	_, err := ParseText("   \n  ")
	assert.Error(t, err)
}

func TestFetchURL_InvalidURL(t *testing.T) {
	_, err := FetchURL(context.Background(), "not-a-url")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "not-a-url", perr.Source)
}
