package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoran/resumegen/internal/types"
)

func testContentSet() *types.ContentSet {
	return &types.ContentSet{
		Variant: "backend",
		Contact: types.Contact{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "555-0100",
		},
		Summary:         "Backend engineer focused on distributed systems.",
		SkillCategories: []string{"Languages", "Infrastructure"},
		Skills: map[string][]string{
			"Languages":      {"Go", "Python"},
			"Infrastructure": {"Kubernetes"},
		},
		Experience: []types.SelectedExperience{
			{
				Company:   "Acme Corp",
				Title:     "Senior Engineer",
				StartDate: "2019-03",
				Bullets:   []string{"Built the billing pipeline.", "Reduced costs by 40%."},
			},
		},
		Education: []string{"BS Computer Science, State University, 2012"},
	}
}

func TestRender_Markdown(t *testing.T) {
	r := New(DefaultRepository())

	out, err := r.Render(testContentSet(), "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Jane Doe")
	assert.Contains(t, out, "jane@example.com | 555-0100")
	assert.Contains(t, out, "- **Languages**: Go, Python")
	assert.Contains(t, out, "### Senior Engineer — Acme Corp")
	assert.Contains(t, out, "2019-03 – Present")
	assert.Contains(t, out, "- Built the billing pipeline.")
	assert.Contains(t, out, "## Education")
}

func TestRender_Text(t *testing.T) {
	r := New(DefaultRepository())

	out, err := r.Render(testContentSet(), "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Go, Python")
}

func TestRender_Deterministic(t *testing.T) {
	r := New(DefaultRepository())

	first, err := r.Render(testContentSet(), "markdown")
	require.NoError(t, err)
	second, err := r.Render(testContentSet(), "markdown")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_TemplateNotFound(t *testing.T) {
	r := New(DefaultRepository())

	_, err := r.Render(testContentSet(), "latex")
	require.Error(t, err)

	var nf *TemplateNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "latex", nf.Name)
}

func TestRender_MissingContext(t *testing.T) {
	r := New(MapRepository{"bad": "{{.Salary}}"})

	_, err := r.Render(testContentSet(), "bad")
	require.Error(t, err)

	var mc *MissingContextError
	assert.ErrorAs(t, err, &mc)
}

func TestRender_MalformedTemplate(t *testing.T) {
	r := New(MapRepository{"broken": "{{range .Experience}"})

	_, err := r.Render(testContentSet(), "broken")
	require.Error(t, err)

	var te *TemplateError
	assert.ErrorAs(t, err, &te)
}

func TestRender_CustomTemplateOverlay(t *testing.T) {
	repo := WithTemplate(DefaultRepository(), "custom", "{{.Name}} targets {{.Variant}}")
	r := New(repo)

	out, err := r.Render(testContentSet(), "custom")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe targets backend", out)

	// Base templates still resolve through the overlay.
	_, err = r.Render(testContentSet(), "markdown")
	assert.NoError(t, err)
}

func TestRender_EndDateShown(t *testing.T) {
	cs := testContentSet()
	cs.Experience[0].EndDate = "2023-06"

	out, err := New(DefaultRepository()).Render(cs, "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "2019-03 – 2023-06")
}
