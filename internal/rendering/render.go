package rendering

import (
	"strings"
	"text/template"

	"github.com/mhoran/resumegen/internal/types"
)

// Renderer renders content sets against templates from a Repository.
type Renderer struct {
	repo Repository
}

// New creates a Renderer backed by the given template repository.
func New(repo Repository) *Renderer {
	return &Renderer{repo: repo}
}

// Render applies the content set to the named template. It returns
// TemplateNotFoundError for an unknown name, MissingContextError when the
// template references a field outside the content set schema, and
// TemplateError when the template body is malformed.
func (r *Renderer) Render(cs *types.ContentSet, templateName string) (string, error) {
	body, ok := r.repo.Lookup(templateName)
	if !ok {
		return "", &TemplateNotFoundError{Name: templateName}
	}

	tmpl, err := template.New(templateName).
		Option("missingkey=error").
		Funcs(template.FuncMap{
			"join": strings.Join,
		}).
		Parse(body)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template " + templateName, Cause: err}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, contextFor(cs)); err != nil {
		return "", &MissingContextError{Template: templateName, Cause: err}
	}
	return out.String(), nil
}

// contextFor flattens the content set into the template context. This map is
// the full field schema available to templates; selection guarantees every
// key is populated for every variant, which is what keeps the
// required-field contract satisfiable by all templates.
func contextFor(cs *types.ContentSet) map[string]any {
	return map[string]any{
		"Variant":         cs.Variant,
		"Name":            cs.Contact.Name,
		"Email":           cs.Contact.Email,
		"Phone":           cs.Contact.Phone,
		"Location":        cs.Contact.Location,
		"LinkedIn":        cs.Contact.LinkedIn,
		"GitHub":          cs.Contact.GitHub,
		"Website":         cs.Contact.Website,
		"Summary":         cs.Summary,
		"SkillCategories": cs.SkillCategories,
		"Skills":          cs.Skills,
		"Experience":      cs.Experience,
		"Education":       cs.Education,
		"Certifications":  cs.Certifications,
		"Projects":        cs.Projects,
	}
}
