package rendering

import "embed"

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

// Repository is a name -> template-body lookup. Template authoring and
// storage are external concerns; the renderer only queries by name.
type Repository interface {
	Lookup(name string) (body string, ok bool)
}

// MapRepository is an in-memory Repository, useful for custom templates
// supplied by the caller and for tests.
type MapRepository map[string]string

// Lookup returns the template body for name.
func (m MapRepository) Lookup(name string) (string, bool) {
	body, ok := m[name]
	return body, ok
}

// DefaultRepository returns the built-in templates ("markdown", "text")
// embedded with the binary.
func DefaultRepository() Repository {
	repo := MapRepository{}
	entries, err := builtinTemplates.ReadDir("templates")
	if err != nil {
		panic("builtin templates missing: " + err.Error())
	}
	for _, entry := range entries {
		data, err := builtinTemplates.ReadFile("templates/" + entry.Name())
		if err != nil {
			panic("builtin template unreadable: " + err.Error())
		}
		name := entry.Name()
		repo[name[:len(name)-len(".tmpl")]] = string(data)
	}
	return repo
}

// WithTemplate returns a Repository that resolves name to body and falls back
// to the base repository for everything else.
func WithTemplate(base Repository, name, body string) Repository {
	return overlayRepository{base: base, name: name, body: body}
}

type overlayRepository struct {
	base Repository
	name string
	body string
}

func (o overlayRepository) Lookup(name string) (string, bool) {
	if name == o.name {
		return o.body, true
	}
	return o.base.Lookup(name)
}
