// Package rendering applies a content set to a named template, producing the
// final document text. Rendering is a pure substitution step with no business
// logic; every field a template may reference must already be present in the
// content set.
package rendering

import "fmt"

// TemplateNotFoundError indicates the named template does not exist in the
// repository.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Name)
}

// MissingContextError indicates a template referenced a field that is not
// part of the content set schema. This is a hard failure, never a silent
// blank: it means the template and the selector disagree about the contract.
type MissingContextError struct {
	Template string
	Cause    error
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("template %s references a field missing from the content set: %v", e.Template, e.Cause)
}

func (e *MissingContextError) Unwrap() error {
	return e.Cause
}

// TemplateError represents a malformed template that cannot be parsed.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
