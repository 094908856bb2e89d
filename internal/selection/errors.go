// Package selection resolves a history document against a variant into the
// content set used for rendering and generation.
package selection

import "fmt"

// Error represents a selection failure. Selection errors always indicate a
// configuration bug (for example a variant referencing a skill category the
// history does not have), so they propagate to the caller unmodified and are
// never recovered locally.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("selection error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("selection error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
