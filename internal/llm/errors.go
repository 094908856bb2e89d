package llm

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the failure classes of the completion capability.
// Each kind triggers a per-candidate drop in the orchestrator, never a run
// failure on its own.
type ErrorKind string

// Completion error kinds.
const (
	KindTimeout     ErrorKind = "timeout"
	KindProvider    ErrorKind = "provider_error"
	KindRateLimited ErrorKind = "rate_limited"
)

// Error is a completion failure tagged with its kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("completion %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a completion Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == kind
}

// KindOf returns the error kind of a completion failure, or an empty string
// when err is not a completion Error.
func KindOf(err error) ErrorKind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return ""
}
