// Package generation produces candidate documents from content sets and
// orchestrates multi-candidate runs with judging and deterministic fallback.
package generation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhoran/resumegen/internal/llm"
)

// FabricationError indicates an AI candidate failed the truthfulness sanity
// check: its text contains names absent from the source content set.
type FabricationError struct {
	Terms []string
}

func (e *FabricationError) Error() string {
	return fmt.Sprintf("candidate fabricates terms not in source content: %s", strings.Join(e.Terms, ", "))
}

// AllCandidatesFailedError indicates every AI generation attempt in a run
// failed. It triggers the fallback transition, or terminates the run when
// fallback is disabled. Causes holds one error per failed generation slot.
type AllCandidatesFailedError struct {
	Causes []error
}

func (e *AllCandidatesFailedError) Error() string {
	if len(e.Causes) == 0 {
		return "all candidates failed"
	}
	return fmt.Sprintf("all %d candidates failed: %v", len(e.Causes), e.Causes[0])
}

func (e *AllCandidatesFailedError) Unwrap() []error {
	return e.Causes
}

// ErrUnconfigured is the cause recorded when AI mode is requested but no
// completion client is configured.
var ErrUnconfigured = fmt.Errorf("completion capability not configured")

// errorKind names the failure class of one candidate error, for degraded-run
// diagnostics.
func errorKind(err error) string {
	if errors.Is(err, ErrUnconfigured) {
		return "unconfigured"
	}
	var fab *FabricationError
	if errors.As(err, &fab) {
		return "fabrication"
	}
	if kind := llm.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}
