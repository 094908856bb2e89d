// Package ranking scores and selects among candidate documents.
package ranking

// JudgeInputError indicates the judge was invoked with no candidates. The
// orchestrator only enters judging with at least two candidates, so reaching
// this error means an orchestration invariant was broken.
type JudgeInputError struct{}

func (e *JudgeInputError) Error() string {
	return "judge error: no candidates to judge"
}
