package generation

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mhoran/resumegen/internal/ranking"
	"github.com/mhoran/resumegen/internal/selection"
	"github.com/mhoran/resumegen/internal/types"
)

// State names the phases of a generation run. States are advanced linearly
// inside Run; they exist for logging and for the result's final tag.
type State string

// Run states.
const (
	StateIdle       State = "idle"
	StateSelecting  State = "selecting"
	StateGenerating State = "generating"
	StateJudging    State = "judging"
	StateFallback   State = "fallback"
	StateFinalizing State = "finalizing"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// maxConcurrentGenerations bounds the candidate fan-out worker pool.
const maxConcurrentGenerations = 4

// Options configure an Orchestrator at construction time. The orchestrator
// treats them as already-validated input.
type Options struct {
	// NumGenerations is the number of AI candidates per run (minimum 1).
	NumGenerations int
	// JudgeEnabled controls whether multi-candidate runs are judged.
	JudgeEnabled bool
	// FallbackOnFailure controls the fallback transition; when false, a run
	// whose AI candidates all fail terminates in an error instead.
	FallbackOnFailure bool
	// Timeout bounds the whole generating phase. Candidates still pending at
	// the deadline are dropped; completed ones proceed to judging.
	Timeout time.Duration
	// TemplateName selects the render template, default "markdown".
	TemplateName string
	// CacheEnabled reuses AI output for repeated (job, variant, template) runs.
	CacheEnabled bool
}

// Request is one generation request.
type Request struct {
	History        *types.HistoryDocument
	Variant        *types.VariantConfig
	Mode           types.GenerationMode
	JobDescription string
	JobKeywords    []string
}

// Result is the terminal outcome of a successful run. Degraded marks results
// the fallback path produced; FallbackReason records which error kind
// triggered it so repeated degraded runs are diagnosable.
type Result struct {
	RunID          string               `json:"run_id"`
	Document       string               `json:"document"`
	Mode           types.GenerationMode `json:"mode"`
	State          State                `json:"state"`
	Degraded       bool                 `json:"degraded"`
	FallbackReason string               `json:"fallback_reason,omitempty"`
	JudgeScore     float64              `json:"judge_score,omitempty"`
	Judged         bool                 `json:"judged"`
	CandidateCount int                  `json:"candidate_count"`
}

// Orchestrator coordinates content selection, candidate generation, judging,
// and fallback for generation runs.
type Orchestrator struct {
	generator *Generator
	judge     *ranking.Judge
	opts      Options
	logger    *zap.Logger

	cacheMu sync.Mutex
	cache   map[string]string
}

// NewOrchestrator creates an Orchestrator. judge may be nil when judging is
// disabled; logger may be nil for silent operation.
func NewOrchestrator(generator *Generator, judge *ranking.Judge, opts Options, logger *zap.Logger) *Orchestrator {
	if opts.NumGenerations < 1 {
		opts.NumGenerations = 1
	}
	if opts.TemplateName == "" {
		opts.TemplateName = "markdown"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		generator: generator,
		judge:     judge,
		opts:      opts,
		logger:    logger,
		cache:     make(map[string]string),
	}
}

// Run executes one generation request to a terminal state. Selection runs
// exactly once per run; every candidate is generated from, and judged
// against, that single content set. Selection and template errors propagate
// unmodified (they indicate configuration bugs); completion errors are
// absorbed into the fallback path whenever fallback is enabled.
func (o *Orchestrator) Run(ctx context.Context, req *Request) (*Result, error) {
	runID := uuid.NewString()
	log := o.logger.With(zap.String("run_id", runID), zap.String("variant", req.Variant.Name))
	log.Debug("run accepted", zap.String("state", string(StateIdle)), zap.String("mode", string(req.Mode)))

	log.Info("selecting content", zap.String("state", string(StateSelecting)))
	cs, err := selection.Select(req.History, req.Variant, req.JobKeywords)
	if err != nil {
		return nil, err
	}

	if req.Mode != types.ModeAI {
		candidate, err := o.generator.Generate(ctx, cs, types.ModeDeterministic, o.opts.TemplateName, req.JobDescription, 0)
		if err != nil {
			return nil, err
		}
		log.Info("run finished", zap.String("state", string(StateDone)), zap.String("mode", string(types.ModeDeterministic)))
		return &Result{
			RunID:          runID,
			Document:       candidate.Text,
			Mode:           types.ModeDeterministic,
			State:          StateDone,
			CandidateCount: 1,
		}, nil
	}

	if !o.generator.HasClient() {
		log.Warn("completion capability unconfigured")
		return o.fallback(ctx, runID, cs, req, &AllCandidatesFailedError{Causes: []error{ErrUnconfigured}}, log)
	}

	if o.opts.CacheEnabled {
		if doc, ok := o.cacheGet(req); ok {
			log.Info("cache hit, reusing customized document")
			return &Result{
				RunID:          runID,
				Document:       doc,
				Mode:           types.ModeAI,
				State:          StateDone,
				CandidateCount: 1,
			}, nil
		}
	}

	candidates, genErr := o.generate(ctx, cs, req, log)
	if len(candidates) == 0 {
		return o.fallback(ctx, runID, cs, req, genErr, log)
	}

	selected := candidates[0]
	judged := false
	if len(candidates) >= 2 && o.opts.JudgeEnabled && o.judge != nil {
		log.Info("judging candidates", zap.String("state", string(StateJudging)), zap.Int("candidates", len(candidates)))
		selected, err = o.judge.Select(candidates, req.JobDescription, cs)
		if err != nil {
			return nil, err
		}
		judged = true
		log.Info("judge selected candidate",
			zap.Int("index", selected.Index),
			zap.Float64("score", selected.JudgeScore))
	}

	log.Debug("finalizing result", zap.String("state", string(StateFinalizing)), zap.Int("index", selected.Index))
	if o.opts.CacheEnabled {
		o.cachePut(req, selected.Text)
	}

	log.Info("run finished",
		zap.String("state", string(StateDone)),
		zap.String("mode", string(types.ModeAI)),
		zap.Int("candidates", len(candidates)))
	return &Result{
		RunID:          runID,
		Document:       selected.Text,
		Mode:           types.ModeAI,
		State:          StateDone,
		JudgeScore:     selected.JudgeScore,
		Judged:         judged,
		CandidateCount: len(candidates),
	}, nil
}

// generate fans out NumGenerations independent candidate calls over a bounded
// worker pool. Each worker writes only to its own slot, so no locking is
// needed and candidate indexes survive out-of-order completion. A failing
// call empties its slot instead of aborting the run. The returned error is
// non-nil only when every slot failed.
func (o *Orchestrator) generate(ctx context.Context, cs *types.ContentSet, req *Request, log *zap.Logger) ([]*types.Candidate, *AllCandidatesFailedError) {
	n := o.opts.NumGenerations
	log.Info("generating candidates", zap.String("state", string(StateGenerating)), zap.Int("n", n))

	if o.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.Timeout)
		defer cancel()
	}

	slots := make([]*types.Candidate, n)
	failures := make([]error, n)

	var g errgroup.Group
	g.SetLimit(maxConcurrentGenerations)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			candidate, err := o.generator.Generate(ctx, cs, types.ModeAI, o.opts.TemplateName, req.JobDescription, i)
			if err != nil {
				log.Warn("candidate dropped", zap.Int("index", i), zap.Error(err))
				failures[i] = err
				return nil
			}
			slots[i] = candidate
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in their slots

	candidates := make([]*types.Candidate, 0, n)
	var causes []error
	for i := 0; i < n; i++ {
		if slots[i] != nil {
			candidates = append(candidates, slots[i])
		} else if failures[i] != nil {
			causes = append(causes, failures[i])
		}
	}

	if len(candidates) == 0 {
		return nil, &AllCandidatesFailedError{Causes: causes}
	}
	return candidates, nil
}

// fallback renders the deterministic document after the AI path failed. The
// result is marked degraded and carries the triggering error kind. When
// fallback is disabled the run terminates with the generation error instead.
func (o *Orchestrator) fallback(ctx context.Context, runID string, cs *types.ContentSet, req *Request, cause *AllCandidatesFailedError, log *zap.Logger) (*Result, error) {
	if !o.opts.FallbackOnFailure {
		log.Error("generation failed and fallback is disabled",
			zap.String("state", string(StateFailed)),
			zap.Error(cause))
		return nil, cause
	}

	reason := fallbackReason(cause)
	log.Warn("falling back to deterministic generation",
		zap.String("state", string(StateFallback)),
		zap.String("reason", reason))

	candidate, err := o.generator.Generate(ctx, cs, types.ModeDeterministic, o.opts.TemplateName, req.JobDescription, 0)
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:          runID,
		Document:       candidate.Text,
		Mode:           types.ModeFallback,
		State:          StateDone,
		Degraded:       true,
		FallbackReason: reason,
		CandidateCount: 1,
	}, nil
}

// fallbackReason condenses the failure causes into the kind of the first one.
func fallbackReason(err *AllCandidatesFailedError) string {
	if err == nil || len(err.Causes) == 0 {
		return "unknown"
	}
	return errorKind(err.Causes[0])
}

func (o *Orchestrator) cacheKey(req *Request) string {
	jd := req.JobDescription
	if len(jd) > 1000 {
		jd = jd[:1000]
	}
	sum := sha256.Sum256([]byte(jd + "\x00" + req.Variant.Name + "\x00" + o.opts.TemplateName))
	return fmt.Sprintf("%x", sum)
}

func (o *Orchestrator) cacheGet(req *Request) (string, bool) {
	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()
	doc, ok := o.cache[o.cacheKey(req)]
	return doc, ok
}

func (o *Orchestrator) cachePut(req *Request, doc string) {
	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()
	o.cache[o.cacheKey(req)] = doc
}
