package generation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mhoran/resumegen/internal/keywords"
	"github.com/mhoran/resumegen/internal/llm"
	"github.com/mhoran/resumegen/internal/prompts"
	"github.com/mhoran/resumegen/internal/rendering"
	"github.com/mhoran/resumegen/internal/types"
)

// Generator produces one candidate document per call, either through the
// deterministic renderer or through the completion capability.
type Generator struct {
	renderer *rendering.Renderer
	client   llm.Client
}

// NewGenerator creates a Generator. client may be nil, in which case only
// deterministic generation is available.
func NewGenerator(renderer *rendering.Renderer, client llm.Client) *Generator {
	return &Generator{renderer: renderer, client: client}
}

// HasClient reports whether the completion capability is configured.
func (g *Generator) HasClient() bool {
	return g.client != nil
}

// Generate produces one candidate in the requested mode. index is the
// generation slot, recorded on the candidate for stable tie-breaking.
//
// Deterministic mode delegates to the renderer and fails only on template
// errors. AI mode renders the base document, asks the completion capability
// to rework it for the job description under a rephrase-only constraint, and
// rejects output that fails the truthfulness check with FabricationError.
func (g *Generator) Generate(ctx context.Context, cs *types.ContentSet, mode types.GenerationMode, templateName, jobDescription string, index int) (*types.Candidate, error) {
	switch mode {
	case types.ModeDeterministic, types.ModeFallback:
		text, err := g.renderer.Render(cs, templateName)
		if err != nil {
			return nil, err
		}
		return &types.Candidate{Index: index, Text: text, Mode: mode}, nil

	case types.ModeAI:
		return g.generateAI(ctx, cs, templateName, jobDescription, index)

	default:
		return nil, fmt.Errorf("unknown generation mode %q", mode)
	}
}

func (g *Generator) generateAI(ctx context.Context, cs *types.ContentSet, templateName, jobDescription string, index int) (*types.Candidate, error) {
	if g.client == nil {
		return nil, ErrUnconfigured
	}

	base, err := g.renderer.Render(cs, templateName)
	if err != nil {
		return nil, err
	}

	prompt, err := buildPrompt(base, cs, jobDescription)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	text := llm.ExtractFromCodeBlock(resp)
	if fabricated := keywords.FabricatedTerms(text, cs.CorpusText()); len(fabricated) > 0 {
		return nil, &FabricationError{Terms: fabricated}
	}

	return &types.Candidate{Index: index, Text: text, Mode: types.ModeAI}, nil
}

// buildPrompt assembles the rephrase-only customization prompt: the rendered
// base document, the content set as the closed world of allowed facts, and
// the job description to target.
func buildPrompt(baseDocument string, cs *types.ContentSet, jobDescription string) (string, error) {
	source, err := json.MarshalIndent(cs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode content set: %w", err)
	}

	template := prompts.MustGet("generation.json", "customize-resume")
	return prompts.Format(template, map[string]string{
		"BaseResume":     baseDocument,
		"ContentSet":     string(source),
		"JobDescription": jobDescription,
	}), nil
}
