package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mhoran/resumegen/internal/config"
	"github.com/mhoran/resumegen/internal/jobparse"
	"github.com/mhoran/resumegen/internal/llm"
	"github.com/mhoran/resumegen/internal/schemas"
	"github.com/mhoran/resumegen/internal/types"
)

// loadHistory reads the history document, validates it against the embedded
// schema, and unmarshals it.
func loadHistory(path string) (*types.HistoryDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}

	if err := schemas.ValidateHistoryDocument(data); err != nil {
		return nil, err
	}

	var history types.HistoryDocument
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse history JSON: %w", err)
	}
	return &history, nil
}

// loadJobText resolves the job description from a text file or a URL.
// Exactly one of jobPath/jobURL must be set.
func loadJobText(ctx context.Context, jobPath, jobURL string) (string, error) {
	switch {
	case jobPath != "" && jobURL != "":
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	case jobPath != "":
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", jobPath, err)
		}
		posting, err := jobparse.ParseText(string(data))
		if err != nil {
			return "", err
		}
		return posting.Text, nil
	case jobURL != "":
		posting, err := jobparse.FetchURL(ctx, jobURL)
		if err != nil {
			return "", err
		}
		return posting.Text, nil
	default:
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
}

// newClient builds the Gemini client when an API key is available, flag over
// config over environment. A nil client (no error) means the AI path is
// unconfigured and callers degrade to deterministic output.
func newClient(ctx context.Context, cfg *config.Config, apiKeyFlag string) (llm.Client, error) {
	apiKey := apiKeyFlag
	if apiKey == "" && cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil
	}

	model := ""
	if cfg != nil {
		model = cfg.Model
	}
	return llm.NewGeminiClient(ctx, apiKey, model)
}
