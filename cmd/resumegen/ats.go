package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhoran/resumegen/internal/ats"
	"github.com/mhoran/resumegen/internal/config"
	"github.com/mhoran/resumegen/internal/keywords"
	"github.com/mhoran/resumegen/internal/observability"
	"github.com/mhoran/resumegen/internal/rendering"
	"github.com/mhoran/resumegen/internal/selection"
)

var atsCommand = &cobra.Command{
	Use:   "ats",
	Short: "Score a resume's ATS compatibility against a job description",
	Long: `Scores a resume document against a job description across format parsing,
keyword coverage, section structure, contact information, and readability.

Score either an existing document (--document) or a variant rendered on the
fly from the history document (--history with --variant).`,
	RunE: runATS,
}

var (
	atsConfigPath   string
	atsDocumentPath string
	atsHistoryPath  string
	atsVariant      string
	atsJob          string
	atsJobURL       string
	atsAPIKey       string
	atsJSONOut      string
)

func init() {
	atsCommand.Flags().StringVar(&atsConfigPath, "config", "config.json", "Path to config.json (weights and variants)")
	atsCommand.Flags().StringVarP(&atsDocumentPath, "document", "d", "", "Path to an existing resume document to score")
	atsCommand.Flags().StringVar(&atsHistoryPath, "history", "", "Path to the history document JSON file (with --variant)")
	atsCommand.Flags().StringVar(&atsVariant, "variant", "", "Variant to render and score (with --history)")
	atsCommand.Flags().StringVarP(&atsJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	atsCommand.Flags().StringVar(&atsJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	atsCommand.Flags().StringVar(&atsAPIKey, "api-key", "", "Gemini API key for LLM keyword extraction (optional)")
	atsCommand.Flags().StringVar(&atsJSONOut, "json", "", "Write the full report as JSON to this path (- for stdout)")

	rootCmd.AddCommand(atsCommand)
}

func runATS(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(atsConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	document, err := loadScoreTarget(cfg)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(ctx, atsJob, atsJobURL)
	if err != nil {
		return err
	}

	client, err := newClient(ctx, cfg, atsAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	var extractor keywords.Extractor = keywords.NewRegexExtractor()
	if client != nil {
		defer func() { _ = client.Close() }()
		extractor = keywords.NewLLMExtractor(client)
	}

	report, err := ats.NewScorer(extractor).Score(ctx, document, jobText, cfg.CategoryWeights)
	if err != nil {
		return err
	}

	if atsJSONOut != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if atsJSONOut == "-" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(atsJSONOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report file %s: %w", atsJSONOut, err)
		}
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintScoreReport(report)
	return nil
}

// loadScoreTarget resolves the document to score: an existing file, or a
// deterministic render of the named variant.
func loadScoreTarget(cfg *config.Config) (string, error) {
	switch {
	case atsDocumentPath != "" && atsHistoryPath != "":
		return "", fmt.Errorf("--document and --history are mutually exclusive; provide only one")
	case atsDocumentPath != "":
		data, err := os.ReadFile(atsDocumentPath)
		if err != nil {
			return "", fmt.Errorf("failed to read document %s: %w", atsDocumentPath, err)
		}
		return string(data), nil
	case atsHistoryPath != "":
		if atsVariant == "" {
			return "", fmt.Errorf("--variant is required with --history")
		}
		variant, err := cfg.Variant(atsVariant)
		if err != nil {
			return "", err
		}
		history, err := loadHistory(atsHistoryPath)
		if err != nil {
			return "", err
		}
		cs, err := selection.Select(history, variant, nil)
		if err != nil {
			return "", err
		}
		return rendering.New(rendering.DefaultRepository()).Render(cs, cfg.Template)
	default:
		return "", fmt.Errorf("either --document or --history must be provided")
	}
}
