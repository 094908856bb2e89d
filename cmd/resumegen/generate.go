package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhoran/resumegen/internal/config"
	"github.com/mhoran/resumegen/internal/generation"
	"github.com/mhoran/resumegen/internal/keywords"
	"github.com/mhoran/resumegen/internal/llm"
	"github.com/mhoran/resumegen/internal/logger"
	"github.com/mhoran/resumegen/internal/observability"
	"github.com/mhoran/resumegen/internal/ranking"
	"github.com/mhoran/resumegen/internal/rendering"
	"github.com/mhoran/resumegen/internal/selection"
	"github.com/mhoran/resumegen/internal/types"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume variant targeted at a job description",
	Long: `Selects content from the history document for the named variant, generates
the resume (deterministically or via the AI path with judging and fallback),
and writes the result.

Configuration is loaded from a JSON file using --config; flags override it.`,
	RunE: runGenerate,
}

var (
	genConfigPath   string
	genHistoryPath  string
	genVariant      string
	genJob          string
	genJobURL       string
	genMode         string
	genOutput       string
	genTemplate     string
	genTemplateFile string
	genAPIKey       string
	genVerbose      bool
	genJSONLog      bool
)

func init() {
	generateCommand.Flags().StringVar(&genConfigPath, "config", "config.json", "Path to config.json defining variants")
	generateCommand.Flags().StringVar(&genHistoryPath, "history", "", "Path to the history document JSON file")
	generateCommand.Flags().StringVar(&genVariant, "variant", "", "Variant name to generate")
	generateCommand.Flags().StringVarP(&genJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	generateCommand.Flags().StringVar(&genJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	generateCommand.Flags().StringVar(&genMode, "mode", "ai", "Generation mode: ai or deterministic")
	generateCommand.Flags().StringVarP(&genOutput, "output", "o", "", "Output file path (default: stdout)")
	generateCommand.Flags().StringVarP(&genTemplate, "template", "t", "", "Built-in template name (markdown or text)")
	generateCommand.Flags().StringVar(&genTemplateFile, "template-file", "", "Path to a custom template file (overrides --template)")
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed pipeline information")
	generateCommand.Flags().BoolVar(&genJSONLog, "json-log", false, "Emit logs as JSON")

	_ = generateCommand.MarkFlagRequired("history")
	_ = generateCommand.MarkFlagRequired("variant")

	rootCmd.AddCommand(generateCommand)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(genConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	log, err := logger.New(genJSONLog, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	variant, err := cfg.Variant(genVariant)
	if err != nil {
		return err
	}

	history, err := loadHistory(genHistoryPath)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(ctx, genJob, genJobURL)
	if err != nil {
		return err
	}
	log.Debug("job description loaded",
		zap.Int("chars", len(jobText)),
		zap.String("excerpt", logger.TruncateForLog(jobText, 200)))

	var mode types.GenerationMode
	switch genMode {
	case "ai":
		mode = types.ModeAI
	case "deterministic":
		mode = types.ModeDeterministic
	default:
		return fmt.Errorf("invalid --mode %q: must be ai or deterministic", genMode)
	}

	client, err := newClient(ctx, cfg, genAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	// Extract job keywords: LLM when available, regex otherwise. Extraction
	// failures degrade to the regex path instead of aborting the run.
	var extractor keywords.Extractor = keywords.NewRegexExtractor()
	if client != nil {
		extractor = keywords.NewLLMExtractor(client)
	}
	jobKeywords, err := extractor.Extract(ctx, jobText)
	if err != nil || len(jobKeywords) == 0 {
		log.Warn("keyword extraction degraded to regex", zap.Error(err))
		jobKeywords = keywords.ExtractRegex(jobText)
	}
	log.Debug("job keywords extracted", zap.Strings("keywords", jobKeywords))

	repo := rendering.DefaultRepository()
	templateName := cfg.Template
	if cmd.Flags().Changed("template") {
		templateName = genTemplate
	}
	if genTemplateFile != "" {
		body, err := os.ReadFile(genTemplateFile)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", genTemplateFile, err)
		}
		templateName = "custom"
		repo = rendering.WithTemplate(repo, templateName, string(body))
	}

	generator := generation.NewGenerator(rendering.New(repo), client)
	judge := ranking.NewJudge(ranking.DefaultWeights())

	orchestrator := generation.NewOrchestrator(generator, judge, generation.Options{
		NumGenerations:    cfg.NumGenerations,
		JudgeEnabled:      *cfg.JudgeEnabled,
		FallbackOnFailure: *cfg.FallbackOnFailure,
		Timeout:           time.Duration(cfg.TimeoutSeconds) * time.Second,
		TemplateName:      templateName,
		CacheEnabled:      true,
	}, log)

	result, err := orchestrator.Run(ctx, &generation.Request{
		History:        history,
		Variant:        variant,
		Mode:           mode,
		JobDescription: jobText,
		JobKeywords:    jobKeywords,
	})
	if err != nil {
		if llm.IsKind(err, llm.KindRateLimited) {
			return fmt.Errorf("generation failed on a provider rate limit, retry later: %w", err)
		}
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		if cs, err := selection.Select(history, variant, jobKeywords); err == nil {
			printer.PrintContentSet(cs)
		}
		printer.PrintRunResult(result)
	}

	if genOutput == "" {
		fmt.Println(result.Document)
		return nil
	}
	if err := os.WriteFile(genOutput, []byte(result.Document), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", genOutput, err)
	}
	log.Info("resume written", zap.String("path", genOutput), zap.String("mode", string(result.Mode)))
	return nil
}
