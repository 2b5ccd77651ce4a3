package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mbellini/landing-optimizer/internal/config"
	"github.com/mbellini/landing-optimizer/internal/llm"
	"github.com/mbellini/landing-optimizer/internal/observability"
	"github.com/mbellini/landing-optimizer/internal/pipeline"
)

// maxConcurrentAnalyses bounds the fan-out when several URLs are given.
const maxConcurrentAnalyses = 3

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url...]",
	Short: "Generate optimization reports for one or more landing pages",
	Long:  "Analyzes each landing page URL with the selected focus area and writes a scored optimization report as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeFocusArea  string
	analyzeIndustry   string
	analyzeGoals      []string
	analyzeOutputDir  string
	analyzeAPIKey     string
	analyzeConfigPath string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFocusArea, "focus", "f", "copywriting", "Focus area (copywriting, uxui, mobile, cta, seo)")
	analyzeCmd.Flags().StringVarP(&analyzeIndustry, "industry", "i", "other", "Industry context (ecommerce, saas, services, local, other)")
	analyzeCmd.Flags().StringSliceVarP(&analyzeGoals, "goal", "g", nil, "Business goal labels (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputDir, "out", "o", ".", "Output directory for report JSON")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render pages in a headless browser (for SPA sites)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a report summary to stdout")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	if analyzeConfigPath != "" {
		cfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		applyConfig(cfg)
	}

	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	if err := os.MkdirAll(analyzeOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", analyzeOutputDir, err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	runner := pipeline.NewRunner(client, nil, nil)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)
	for _, url := range args {
		g.Go(func() error {
			return analyzeOne(gctx, runner, url)
		})
	}
	return g.Wait()
}

// analyzeOne runs the pipeline for a single URL and writes its report file.
func analyzeOne(ctx context.Context, runner *pipeline.Runner, url string) error {
	result, err := runner.Run(ctx, pipeline.Options{
		URL:        url,
		FocusArea:  analyzeFocusArea,
		Industry:   analyzeIndustry,
		Goals:      analyzeGoals,
		UseBrowser: analyzeUseBrowser,
	})
	if err != nil {
		return fmt.Errorf("analysis of %s failed: %w", url, err)
	}

	payload := map[string]any{
		"url":        url,
		"focus_area": result.FocusArea,
		"industry":   result.Industry,
		"benchmark":  result.Benchmark,
		"report":     result.Report,
	}
	reportJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report for %s: %w", url, err)
	}

	outPath := filepath.Join(analyzeOutputDir, reportFilename(url, result.FocusArea))
	if err := os.WriteFile(outPath, reportJSON, 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", outPath, err)
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintReport(result.Report, result.Benchmark)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Report: %s\n", outPath)
	return nil
}

// applyConfig fills unset flags from the config file.
func applyConfig(cfg *config.Config) {
	if cfg.FocusArea != "" {
		analyzeFocusArea = cfg.FocusArea
	}
	if cfg.Industry != "" {
		analyzeIndustry = cfg.Industry
	}
	if len(cfg.Goals) > 0 && len(analyzeGoals) == 0 {
		analyzeGoals = cfg.Goals
	}
	if cfg.APIKey != "" && analyzeAPIKey == "" {
		analyzeAPIKey = cfg.APIKey
	}
	if cfg.Out != "" {
		analyzeOutputDir = cfg.Out
	}
	analyzeUseBrowser = analyzeUseBrowser || cfg.UseBrowser
	analyzeVerbose = analyzeVerbose || cfg.Verbose
}

// reportFilename builds a filesystem-safe name for a report file.
func reportFilename(url, focusArea string) string {
	slug := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, slug)
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return fmt.Sprintf("report_%s_%s.json", slug, focusArea)
}
