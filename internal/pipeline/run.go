// Package pipeline orchestrates one report-generation request: scrape the
// landing page, build the prompt, call the LLM with a bounded retry budget,
// and normalize the response into a canonical scored report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mbellini/landing-optimizer/internal/llm"
	"github.com/mbellini/landing-optimizer/internal/normalize"
	"github.com/mbellini/landing-optimizer/internal/prompt"
	"github.com/mbellini/landing-optimizer/internal/schema"
	"github.com/mbellini/landing-optimizer/internal/scoring"
	"github.com/mbellini/landing-optimizer/internal/scrape"
	"github.com/mbellini/landing-optimizer/internal/types"
)

// maxGenerateAttempts is the retry budget for upstream generation. Attempts
// are sequential with no backoff between them.
const maxGenerateAttempts = 2

// Generator is the slice of the LLM client the pipeline needs.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// Options describes one analysis request.
type Options struct {
	URL        string
	FocusArea  string
	Industry   string
	Goals      []string
	UseBrowser bool
}

// Result is the outcome of a completed analysis.
type Result struct {
	Report    *types.Report
	Benchmark int
	Page      *scrape.Page
	FocusArea string // canonical key actually used
	Industry  string // canonical key actually used
	Repaired  bool   // schema mismatch survived the retry budget and was defaulted
}

// Runner wires the pipeline collaborators. Safe for concurrent use: all
// scoring state is read-only and each Run works on request-local data.
type Runner struct {
	generator  Generator
	tables     *scoring.Tables
	scrapeOpts *scrape.Options
}

// NewRunner creates a Runner. A nil tables value uses the defaults.
func NewRunner(generator Generator, tables *scoring.Tables, scrapeOpts *scrape.Options) *Runner {
	if tables == nil {
		tables = scoring.DefaultTables()
	}
	if scrapeOpts == nil {
		scrapeOpts = scrape.DefaultOptions()
	}
	return &Runner{generator: generator, tables: tables, scrapeOpts: scrapeOpts}
}

// generation carries one generation attempt's parsed output through Retry.
type generation struct {
	raw         []types.RawCategory
	parseFailed bool
}

// Run executes one full analysis request.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	focusKey, known := schema.NormalizeFocusArea(opts.FocusArea)
	if !known && opts.FocusArea != "" {
		log.Printf("[PIPELINE] warning: unknown focus area %q, using %q", opts.FocusArea, focusKey)
	}
	industryKey, known := schema.NormalizeIndustry(opts.Industry)
	if !known && opts.Industry != "" {
		log.Printf("[PIPELINE] warning: unknown industry %q, using %q", opts.Industry, industryKey)
	}
	fa := schema.ForFocusArea(focusKey)

	scrapeOpts := *r.scrapeOpts
	scrapeOpts.UseBrowser = scrapeOpts.UseBrowser || opts.UseBrowser
	page, err := scrape.Fetch(ctx, opts.URL, &scrapeOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch landing page: %w", err)
	}

	reportPrompt := prompt.BuildReportPrompt(fa, page, industryKey, opts.Goals)

	gen, outcome, err := Retry(maxGenerateAttempts, func(attempt int) (generation, Outcome, error) {
		return r.generateOnce(ctx, reportPrompt, fa, attempt)
	})

	normOpts := normalize.Options{
		FocusArea: fa,
		Industry:  industryKey,
		Goals:     opts.Goals,
		Tables:    r.tables,
	}

	result := &Result{
		Page:      page,
		FocusArea: focusKey,
		Industry:  industryKey,
		Benchmark: scoring.Benchmark(r.tables, focusKey, opts.Industry, opts.Goals),
	}

	switch outcome {
	case OutcomeOK:
		result.Report = normalize.BuildReport(gen.raw, normOpts)
	case OutcomeFatal:
		return nil, fmt.Errorf("report generation failed: %w", err)
	case OutcomeRegenerate:
		if gen.parseFailed {
			// Unparsable output is the one non-recoverable normalization
			// failure: no report is fabricated from pure defaults.
			return nil, fmt.Errorf("report generation failed after %d attempts: %w", maxGenerateAttempts, err)
		}
		log.Printf("[PIPELINE] warning: schema mismatch after %d attempts, repairing via defaults: %v", maxGenerateAttempts, err)
		result.Report = normalize.BuildReport(gen.raw, normOpts)
		result.Repaired = true
	}

	return result, nil
}

// generateOnce performs one LLM call and classifies the response.
func (r *Runner) generateOnce(ctx context.Context, reportPrompt string, fa schema.FocusArea, attempt int) (generation, Outcome, error) {
	text, err := r.generator.GenerateJSON(ctx, reportPrompt, llm.TierStandard)
	if err != nil {
		return generation{}, OutcomeFatal, err
	}

	raw, span, err := normalize.ParseRawReport(text)
	if err != nil {
		var parseErr *normalize.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("[PIPELINE] attempt %d: %v", attempt, err)
			return generation{parseFailed: true}, OutcomeRegenerate, err
		}
		// Valid JSON of the wrong shape: regeneration signal, repairable.
		log.Printf("[PIPELINE] attempt %d: %v", attempt, err)
		return generation{}, OutcomeRegenerate, err
	}

	if err := normalize.CheckStructure(span); err != nil {
		log.Printf("[PIPELINE] attempt %d: %v", attempt, err)
		return generation{raw: raw}, OutcomeRegenerate, err
	}

	if v := normalize.ValidateShape(raw, fa); v.NeedsRegeneration {
		err := fmt.Errorf("canonical shape mismatch: %v", v.Errors)
		log.Printf("[PIPELINE] attempt %d: %v", attempt, err)
		return generation{raw: raw}, OutcomeRegenerate, err
	}

	return generation{raw: raw}, OutcomeOK, nil
}
