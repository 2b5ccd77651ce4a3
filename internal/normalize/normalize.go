package normalize

import (
	"log"
	"strings"

	"github.com/mbellini/landing-optimizer/internal/schema"
	"github.com/mbellini/landing-optimizer/internal/scoring"
	"github.com/mbellini/landing-optimizer/internal/types"
)

// Options carries the request context needed to resolve and score a report.
type Options struct {
	FocusArea schema.FocusArea
	Industry  string // canonical industry key
	Goals     []string
	Tables    *scoring.Tables
}

// BuildReport maps raw LLM categories onto the canonical schema and scores
// every element. The output always has exactly the canonical categories and
// elements, in canonical order, each fully populated — regardless of how
// malformed the input was. Raw input may be nil (full per-element
// defaulting).
func BuildReport(raw []types.RawCategory, opts Options) *types.Report {
	if opts.Tables == nil {
		opts.Tables = scoring.DefaultTables()
	}

	categories := make([]types.CategoryResult, 0, len(opts.FocusArea.Categories))
	for i, canonical := range opts.FocusArea.Categories {
		pool := candidatePool(raw, canonical.Name, i)

		elements := make([]types.ElementResult, 0, len(canonical.Elements))
		for _, name := range canonical.Elements {
			rawElem, found := takeMatch(pool, name)
			if !found {
				rawElem = types.RawElement{Element: name, SiteText: types.SiteTextNotFound}
			}
			elements = append(elements, resolveElement(rawElem, name, canonical.Name, opts))
		}

		totals := scoring.CategoryTotals(elements)
		categories = append(categories, types.CategoryResult{
			Category:          canonical.Name,
			Elements:          elements,
			OptimizationScore: totals.OptimizationScore,
			ImpactScore:       totals.ImpactScore,
			TimingMinutes:     totals.TimingMinutes,
			Timing:            scoring.FormatMinutes(totals.TimingMinutes),
		})
	}

	totals := scoring.ReportTotals(categories)
	return &types.Report{
		Report:                 categories,
		OptimizationScoreTotal: totals.OptimizationScoreTotal,
		ImpactScoreTotal:       totals.ImpactScoreTotal,
		TotalTiming:            scoring.FormatMinutes(totals.TotalTimingMinutes),
	}
}

// resolveElement forces the canonical name onto a raw element, scores it and
// substitutes deterministic fallbacks for missing analysis text.
func resolveElement(raw types.RawElement, name, category string, opts Options) types.ElementResult {
	siteText := strings.TrimSpace(raw.SiteText)
	if siteText == "" {
		siteText = types.SiteTextNotFound
	}
	hasContent := siteText != types.SiteTextNotFound

	focusKey := opts.FocusArea.Key
	optimization := scoring.OptimizationScore(opts.Tables, name, opts.Industry, category, focusKey, hasContent)
	impact := scoring.ImpactScore(opts.Tables, name, opts.Industry, category, focusKey, optimization)

	if !scoring.WithinScoreBudget(optimization, impact) {
		log.Printf("[NORMALIZE] warning: element %q exceeds score budget (optimization=%d impact=%d), rescaling", name, optimization, impact)
	}
	optimization, impact = scoring.EnforceScoreBudget(optimization, impact)

	timing := scoring.TimingEstimate(opts.Tables, name, opts.Industry, category, focusKey, impact)

	problem := raw.Problem
	if IsNoData(problem) {
		problem = FallbackProblem(name, category, opts.Industry, opts.Goals)
	}
	solution := raw.Solution
	if IsNoData(solution) {
		solution = FallbackSolution(name, category, opts.Industry, opts.Goals)
	}
	actions := normalizeActions(raw.Actions, name, category, opts.Industry, opts.Goals)

	return types.ElementResult{
		Element:  name,
		Title:    name,
		SiteText: siteText,
		Problem:  problem,
		Solution: solution,
		Actions:  actions,
		Metrics: types.ElementMetrics{
			Optimization: optimization,
			Impact:       impact,
			Timing:       timing,
		},
	}
}

// candidatePool selects the raw elements for one canonical category,
// preferring a category-name match and falling back to positional pairing.
// The returned pool is consumed destructively by takeMatch so each AI
// element feeds at most one canonical slot.
func candidatePool(raw []types.RawCategory, categoryName string, index int) *[]types.RawElement {
	for i := range raw {
		if strings.EqualFold(strings.TrimSpace(raw[i].Category), categoryName) {
			pool := append([]types.RawElement(nil), raw[i].Elements...)
			return &pool
		}
	}
	if index < len(raw) {
		pool := append([]types.RawElement(nil), raw[index].Elements...)
		return &pool
	}
	empty := []types.RawElement{}
	return &empty
}

// takeMatch finds and removes the raw element matching a canonical name.
// Exact case-insensitive match wins; otherwise the first fuzzy candidate is
// taken, where either name contains the first token of the other.
func takeMatch(pool *[]types.RawElement, canonicalName string) (types.RawElement, bool) {
	elements := *pool

	for i, el := range elements {
		if strings.EqualFold(strings.TrimSpace(el.Element), canonicalName) {
			*pool = append(elements[:i:i], elements[i+1:]...)
			return el, true
		}
	}

	canonLower := strings.ToLower(canonicalName)
	canonToken := firstToken(canonLower)
	for i, el := range elements {
		elLower := strings.ToLower(strings.TrimSpace(el.Element))
		if elLower == "" {
			continue
		}
		if strings.Contains(elLower, canonToken) || strings.Contains(canonLower, firstToken(elLower)) {
			*pool = append(elements[:i:i], elements[i+1:]...)
			return el, true
		}
	}

	return types.RawElement{}, false
}

// firstToken returns the first whitespace-delimited token of s.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}
