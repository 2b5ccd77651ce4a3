// Package types provides type definitions for structured data used throughout the landing-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TimingBucket display strings for per-element implementation estimates.
const (
	TimingQuick  = "15-30 min"
	TimingShort  = "30-60 min"
	TimingMedium = "1-2 hours"
	TimingLong   = "3-6 hours"
)

// SiteTextNotFound is the sentinel stored in ElementResult.SiteText when no
// page text could be resolved for a canonical element.
const SiteTextNotFound = "Not found"

// ElementMetrics holds the computed scores for a single element.
// Optimization is scored 1-6 and Impact 1-4 before budget enforcement;
// after enforcement their sum never exceeds 100.
type ElementMetrics struct {
	Optimization int    `json:"optimization"`
	Impact       int    `json:"impact"`
	Timing       string `json:"timing"`
}

// ElementResult is the fully resolved, scored representation of one canonical
// element after normalization. Element and Title always carry the canonical
// name, never the AI-provided one.
type ElementResult struct {
	Element  string         `json:"element"`
	Title    string         `json:"title"`
	SiteText string         `json:"siteText"`
	Problem  string         `json:"problem"`
	Solution string         `json:"solution"`
	Actions  []string       `json:"actions"`
	Metrics  ElementMetrics `json:"metrics"`
}

// CategoryResult carries one canonical category with its resolved elements
// and elementwise score totals.
type CategoryResult struct {
	Category          string          `json:"category"`
	Elements          []ElementResult `json:"elements"`
	OptimizationScore int             `json:"optimizationScore"`
	ImpactScore       int             `json:"impactScore"`
	TimingMinutes     int             `json:"timingMinutes"`
	Timing            string          `json:"timing"`
}

// Report is the final payload handed to the presentation layer.
// The totals are straight sums across categories and are deliberately not
// rescaled to 100: each category is internally bounded, the report spans
// several of them. The *Totale wire names are the established external
// contract and must not be renamed.
type Report struct {
	Report                 []CategoryResult `json:"report"`
	OptimizationScoreTotal int              `json:"optimizationScoreTotale"`
	ImpactScoreTotal       int              `json:"impactScoreTotale"`
	TotalTiming            string           `json:"totalTiming"`
}
