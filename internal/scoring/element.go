package scoring

import (
	"math"

	"github.com/mbellini/landing-optimizer/internal/types"
)

// Score bounds for a single element.
const (
	MinOptimization = 1
	MaxOptimization = 6
	MinImpact       = 1
	MaxImpact       = 4

	// ScoreBudget is the hard per-element ceiling on optimization+impact,
	// expressed in percentage points.
	ScoreBudget = 100
)

// OptimizationScore computes the optimization score (1-6) for one element.
// The base comes from the per-focusArea table keyed by hasContent, shifted by
// the industry adjustment and clamped. Unknown elements use the focus area
// default; unknown focus areas or industries contribute nothing. The category
// name is accepted for parity with the other scorers but does not key any
// table.
func OptimizationScore(t *Tables, element, industry, category, focusArea string, hasContent bool) int {
	variants, ok := t.Optimization[focusArea][element]
	if !ok {
		variants, ok = t.OptimizationDefaults[focusArea]
		if !ok {
			variants = ContentVariants{WithContent: 4, WithoutContent: 2}
		}
	}

	base := variants.WithoutContent
	if hasContent {
		base = variants.WithContent
	}

	return clamp(base+t.IndustryOptimizationAdj[industry], MinOptimization, MaxOptimization)
}

// ImpactScore computes the impact score (1-4) for one element. The
// optimization score is accepted for forward compatibility but does not bias
// the lookup.
func ImpactScore(t *Tables, element, industry, category, focusArea string, _ int) int {
	base, ok := t.Impact[focusArea][element]
	if !ok {
		base = t.ImpactDefault
	}
	return clamp(base+t.IndustryImpactAdj[industry], MinImpact, MaxImpact)
}

// WithinScoreBudget reports whether optimization+impact respects the
// per-element budget. Diagnostic only; violations are corrected by
// EnforceScoreBudget, never rejected.
func WithinScoreBudget(optimization, impact int) bool {
	return optimization+impact <= ScoreBudget
}

// EnforceScoreBudget proportionally rescales (optimization, impact) so their
// sum never exceeds ScoreBudget. The raw scores are treated directly as
// percentage-equivalent values; under normal 1-6/1-4 inputs the sum is far
// below the budget and the pair passes through unchanged.
func EnforceScoreBudget(optimization, impact int) (int, int) {
	sum := optimization + impact
	if sum <= ScoreBudget {
		return optimization, impact
	}

	scaledOpt := int(math.Round(float64(optimization) * ScoreBudget / float64(sum)))
	scaledImpact := int(math.Round(float64(impact) * ScoreBudget / float64(sum)))
	return scaledOpt, scaledImpact
}

// TimingEstimate derives the implementation-time bucket for one element.
// Base minutes per element (default when unknown) are scaled by the industry
// multiplier and an impact-tier multiplier, rounded and bucketed.
//
// The impact tiers compare against 25 and 15 while impact is scored 1-4, so
// the 0.9 branch is the one taken under normal inputs. Kept exactly as the
// established behavior; see DESIGN.md.
func TimingEstimate(t *Tables, element, industry, category, focusArea string, impact int) string {
	base, ok := t.TimingMinutes[element]
	if !ok {
		base = t.TimingDefaultMinutes
		if base == 0 {
			base = 45
		}
	}

	multiplier := t.IndustryTimingMultiplier[industry]
	if multiplier == 0 {
		multiplier = 1.0
	}

	tier := 0.9
	switch {
	case impact >= 25:
		tier = 1.2
	case impact >= 15:
		tier = 1.0
	}

	minutes := int(math.Round(float64(base) * multiplier * tier))
	return bucketForMinutes(minutes)
}

// bucketForMinutes maps a minute estimate onto the four display buckets.
func bucketForMinutes(minutes int) string {
	switch {
	case minutes <= 30:
		return types.TimingQuick
	case minutes <= 60:
		return types.TimingShort
	case minutes <= 120:
		return types.TimingMedium
	default:
		return types.TimingLong
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
