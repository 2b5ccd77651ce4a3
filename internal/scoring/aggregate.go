package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbellini/landing-optimizer/internal/types"
)

// bucketMinutes maps each timing bucket onto a representative minute value
// used for category and report totals.
var bucketMinutes = map[string]int{
	types.TimingQuick:  22,
	types.TimingShort:  45,
	types.TimingMedium: 90,
	types.TimingLong:   270,
}

// defaultBucketMinutes is used when a timing string carries no parseable
// minute information at all.
const defaultBucketMinutes = 45

// CategoryScores holds the elementwise sums for one category.
type CategoryScores struct {
	OptimizationScore int
	ImpactScore       int
	TimingMinutes     int
}

// ReportScores holds the unscaled sums across all categories. The totals may
// legitimately exceed 100: each category is internally bounded but the report
// aggregates several of them.
type ReportScores struct {
	OptimizationScoreTotal int
	ImpactScoreTotal       int
	TotalTimingMinutes     int
}

// CategoryTotals sums element scores into category totals. Pure and
// idempotent; empty input yields all zeros.
func CategoryTotals(elements []types.ElementResult) CategoryScores {
	var totals CategoryScores
	for _, el := range elements {
		totals.OptimizationScore += el.Metrics.Optimization
		totals.ImpactScore += el.Metrics.Impact
		totals.TimingMinutes += MinutesForBucket(el.Metrics.Timing)
	}
	return totals
}

// ReportTotals sums category totals into report totals without rescaling.
func ReportTotals(categories []types.CategoryResult) ReportScores {
	var totals ReportScores
	for _, cat := range categories {
		totals.OptimizationScoreTotal += cat.OptimizationScore
		totals.ImpactScoreTotal += cat.ImpactScore
		totals.TotalTimingMinutes += cat.TimingMinutes
	}
	return totals
}

// MinutesForBucket converts a timing bucket string back into a representative
// minute value. Known buckets use the fixed map; unrecognized strings fall
// back to number extraction (scaled to minutes when the text mentions hours),
// then to the default.
func MinutesForBucket(bucket string) int {
	if minutes, ok := bucketMinutes[bucket]; ok {
		return minutes
	}

	if n, ok := firstNumber(bucket); ok {
		lower := strings.ToLower(bucket)
		if strings.Contains(lower, "hour") || strings.Contains(lower, "hr") {
			return n * 60
		}
		return n
	}

	return defaultBucketMinutes
}

// firstNumber extracts the first run of digits from s.
func firstNumber(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}

// FormatMinutes renders a minute total as a compact display string for the
// report payload ("45m", "3h", "3h 45m").
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rest)
}
