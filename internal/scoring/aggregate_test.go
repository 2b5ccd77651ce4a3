package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbellini/landing-optimizer/internal/types"
)

func TestCategoryTotals(t *testing.T) {
	elements := []types.ElementResult{
		{Metrics: types.ElementMetrics{Optimization: 4, Impact: 3, Timing: types.TimingQuick}},
		{Metrics: types.ElementMetrics{Optimization: 2, Impact: 4, Timing: types.TimingLong}},
		{Metrics: types.ElementMetrics{Optimization: 5, Impact: 1, Timing: types.TimingShort}},
	}

	totals := CategoryTotals(elements)
	assert.Equal(t, 11, totals.OptimizationScore)
	assert.Equal(t, 8, totals.ImpactScore)
	assert.Equal(t, 22+270+45, totals.TimingMinutes)
}

func TestCategoryTotals_EmptyInput(t *testing.T) {
	totals := CategoryTotals(nil)
	assert.Equal(t, CategoryScores{}, totals)
}

func TestCategoryTotals_Idempotent(t *testing.T) {
	elements := []types.ElementResult{
		{Metrics: types.ElementMetrics{Optimization: 3, Impact: 2, Timing: types.TimingMedium}},
	}
	first := CategoryTotals(elements)
	second := CategoryTotals(elements)
	assert.Equal(t, first, second)
}

func TestReportTotals(t *testing.T) {
	categories := []types.CategoryResult{
		{OptimizationScore: 14, ImpactScore: 11, TimingMinutes: 180},
		{OptimizationScore: 12, ImpactScore: 9, TimingMinutes: 90},
	}

	totals := ReportTotals(categories)
	assert.Equal(t, 26, totals.OptimizationScoreTotal)
	assert.Equal(t, 20, totals.ImpactScoreTotal)
	assert.Equal(t, 270, totals.TotalTimingMinutes)
}

func TestReportTotals_NoRescaling(t *testing.T) {
	// Report totals are raw sums and may exceed 100.
	categories := []types.CategoryResult{
		{OptimizationScore: 60},
		{OptimizationScore: 60},
	}
	totals := ReportTotals(categories)
	assert.Equal(t, 120, totals.OptimizationScoreTotal)
}

func TestMinutesForBucket(t *testing.T) {
	tests := []struct {
		bucket string
		want   int
	}{
		{types.TimingQuick, 22},
		{types.TimingShort, 45},
		{types.TimingMedium, 90},
		{types.TimingLong, 270},
		{"90 minutes", 90},
		{"2 hours", 120},
		{"1 hr", 60},
		{"about 25 min", 25},
		{"soon", 45},
		{"", 45},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			assert.Equal(t, tt.want, MinutesForBucket(tt.bucket))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{120, "2h"},
		{225, "3h 45m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
	}
}
