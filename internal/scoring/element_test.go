package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbellini/landing-optimizer/internal/types"
)

func TestOptimizationScore(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name       string
		element    string
		industry   string
		focusArea  string
		hasContent bool
		want       int
	}{
		{"known element with content", "Main headline", "other", "copywriting", true, 4},
		{"known element without content", "Main headline", "other", "copywriting", false, 2},
		{"seo element without content bottoms out", "Title tag", "other", "seo", false, 1},
		{"ecommerce shifts up", "Main headline", "ecommerce", "copywriting", true, 5},
		{"local shifts down", "Main headline", "local", "copywriting", true, 3},
		{"unknown element uses focus default", "Mystery element", "other", "copywriting", true, 4},
		{"unknown element without content", "Mystery element", "other", "seo", false, 1},
		{"unknown focus area uses hard default", "Main headline", "other", "pricing", true, 4},
		{"local cannot push below minimum", "Title tag", "local", "seo", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptimizationScore(tables, tt.element, tt.industry, "", tt.focusArea, tt.hasContent)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptimizationScore_ClampsAtMaximum(t *testing.T) {
	// A base already at the top of the scale stays there under a positive
	// industry adjustment.
	tables := &Tables{
		Optimization: map[string]map[string]ContentVariants{
			"copywriting": {"Main headline": {WithContent: 6, WithoutContent: 3}},
		},
		IndustryOptimizationAdj: map[string]int{"ecommerce": 1},
	}

	got := OptimizationScore(tables, "Main headline", "ecommerce", "", "copywriting", true)
	assert.Equal(t, MaxOptimization, got)
}

func TestImpactScore(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name      string
		element   string
		industry  string
		focusArea string
		want      int
	}{
		{"known element", "Main headline", "other", "copywriting", 4},
		{"ecommerce clamps at maximum", "Main headline", "ecommerce", "copywriting", 4},
		{"local shifts down", "Main headline", "local", "copywriting", 3},
		{"unknown element uses default", "Mystery element", "other", "copywriting", 2},
		{"minimum holds under local", "Button shape", "local", "cta", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImpactScore(tables, tt.element, tt.industry, "", tt.focusArea, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinScoreBudget(t *testing.T) {
	assert.True(t, WithinScoreBudget(4, 3))
	assert.True(t, WithinScoreBudget(60, 40))
	assert.False(t, WithinScoreBudget(70, 40))
}

func TestEnforceScoreBudget(t *testing.T) {
	tests := []struct {
		name         string
		optimization int
		impact       int
		wantOpt      int
		wantImpact   int
	}{
		{"normal scores pass through", 4, 3, 4, 3},
		{"exact budget passes through", 60, 40, 60, 40},
		{"over budget rescales proportionally", 70, 40, 64, 36},
		{"heavily skewed pair keeps proportion", 180, 20, 90, 10},
		{"zero impact stays zero", 120, 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOpt, gotImpact := EnforceScoreBudget(tt.optimization, tt.impact)
			assert.Equal(t, tt.wantOpt, gotOpt)
			assert.Equal(t, tt.wantImpact, gotImpact)
			assert.LessOrEqual(t, gotOpt+gotImpact, ScoreBudget)
		})
	}
}

func TestTimingEstimate(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name     string
		element  string
		industry string
		impact   int
		want     string
	}{
		// On the 1-4 impact scale the 0.9 tier always applies.
		{"quick element", "Main headline", "other", 3, types.TimingQuick},
		{"medium element", "Tone of voice", "other", 2, types.TimingMedium},
		{"ecommerce stretches estimate", "Steps to convert", "ecommerce", 4, types.TimingLong},
		{"local compresses estimate", "Value proposition", "local", 3, types.TimingShort},
		{"unknown element uses default minutes", "Mystery element", "other", 3, types.TimingShort},
		{"unknown industry multiplier is neutral", "Main headline", "aerospace", 3, types.TimingQuick},
		// Legacy tier thresholds only engage for out-of-scale impact values.
		{"high tier on out-of-scale impact", "Tone of voice", "other", 30, types.TimingMedium},
		{"neutral tier on out-of-scale impact", "Value proposition", "other", 15, types.TimingShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimingEstimate(tables, tt.element, tt.industry, "", "copywriting", tt.impact)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBucketForMinutes(t *testing.T) {
	assert.Equal(t, types.TimingQuick, bucketForMinutes(30))
	assert.Equal(t, types.TimingShort, bucketForMinutes(31))
	assert.Equal(t, types.TimingShort, bucketForMinutes(60))
	assert.Equal(t, types.TimingMedium, bucketForMinutes(61))
	assert.Equal(t, types.TimingMedium, bucketForMinutes(120))
	assert.Equal(t, types.TimingLong, bucketForMinutes(121))
}
