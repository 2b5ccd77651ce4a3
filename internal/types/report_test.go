//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_JSONMarshaling(t *testing.T) {
	report := Report{
		Report: []CategoryResult{
			{
				Category: "Headline & Value Proposition",
				Elements: []ElementResult{
					{
						Element:  "Main headline",
						Title:    "Main headline",
						SiteText: "Ship faster with Acme",
						Problem:  "The headline describes the product, not the outcome.",
						Solution: "Lead with the customer benefit.",
						Actions:  []string{"a", "b", "c"},
						Metrics:  ElementMetrics{Optimization: 4, Impact: 3, Timing: TimingQuick},
					},
				},
				OptimizationScore: 4,
				ImpactScore:       3,
				TimingMinutes:     22,
				Timing:            "22m",
			},
		},
		OptimizationScoreTotal: 4,
		ImpactScoreTotal:       3,
		TotalTiming:            "22m",
	}

	jsonBytes, err := json.Marshal(report)
	require.NoError(t, err)

	// The *Totale wire names are the external contract.
	assert.Contains(t, string(jsonBytes), `"optimizationScoreTotale":4`)
	assert.Contains(t, string(jsonBytes), `"impactScoreTotale":3`)
	assert.Contains(t, string(jsonBytes), `"totalTiming":"22m"`)
	assert.Contains(t, string(jsonBytes), `"category":"Headline & Value Proposition"`)
	assert.Contains(t, string(jsonBytes), `"siteText":"Ship faster with Acme"`)
	assert.Contains(t, string(jsonBytes), `"timing":"15-30 min"`)
}

func TestReport_JSONRoundTrip(t *testing.T) {
	jsonInput := `{
		"report": [
			{
				"category": "Meta Signals",
				"elements": [
					{
						"element": "Title tag",
						"title": "Title tag",
						"siteText": "Not found",
						"problem": "p",
						"solution": "s",
						"actions": ["1", "2", "3"],
						"metrics": {"optimization": 1, "impact": 4, "timing": "15-30 min"}
					}
				],
				"optimizationScore": 1,
				"impactScore": 4,
				"timingMinutes": 22,
				"timing": "22m"
			}
		],
		"optimizationScoreTotale": 1,
		"impactScoreTotale": 4,
		"totalTiming": "22m"
	}`

	var report Report
	err := json.Unmarshal([]byte(jsonInput), &report)
	require.NoError(t, err)
	require.Len(t, report.Report, 1)
	assert.Equal(t, "Meta Signals", report.Report[0].Category)
	assert.Equal(t, 1, report.OptimizationScoreTotal)
	assert.Equal(t, 4, report.ImpactScoreTotal)
	assert.Equal(t, SiteTextNotFound, report.Report[0].Elements[0].SiteText)
	assert.Equal(t, 4, report.Report[0].Elements[0].Metrics.Impact)
}
