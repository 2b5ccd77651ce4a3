package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbellini/landing-optimizer/internal/types"
)

func sampleReport() *types.Report {
	return &types.Report{
		Report: []types.CategoryResult{
			{
				Category: "Meta Signals",
				Elements: []types.ElementResult{
					{
						Element:  "Title tag",
						SiteText: "Acme Widgets",
						Problem:  "Too generic",
						Solution: "Add the primary keyword",
						Actions:  []string{"one", "two", "three"},
						Metrics:  types.ElementMetrics{Optimization: 3, Impact: 4, Timing: types.TimingQuick},
					},
				},
				OptimizationScore: 3,
				ImpactScore:       4,
				TimingMinutes:     22,
				Timing:            "22m",
			},
		},
		OptimizationScoreTotal: 3,
		ImpactScoreTotal:       4,
		TotalTiming:            "22m",
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(sampleReport(), 64)

	out := buf.String()
	assert.Contains(t, out, "Optimization Report")
	assert.Contains(t, out, "Benchmark:    64")
	assert.Contains(t, out, "Meta Signals")
	assert.Contains(t, out, "Title tag")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintReport_NilReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil, 64)
	assert.Empty(t, buf.String())
}

func TestPrintElement(t *testing.T) {
	var buf bytes.Buffer
	el := sampleReport().Report[0].Elements[0]
	NewPrinter(&buf).PrintElement(&el)

	out := buf.String()
	assert.Contains(t, out, "Title tag")
	assert.Contains(t, out, "Problem:   Too generic")
	assert.Contains(t, out, "1. one")
	assert.Contains(t, out, "3. three")
}

func TestPrintElement_NilElement(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintElement(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("Title", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}
