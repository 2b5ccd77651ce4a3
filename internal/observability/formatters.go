// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mbellini/landing-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxActionsToShow limits how many actions print per element
	maxActionsToShow = 3
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a human-readable summary of a generated report.
func (p *Printer) PrintReport(report *types.Report, benchmark int) {
	if report == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Benchmark:    %d\n", benchmark)
	fmt.Fprintf(&sb, "Optimization: %d\n", report.OptimizationScoreTotal)
	fmt.Fprintf(&sb, "Impact:       %d\n", report.ImpactScoreTotal)
	fmt.Fprintf(&sb, "Total effort: %s\n", report.TotalTiming)
	sb.WriteString("\n")

	for _, cat := range report.Report {
		fmt.Fprintf(&sb, "%s (opt %d / impact %d / %s)\n",
			cat.Category, cat.OptimizationScore, cat.ImpactScore, cat.Timing)
		for _, el := range cat.Elements {
			fmt.Fprintf(&sb, "  • %s [%d/%d, %s]\n",
				el.Element, el.Metrics.Optimization, el.Metrics.Impact, el.Metrics.Timing)
		}
	}

	p.printBox("Optimization Report", sb.String())
}

// PrintElement outputs the full analysis of one element.
func (p *Printer) PrintElement(el *types.ElementResult) {
	if el == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Site text: %s\n", el.SiteText)
	fmt.Fprintf(&sb, "Problem:   %s\n", el.Problem)
	fmt.Fprintf(&sb, "Solution:  %s\n", el.Solution)
	count := min(len(el.Actions), maxActionsToShow)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, el.Actions[i])
	}

	p.printBox(el.Element, sb.String())
}
