package normalize

import (
	"fmt"
	"strings"
)

// IsNoData reports whether a free-text field counts as missing analysis:
// empty, blank, or the literal "no data" in any casing.
func IsNoData(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed == "" || strings.EqualFold(trimmed, "no data")
}

// actionsMissing reports whether an actions list needs full fallback
// substitution: nil, empty, or a single "no data" entry.
func actionsMissing(actions []string) bool {
	if len(actions) == 0 {
		return true
	}
	return len(actions) == 1 && IsNoData(actions[0])
}

// goalPhrase renders the goal list for fallback text.
func goalPhrase(goals []string) string {
	if len(goals) == 0 {
		return "conversion"
	}
	return strings.Join(goals, ", ")
}

// FallbackProblem is the deterministic substitute for a missing problem
// analysis. Always non-empty and parameterized by the element context.
func FallbackProblem(element, category, industry string, goals []string) string {
	return fmt.Sprintf(
		"The analysis could not identify a specific issue for %q in %s. For %s pages focused on %s, this element is often under-optimized and deserves a manual review.",
		element, category, industry, goalPhrase(goals))
}

// FallbackSolution is the deterministic substitute for a missing solution.
func FallbackSolution(element, category, industry string, goals []string) string {
	return fmt.Sprintf(
		"Review %q against best practices for %s in the %s industry, and align it with your %s goals before the next iteration.",
		element, category, industry, goalPhrase(goals))
}

// FallbackActions is the deterministic three-step substitute for missing
// recommendations.
func FallbackActions(element, category, industry string, goals []string) []string {
	return []string{
		fmt.Sprintf("Audit %q on the live page and note how it currently supports %s.", element, goalPhrase(goals)),
		fmt.Sprintf("Compare %q with two or three competing %s landing pages.", element, industry),
		fmt.Sprintf("Draft one improved variant of %q and A/B test it within %s.", element, category),
	}
}

// normalizeActions guarantees exactly three non-empty action strings,
// substituting fallbacks when the model under-delivered.
func normalizeActions(actions []string, element, category, industry string, goals []string) []string {
	if actionsMissing(actions) {
		return FallbackActions(element, category, industry, goals)
	}

	kept := make([]string, 0, 3)
	for _, a := range actions {
		if !IsNoData(a) {
			kept = append(kept, strings.TrimSpace(a))
		}
		if len(kept) == 3 {
			break
		}
	}
	if len(kept) == 0 {
		return FallbackActions(element, category, industry, goals)
	}
	for i := len(kept); i < 3; i++ {
		kept = append(kept, FallbackActions(element, category, industry, goals)[i])
	}
	return kept
}
