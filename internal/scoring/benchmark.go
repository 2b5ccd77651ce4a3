package scoring

import (
	"log"

	"github.com/mbellini/landing-optimizer/internal/schema"
)

// Benchmark score bounds.
const (
	MinBenchmark = 50
	MaxBenchmark = 85
)

// Benchmark computes the contextual target score for (focusArea, industry,
// goals). Unrecognized industries resolve to "other" and unrecognized goal
// labels to the lead-generation key; both are logged, never errors. The
// result is always clamped to [MinBenchmark, MaxBenchmark].
func Benchmark(t *Tables, focusArea, industry string, goals []string) int {
	industryKey, known := schema.NormalizeIndustry(industry)
	if !known && industry != "" {
		log.Printf("[SCORING] warning: unknown industry %q, using %q", industry, industryKey)
	}

	entry, ok := t.Benchmarks[focusArea][industryKey]
	if !ok {
		entry = t.BenchmarkDefault
	}

	score := entry.Base
	for _, goal := range goals {
		key, known := schema.GoalKey(goal)
		if !known {
			log.Printf("[SCORING] warning: unknown goal %q, using %q", goal, key)
		}
		score += entry.Factors[key]
	}

	return clamp(score, MinBenchmark, MaxBenchmark)
}
