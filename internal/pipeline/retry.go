package pipeline

// Outcome classifies one attempt of a retried operation.
type Outcome int

const (
	// OutcomeOK means the attempt produced a usable value.
	OutcomeOK Outcome = iota
	// OutcomeRegenerate means the value is unusable but another attempt may
	// succeed.
	OutcomeRegenerate
	// OutcomeFatal means retrying cannot help.
	OutcomeFatal
)

// Retry runs fn up to maxAttempts times, stopping early on OutcomeOK or
// OutcomeFatal. The last value, outcome and error are returned so the caller
// can decide how to degrade when the budget runs out. Attempts are strictly
// sequential with no delay between them.
func Retry[T any](maxAttempts int, fn func(attempt int) (T, Outcome, error)) (T, Outcome, error) {
	var (
		value   T
		outcome Outcome
		err     error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		value, outcome, err = fn(attempt)
		if outcome != OutcomeRegenerate {
			return value, outcome, err
		}
	}
	return value, outcome, err
}
