// Package llm provides the Gemini client and model configuration used to
// generate landing page optimization reports.
package llm

// ModelTier selects the capability level for a generation call.
type ModelTier string

const (
	// TierLite is for cheap auxiliary calls.
	TierLite ModelTier = "lite"
	// TierStandard is for report generation (structured JSON output).
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration.
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration. Temperature is
// kept low so the report JSON stays close to the requested schema.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature: 0.2,
	}
}

// Model returns the model name for a tier, falling back to the standard
// tier, then to any configured model.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	for _, model := range c.Models {
		return model
	}
	return ""
}
