package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.Model(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.Model(TierStandard))
	assert.InDelta(t, 0.2, cfg.Temperature, 0.001)
}

func TestConfig_Model_FallsBackToStandard(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierStandard: "gemini-2.5-flash"}}
	assert.Equal(t, "gemini-2.5-flash", cfg.Model(TierLite))
}

func TestConfig_Model_FallsBackToAnyModel(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"}}
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.Model("nonexistent"))
}

func TestConfig_Model_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "", cfg.Model(TierStandard))
}
