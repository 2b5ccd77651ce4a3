// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	FocusArea  string   `json:"focus_area,omitempty"` // Focus area for analysis (copywriting, uxui, mobile, cta, seo)
	Industry   string   `json:"industry,omitempty"`   // Industry context (ecommerce, saas, services, local, other)
	Goals      []string `json:"goals,omitempty"`      // Business goal labels

	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for report archiving
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed report summary
	Out         string `json:"out,omitempty"`          // Output directory for report JSON
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Out != "" {
		info, err := os.Stat(c.Out)
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'out' is not a directory: %s", c.Out)
		}
	}
	if len(c.Goals) > 5 {
		return fmt.Errorf("config error: at most 5 goals are supported")
	}
	return nil
}
