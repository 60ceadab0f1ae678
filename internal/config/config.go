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
	// Paths
	Document   string `json:"document,omitempty"`    // Path to the resume document JSON file
	JobPosting string `json:"job_posting,omitempty"` // Path to a saved job posting (text or HTML)

	// Profile attached to AI requests
	JobTitle string `json:"job_title,omitempty"` // Target role title
	Bio      string `json:"bio,omitempty"`       // Free-text candidate bio

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}
	if c.JobPosting != "" {
		if _, err := os.Stat(c.JobPosting); os.IsNotExist(err) {
			return fmt.Errorf("config error: job posting file not found: %s", c.JobPosting)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.JobPosting == "" {
		result.JobPosting = defaults.JobPosting
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.Bio == "" {
		result.Bio = defaults.Bio
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
