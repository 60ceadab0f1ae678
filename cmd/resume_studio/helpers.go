package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/ingestion"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/migration"
	"github.com/jonathan/resume-studio/internal/registry"
	"github.com/jonathan/resume-studio/internal/types"
)

// loadCLIConfig reads the --config file when one was given. Flag values
// always win over config file values; the config only fills blanks.
func loadCLIConfig() (config.Config, error) {
	if cfgFile == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config file: %w", err)
	}
	return *cfg, nil
}

// firstNonEmpty returns the first non-empty string, letting a flag value
// override a config file value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadDocument reads a document JSON file. Legacy fixed-shape resumes are
// migrated to the dynamic format on load.
func loadDocument(path string) (*types.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	doc, err := migration.Load(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return doc, nil
}

// writeDocument marshals a document to indented JSON and writes it out,
// creating the output directory if needed.
func writeDocument(path string, doc *types.Document) error {
	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write document file: %w", err)
	}

	return nil
}

// resolveAPIKey returns the Gemini API key from the flag, the config file,
// or the GEMINI_API_KEY environment variable, in that order.
func resolveAPIKey(flagValue, cfgValue string) (string, error) {
	apiKey := firstNonEmpty(flagValue, cfgValue, os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}
	return apiKey, nil
}

// buildProfile assembles the cross-cutting user profile attached to AI
// requests. The job posting file, when given, is ingested and cleaned
// before it is handed to prompts.
func buildProfile(jobTitle, jobPostingPath, bio string) (registry.Profile, error) {
	profile := registry.Profile{
		JobTitle: jobTitle,
		Bio:      bio,
	}

	if jobPostingPath != "" {
		jobInfo, err := ingestion.FromFile(jobPostingPath)
		if err != nil {
			return registry.Profile{}, fmt.Errorf("failed to ingest job posting: %w", err)
		}
		profile.JobInfo = jobInfo
	}

	return profile, nil
}

// newAIRegistry wires a Gemini-backed registry with the builtin catalogs
// and the given profile. The caller must Close the returned client.
func newAIRegistry(ctx context.Context, apiKey string, profile registry.Profile) (*registry.Registry, llm.Client, error) {
	client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	reg, err := registry.New(registry.WithClient(client), registry.WithProfile(profile))
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create schema registry: %w", err)
	}

	return reg, client, nil
}
