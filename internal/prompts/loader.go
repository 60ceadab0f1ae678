// Package prompts provides the externalized generation prompt templates.
// Templates are stored as JSON and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed generation.json
var promptFiles embed.FS

// Prompt template keys in generation.json.
const (
	KeyImproveField   = "improve_field"
	KeyAutocomplete   = "autocomplete_field"
	KeyBatchImprove   = "batch_improve_section"
	KeyReviewDocument = "review_document"
)

var (
	loadOnce sync.Once
	loaded   map[string]string
	loadErr  error
)

// Get retrieves a prompt template by key.
func Get(key string) (string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return "", loadErr
	}
	prompt, exists := loaded[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in generation.json", key)
	}
	return prompt, nil
}

// MustGet retrieves a prompt template by key, panicking if not found. Use
// for templates that are required at initialization time.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// Keys returns all available prompt keys.
func Keys() ([]string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	keys := make([]string, 0, len(loaded))
	for key := range loaded {
		keys = append(keys, key)
	}
	return keys, nil
}

func load() {
	data, err := promptFiles.ReadFile("generation.json")
	if err != nil {
		loadErr = fmt.Errorf("failed to read prompt file: %w", err)
		return
	}
	if err := json.Unmarshal(data, &loaded); err != nil {
		loadErr = fmt.Errorf("failed to parse prompt file: %w", err)
	}
}
