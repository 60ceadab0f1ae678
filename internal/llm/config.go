// Package llm provides the generation backend boundary: a transport-agnostic
// client interface and the Gemini implementation behind it.
package llm

// Task identifies the generation task a call serves. Tasks select the
// model: inline autocomplete needs low latency, whole-document review needs
// the most capable model.
type Task string

// Generation tasks.
const (
	TaskImprove      Task = "improve"
	TaskAutocomplete Task = "autocomplete"
	TaskBatchImprove Task = "batch_improve"
	TaskReview       Task = "review"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// Config holds the per-task model configuration
type Config struct {
	Provider Provider
	Models   map[Task]string
	// DefaultModel is used for tasks absent from Models.
	DefaultModel string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[Task]string{
			TaskImprove:      "gemini-2.5-flash",
			TaskAutocomplete: "gemini-2.5-flash-lite",
			TaskBatchImprove: "gemini-2.5-flash",
			TaskReview:       "gemini-2.5-pro",
		},
		DefaultModel: "gemini-2.5-flash",
	}
}

// GetModel returns the model name for a given task
func (c *Config) GetModel(task Task) string {
	if model, ok := c.Models[task]; ok && model != "" {
		return model
	}
	return c.DefaultModel
}

// WithModel returns a new Config with a specific model for a task
func (c *Config) WithModel(task Task, model string) *Config {
	newConfig := &Config{
		Provider:     c.Provider,
		Models:       make(map[Task]string),
		DefaultModel: c.DefaultModel,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[task] = model
	return newConfig
}
