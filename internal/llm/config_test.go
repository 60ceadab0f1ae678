package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGeminiConfig_PerTaskModels(t *testing.T) {
	config := DefaultGeminiConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TaskImprove))
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TaskAutocomplete))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TaskBatchImprove))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TaskReview))
}

func TestGetModel_FallsBackToDefault(t *testing.T) {
	config := &Config{
		Models:       map[Task]string{TaskReview: "gemini-2.5-pro"},
		DefaultModel: "gemini-2.5-flash",
	}

	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TaskImprove))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TaskReview))
}

func TestGetModel_IgnoresEmptyEntry(t *testing.T) {
	config := &Config{
		Models:       map[Task]string{TaskImprove: ""},
		DefaultModel: "gemini-2.5-flash",
	}

	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TaskImprove))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	base := DefaultGeminiConfig()
	custom := base.WithModel(TaskImprove, "gemini-2.5-pro")

	assert.Equal(t, "gemini-2.5-pro", custom.GetModel(TaskImprove))
	assert.Equal(t, "gemini-2.5-flash", base.GetModel(TaskImprove))
	assert.Equal(t, base.DefaultModel, custom.DefaultModel)
}
