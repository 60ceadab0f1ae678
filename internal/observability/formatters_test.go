package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/registry"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/schema"
)

func TestPrintSchemas(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSchemas(schema.BuiltinSchemas())
	output := buf.String()

	assert.Contains(t, output, "SECTION SCHEMAS")
	assert.Contains(t, output, "Work Experience (experience)")
	assert.Contains(t, output, "batch improve")
	assert.Contains(t, output, "cardinality: single")
}

func TestPrintSchemas_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSchemas(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRenderableResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &rendering.RenderableResume{
		PersonalDetails: map[string]string{"name": "Ada Lovelace"},
		Sections: []rendering.RenderableSection{
			{Title: "Work Experience", DefaultRenderHint: "timeline"},
			{Title: "Skills", DefaultRenderHint: "tags"},
		},
	}

	p.PrintRenderableResume(resume)
	output := buf.String()

	assert.Contains(t, output, "RENDERABLE RESUME")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "Sections: 2")
	assert.Contains(t, output, "Work Experience [timeline]")
	assert.Contains(t, output, "Skills [tags]")
}

func TestPrintRenderableResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRenderableResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAIContext(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAIContext(&registry.AIContext{
		UserJobTitle:         "Staff Engineer",
		CurrentItemContext:   "Backend Engineer at Acme",
		OtherSectionsContext: "Skills:\n- Go",
	})
	output := buf.String()

	assert.Contains(t, output, "AI CONTEXT")
	assert.Contains(t, output, "Target role: Staff Engineer")
	assert.Contains(t, output, "Backend Engineer at Acme")
	assert.Contains(t, output, "Other sections context: 12 chars")
}

func TestPrintAIContext_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAIContext(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSuggestion(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestion("Suggestion", "Led migration of billing services to Go.")

	assert.Contains(t, buf.String(), "Suggestion")
	assert.Contains(t, buf.String(), "Led migration of billing services to Go.")
}

func TestPrintSuggestion_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestion("Suggestion", "")

	assert.Contains(t, buf.String(), "(no suggestion)")
}
