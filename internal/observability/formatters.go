// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/registry"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/schema"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSchemas outputs the registered section schemas.
func (p *Printer) PrintSchemas(schemas []*schema.SectionSchema) {
	if len(schemas) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range schemas {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", s.DisplayName, s.ID))
		sb.WriteString(fmt.Sprintf("  cardinality: %s, fields: %d", s.Cardinality, len(s.Fields)))
		if s.AI.BatchImprove {
			sb.WriteString(", batch improve")
		}
		sb.WriteString("\n")
		if i < len(schemas)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SECTION SCHEMAS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRenderableResume outputs a summary of the transformed view model.
func (p *Printer) PrintRenderableResume(resume *rendering.RenderableResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	if name, ok := resume.PersonalDetails["name"]; ok {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	}
	sb.WriteString(fmt.Sprintf("Sections: %d\n\n", len(resume.Sections)))

	count := min(len(resume.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := resume.Sections[i]
		sb.WriteString(fmt.Sprintf("• %s [%s]\n", section.Title, section.DefaultRenderHint))
		sb.WriteString(fmt.Sprintf("  %d items\n", len(section.Items)))
	}
	if len(resume.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more sections", len(resume.Sections)-maxItemsToShow))
	}

	p.printBox("RENDERABLE RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAIContext outputs the assembled generation context.
func (p *Printer) PrintAIContext(aiCtx *registry.AIContext) {
	if aiCtx == nil {
		return
	}

	var sb strings.Builder
	if aiCtx.UserJobTitle != "" {
		sb.WriteString(fmt.Sprintf("Target role: %s\n\n", aiCtx.UserJobTitle))
	}

	current := aiCtx.CurrentItemContext
	if len(current) > 160 {
		current = current[:157] + "..."
	}
	if current != "" {
		sb.WriteString("Current item:\n")
		sb.WriteString(current)
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("Other sections context: %d chars", len(aiCtx.OtherSectionsContext)))

	p.printBox("AI CONTEXT", sb.String())
}

// PrintSuggestion outputs a generated suggestion, or a no-suggestion note.
func (p *Printer) PrintSuggestion(label, text string) {
	if text == "" {
		p.printBox(label, "(no suggestion)")
		return
	}
	p.printBox(label, text)
}
