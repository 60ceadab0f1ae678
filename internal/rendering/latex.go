package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/resume.tex.tmpl
var defaultLaTeXTemplate string

// LaTeXDocument is the pre-escaped data structure passed to the LaTeX
// template. All strings are already LaTeX-escaped.
type LaTeXDocument struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Sections []LaTeXSection
}

// LaTeXSection is one visible section with its entries.
type LaTeXSection struct {
	Title   string
	Hint    string
	Entries []LaTeXEntry
}

// LaTeXEntry is one item of a section, flattened for typesetting: a
// heading line, an optional date span, body paragraphs, and bullets.
type LaTeXEntry struct {
	Heading string
	Span    string
	Lines   []string
	Bullets []string
}

// ToLaTeX renders a renderable resume as a LaTeX document. When
// templatePath is empty the embedded default template is used; otherwise
// the file is read and parsed with the same function map.
func ToLaTeX(resume *RenderableResume, templatePath string) (string, error) {
	tmpl, err := parseLaTeXTemplate(templatePath)
	if err != nil {
		return "", err
	}

	data := buildLaTeXDocument(resume)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseLaTeXTemplate parses the embedded default template or a custom
// template file. Templates may call `escape` on raw values.
func parseLaTeXTemplate(templatePath string) (*template.Template, error) {
	content := defaultLaTeXTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(raw)
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

// buildLaTeXDocument flattens the renderable view into template data,
// escaping every value.
func buildLaTeXDocument(resume *RenderableResume) *LaTeXDocument {
	doc := &LaTeXDocument{
		Name:     EscapeLaTeX(resume.PersonalDetails["name"]),
		Email:    EscapeLaTeX(resume.PersonalDetails["email"]),
		Phone:    EscapeLaTeX(resume.PersonalDetails["phone"]),
		Location: EscapeLaTeX(resume.PersonalDetails["location"]),
	}

	for _, section := range resume.Sections {
		latexSection := LaTeXSection{
			Title: EscapeLaTeX(section.Title),
			Hint:  section.DefaultRenderHint,
		}
		for _, item := range section.Items {
			entry := buildLaTeXEntry(item)
			if entry.Heading == "" && entry.Span == "" && len(entry.Lines) == 0 && len(entry.Bullets) == 0 {
				continue
			}
			latexSection.Entries = append(latexSection.Entries, entry)
		}
		if len(latexSection.Entries) == 0 {
			continue
		}
		doc.Sections = append(doc.Sections, latexSection)
	}

	return doc
}

// buildLaTeXEntry flattens one renderable item. The first scalar field
// becomes the heading, start/end date fields become the span, remaining
// scalar fields become body lines, and list fields become bullets.
func buildLaTeXEntry(item RenderableItem) LaTeXEntry {
	entry := LaTeXEntry{}
	var startDate, endDate string

	for _, field := range item.Fields {
		switch field.Key {
		case "start_date":
			startDate = field.Value
			continue
		case "end_date":
			endDate = field.Value
			continue
		}
		if len(field.Items) > 0 {
			for _, listItem := range field.Items {
				entry.Bullets = append(entry.Bullets, EscapeLaTeX(listItem))
			}
			continue
		}
		if field.Value == "" {
			continue
		}
		if entry.Heading == "" {
			entry.Heading = EscapeLaTeX(field.Value)
			continue
		}
		entry.Lines = append(entry.Lines, EscapeLaTeX(field.Value))
	}

	entry.Span = formatSpan(startDate, endDate)

	return entry
}

// formatSpan joins a start and end date into "start -- end". An entry
// with a start but no end reads as ongoing.
func formatSpan(startDate, endDate string) string {
	switch {
	case startDate == "" && endDate == "":
		return ""
	case endDate == "" || strings.EqualFold(endDate, "present"):
		return EscapeLaTeX(startDate) + " -- Present"
	case startDate == "":
		return EscapeLaTeX(endDate)
	default:
		return EscapeLaTeX(startDate) + " -- " + EscapeLaTeX(endDate)
	}
}
