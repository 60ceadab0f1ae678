package aicontext

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// registerBuiltins installs the builders for the built-in section schemas.
// Builders are schema-specific by design: they know the field ids of the
// schema they were authored alongside.
func registerBuiltins(r *Registry) {
	r.RegisterItemBuilder(BuilderExperienceItem, experienceItem)
	r.RegisterSectionBuilder(BuilderExperienceSection, sectionLines("Work experience", experienceItem))
	r.RegisterItemBuilder(BuilderEducationItem, educationItem)
	r.RegisterSectionBuilder(BuilderEducationSection, sectionLines("Education", educationItem))
	r.RegisterItemBuilder(BuilderSkillsItem, skillsItem)
	r.RegisterSectionBuilder(BuilderSkillsSection, sectionLines("Skills", skillsItem))
	r.RegisterItemBuilder(BuilderProjectItem, projectItem)
	r.RegisterSectionBuilder(BuilderProjectSection, sectionLines("Projects", projectItem))
	r.RegisterItemBuilder(BuilderCertificationItem, certificationItem)
	r.RegisterSectionBuilder(BuilderCertSection, sectionLines("Certifications", certificationItem))
	r.RegisterItemBuilder(BuilderLanguageItem, languageItem)
	r.RegisterSectionBuilder(BuilderLanguageSection, sectionLines("Languages", languageItem))
	r.RegisterItemBuilder(BuilderSummaryItem, summaryItem)
	r.RegisterSectionBuilder(BuilderSummarySection, summarySection)
}

// sectionLines builds a section-level builder that renders the section
// title followed by one bullet line per item, preserving item order.
func sectionLines(defaultTitle string, item ItemBuilder) SectionBuilder {
	return func(section *types.DynamicSection, doc *types.Document) string {
		if section == nil || len(section.Items) == 0 {
			return ""
		}
		title := section.Title
		if title == "" {
			title = defaultTitle
		}
		lines := make([]string, 0, len(section.Items))
		for _, it := range section.Items {
			if line := item(it.Data, doc); line != "" {
				lines = append(lines, "- "+line)
			}
		}
		if len(lines) == 0 {
			return ""
		}
		return title + ":\n" + strings.Join(lines, "\n")
	}
}

func experienceItem(data types.ItemData, _ *types.Document) string {
	head := data["job_title"].String()
	if company := data["company"].String(); company != "" {
		if head != "" {
			head += " at " + company
		} else {
			head = company
		}
	}
	if span := spanOf(data, "start_date", "end_date", "location"); span != "" {
		head += " (" + span + ")"
	}
	parts := []string{head}
	if desc := data["description"].String(); desc != "" {
		parts = append(parts, desc)
	}
	if skills := data["skills"].String(); skills != "" {
		parts = append(parts, "Skills: "+skills)
	}
	return joinNonEmpty(parts, ". ")
}

func educationItem(data types.ItemData, _ *types.Document) string {
	head := data["degree"].String()
	if inst := data["institution"].String(); inst != "" {
		if head != "" {
			head += ", " + inst
		} else {
			head = inst
		}
	}
	if span := spanOf(data, "start_date", "end_date", "location"); span != "" {
		head += " (" + span + ")"
	}
	parts := []string{head}
	if desc := data["description"].String(); desc != "" {
		parts = append(parts, desc)
	}
	return joinNonEmpty(parts, ". ")
}

func skillsItem(data types.ItemData, _ *types.Document) string {
	name := data["name"].String()
	if name == "" {
		return ""
	}
	if level := data["level"].String(); level != "" {
		name += " (" + level + ")"
	}
	if keywords := data["keywords"].String(); keywords != "" {
		name += ": " + keywords
	}
	return name
}

func projectItem(data types.ItemData, _ *types.Document) string {
	head := data["name"].String()
	if span := spanOf(data, "start_date", "end_date", ""); span != "" {
		head += " (" + span + ")"
	}
	parts := []string{head}
	if desc := data["description"].String(); desc != "" {
		parts = append(parts, desc)
	}
	if tech := data["technologies"].String(); tech != "" {
		parts = append(parts, "Built with: "+tech)
	}
	return joinNonEmpty(parts, ". ")
}

func certificationItem(data types.ItemData, _ *types.Document) string {
	head := data["name"].String()
	if issuer := data["issuer"].String(); issuer != "" {
		if head != "" {
			head += " by " + issuer
		} else {
			head = issuer
		}
	}
	if date := data["date"].String(); date != "" {
		head += " (" + date + ")"
	}
	return head
}

func languageItem(data types.ItemData, _ *types.Document) string {
	lang := data["language"].String()
	if lang == "" {
		return ""
	}
	if prof := data["proficiency"].String(); prof != "" {
		lang += " (" + prof + ")"
	}
	return lang
}

func summaryItem(data types.ItemData, _ *types.Document) string {
	return data["content"].String()
}

func summarySection(section *types.DynamicSection, doc *types.Document) string {
	if section == nil || len(section.Items) == 0 {
		return ""
	}
	content := summaryItem(section.Items[0].Data, doc)
	if content == "" {
		return ""
	}
	return "Professional summary: " + content
}

// spanOf renders "start – end, location" from the named fields, skipping
// the parts that are empty.
func spanOf(data types.ItemData, startField, endField, locationField string) string {
	start := data[startField].String()
	end := data[endField].String()
	span := start
	switch {
	case start != "" && end != "":
		span = fmt.Sprintf("%s – %s", start, end)
	case start != "":
		span = start + " – Present"
	case end != "":
		span = "until " + end
	}
	if locationField != "" {
		if loc := data[locationField].String(); loc != "" {
			if span != "" {
				span += ", " + loc
			} else {
				span = loc
			}
		}
	}
	return span
}

func joinNonEmpty(parts []string, sep string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}
