// Package migration converts legacy fixed-shape resumes into dynamic
// documents. Migration is one-directional and eager: a legacy resume is
// converted fully on load, so the rest of the engine never sees a mixed
// document.
package migration

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// IsLegacy reports whether raw JSON is a legacy resume. The discriminator
// is the schema version field: dynamic documents always carry one.
func IsLegacy(raw []byte) bool {
	var probe struct {
		SchemaVersion string `json:"schema_version"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.SchemaVersion == ""
}

// Load parses raw JSON into a dynamic document, migrating legacy resumes
// on the way in.
func Load(raw []byte) (*types.Document, error) {
	if IsLegacy(raw) {
		var legacy types.LegacyResume
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, fmt.Errorf("failed to parse legacy resume: %w", err)
		}
		return MigrateResume(&legacy), nil
	}

	var doc types.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}

// MigrateResume converts a legacy resume into a dynamic document using the
// built-in schema ids. Section and entry order is preserved; empty legacy
// sections produce no dynamic section at all.
func MigrateResume(legacy *types.LegacyResume) *types.Document {
	now := time.Now().UTC()
	doc := &types.Document{
		PersonalDetails: make(map[string]string),
		Template:        legacy.Template,
		SchemaVersion:   types.SchemaVersion,
	}
	for k, v := range legacy.PersonalDetails {
		doc.PersonalDetails[k] = v
	}

	if legacy.Summary != "" {
		doc.Sections = append(doc.Sections, newSection("summary", "Professional Summary", now,
			types.ItemData{"content": types.Text(legacy.Summary)},
		))
	}

	if len(legacy.Experience) > 0 {
		items := make([]types.ItemData, 0, len(legacy.Experience))
		for _, exp := range legacy.Experience {
			items = append(items, nonEmptyData(types.ItemData{
				"job_title":   types.Text(exp.JobTitle),
				"company":     types.Text(exp.Company),
				"location":    types.Text(exp.Location),
				"start_date":  types.Text(exp.StartDate),
				"end_date":    types.Text(exp.EndDate),
				"description": types.Text(exp.Description),
			}))
		}
		doc.Sections = append(doc.Sections, newSection("experience", "Work Experience", now, items...))
	}

	if len(legacy.Education) > 0 {
		items := make([]types.ItemData, 0, len(legacy.Education))
		for _, edu := range legacy.Education {
			items = append(items, nonEmptyData(types.ItemData{
				"degree":      types.Text(edu.Degree),
				"institution": types.Text(edu.Institution),
				"location":    types.Text(edu.Location),
				"start_date":  types.Text(edu.StartDate),
				"end_date":    types.Text(edu.EndDate),
				"description": types.Text(edu.Description),
			}))
		}
		doc.Sections = append(doc.Sections, newSection("education", "Education", now, items...))
	}

	if len(legacy.Skills) > 0 {
		items := make([]types.ItemData, 0, len(legacy.Skills))
		for _, skill := range legacy.Skills {
			if skill == "" {
				continue
			}
			items = append(items, types.ItemData{"name": types.Text(skill)})
		}
		if len(items) > 0 {
			doc.Sections = append(doc.Sections, newSection("skills", "Skills", now, items...))
		}
	}

	if len(legacy.Projects) > 0 {
		items := make([]types.ItemData, 0, len(legacy.Projects))
		for _, project := range legacy.Projects {
			items = append(items, nonEmptyData(types.ItemData{
				"name":        types.Text(project.Name),
				"url":         types.Text(project.URL),
				"description": types.Text(project.Description),
			}))
		}
		doc.Sections = append(doc.Sections, newSection("projects", "Projects", now, items...))
	}

	return doc
}

func newSection(schemaID, title string, now time.Time, items ...types.ItemData) *types.DynamicSection {
	section := &types.DynamicSection{
		ID:       uuid.NewString(),
		SchemaID: schemaID,
		Title:    title,
		Visible:  true,
	}
	for _, data := range items {
		if len(data) == 0 {
			continue
		}
		section.Items = append(section.Items, &types.SectionItem{
			ID:       uuid.NewString(),
			SchemaID: schemaID,
			Data:     data,
			Meta:     types.ItemMeta{CreatedAt: now, UpdatedAt: now},
		})
	}
	return section
}

// nonEmptyData drops empty values so migrated items carry only content.
func nonEmptyData(data types.ItemData) types.ItemData {
	out := make(types.ItemData, len(data))
	for k, v := range data {
		if !v.IsEmpty() {
			out[k] = v
		}
	}
	return out
}
