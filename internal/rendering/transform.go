package rendering

import (
	"log"

	"github.com/jonathan/resume-studio/internal/migration"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/types"
)

// SchemaSource is the catalog access the transformer needs; the schema
// registry satisfies it.
type SchemaSource interface {
	SectionSchema(id string) (*schema.SectionSchema, bool)
}

// Transform projects a document onto the renderable view model. Section
// and item ordering is preserved exactly; fields with empty values are
// omitted rather than emitted as empty strings. A section referencing an
// unknown schema is dropped from the view (logged, never an error) so one
// bad section cannot break the whole render.
func Transform(doc *types.Document, src SchemaSource) *RenderableResume {
	out := &RenderableResume{
		PersonalDetails: make(map[string]string),
		Sections:        make([]RenderableSection, 0, len(doc.Sections)),
	}
	for k, v := range doc.PersonalDetails {
		if v != "" {
			out.PersonalDetails[k] = v
		}
	}

	for _, section := range doc.Sections {
		if !section.Visible {
			continue
		}
		sectionSchema, ok := src.SectionSchema(section.SchemaID)
		if !ok {
			log.Printf("warning: dropping section %s from view: unknown schema %q", section.ID, section.SchemaID)
			continue
		}

		rendered := RenderableSection{
			ID:                section.ID,
			Title:             sectionTitle(section, sectionSchema),
			SchemaID:          section.SchemaID,
			DefaultRenderHint: renderHint(sectionSchema),
			Items:             make([]RenderableItem, 0, len(section.Items)),
		}

		for _, item := range section.Items {
			fields := make([]RenderableField, 0, len(sectionSchema.Fields))
			for i := range sectionSchema.Fields {
				fieldSchema := &sectionSchema.Fields[i]
				value, present := item.Data[fieldSchema.ID]
				if !present || value.IsEmpty() {
					continue
				}
				fields = append(fields, renderField(fieldSchema.ID, fieldSchema.Label, fieldSchema.Markdown, value))
			}
			if len(fields) == 0 {
				continue
			}
			rendered.Items = append(rendered.Items, RenderableItem{ID: item.ID, Fields: fields})
		}

		out.Sections = append(out.Sections, rendered)
	}
	return out
}

// TransformLegacy renders a legacy fixed-shape resume by migrating it to
// the dynamic model first, which maps its fixed fields onto the matching
// built-in schemas (and in turn imports their markdown settings).
func TransformLegacy(legacy *types.LegacyResume, src SchemaSource) *RenderableResume {
	return Transform(migration.MigrateResume(legacy), src)
}

func renderField(key, label string, markdown bool, value types.Value) RenderableField {
	field := RenderableField{
		Key:      key,
		Label:    label,
		Value:    value.String(),
		Markdown: markdown,
	}
	if value.Kind() == types.KindList {
		items := make([]string, 0, len(value.List()))
		for _, entry := range value.List() {
			if entry != "" {
				items = append(items, entry)
			}
		}
		field.Items = items
	}
	return field
}

// sectionTitle prefers the user's custom title and falls back to the
// schema display name.
func sectionTitle(section *types.DynamicSection, sectionSchema *schema.SectionSchema) string {
	if section.Title != "" {
		return section.Title
	}
	return sectionSchema.DisplayName
}

// renderHint derives a default layout hint from the schema shape: single
// sections render as prose, dated sections as a timeline, the rest as a
// plain list.
func renderHint(sectionSchema *schema.SectionSchema) string {
	if sectionSchema.Cardinality == schema.CardinalitySingle {
		return RenderHintText
	}
	if _, ok := sectionSchema.Field("start_date"); ok {
		return RenderHintTimeline
	}
	return RenderHintList
}
