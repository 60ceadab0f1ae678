package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/types"
)

type catalogSource struct {
	schemas *schema.Catalog
}

func (s *catalogSource) SectionSchema(id string) (*schema.SectionSchema, bool) {
	return s.schemas.Get(id)
}

func builtinSource() SchemaSource {
	return &catalogSource{schemas: schema.NewBuiltinCatalog()}
}

func renderTestDocument() *types.Document {
	return &types.Document{
		PersonalDetails: map[string]string{"name": "Ada", "email": "ada@example.com", "website": ""},
		SchemaVersion:   types.SchemaVersion,
		Sections: []*types.DynamicSection{
			{
				ID: "sec-exp", SchemaID: "experience", Title: "", Visible: true,
				Items: []*types.SectionItem{
					{ID: "exp-1", Data: types.ItemData{
						"company":    types.Text("Acme"),
						"job_title":  types.Text("Engineer"),
						"skills":     types.List("Go", "", "SQL"),
						"start_date": types.Text("2020-01"),
						"location":   types.Text(""),
					}},
					{ID: "exp-empty", Data: types.ItemData{"description": types.Text("  ")}},
				},
			},
			{
				ID: "sec-hidden", SchemaID: "skills", Title: "Hidden", Visible: false,
				Items: []*types.SectionItem{
					{ID: "h-1", Data: types.ItemData{"name": types.Text("Secret")}},
				},
			},
			{
				ID: "sec-summary", SchemaID: "summary", Title: "About Me", Visible: true,
				Items: []*types.SectionItem{
					{ID: "sum-1", Data: types.ItemData{"content": types.Text("Ten years of Go.")}},
				},
			},
		},
	}
}

func TestTransform_OmitsEmptyPersonalDetails(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	assert.Equal(t, "Ada", view.PersonalDetails["name"])
	assert.NotContains(t, view.PersonalDetails, "website")
}

func TestTransform_SkipsInvisibleSections(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	require.Len(t, view.Sections, 2)
	assert.Equal(t, "sec-exp", view.Sections[0].ID)
	assert.Equal(t, "sec-summary", view.Sections[1].ID)
}

func TestTransform_DropsSectionsWithUnknownSchema(t *testing.T) {
	doc := renderTestDocument()
	doc.Sections = append(doc.Sections, &types.DynamicSection{
		ID: "sec-bad", SchemaID: "nonexistent", Visible: true,
		Items: []*types.SectionItem{{ID: "x", Data: types.ItemData{"a": types.Text("b")}}},
	})

	view := Transform(doc, builtinSource())
	for _, section := range view.Sections {
		assert.NotEqual(t, "sec-bad", section.ID)
	}
}

func TestTransform_FieldsFollowSchemaDeclarationOrder(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	item := view.Sections[0].Items[0]
	keys := make([]string, 0, len(item.Fields))
	for _, f := range item.Fields {
		keys = append(keys, f.Key)
	}
	// Experience declares job_title before company before start_date
	// before skills; the item's map order must not leak through.
	assert.Equal(t, []string{"job_title", "company", "start_date", "skills"}, keys)
}

func TestTransform_EmptyValuesNeverRendered(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	for _, f := range view.Sections[0].Items[0].Fields {
		assert.NotEmpty(t, f.Value, "field %q rendered empty", f.Key)
	}
}

func TestTransform_ItemsWithNoContentOmitted(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	require.Len(t, view.Sections[0].Items, 1)
	assert.Equal(t, "exp-1", view.Sections[0].Items[0].ID)
}

func TestTransform_ListFieldsCarryItems(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	var skills *RenderableField
	for i := range view.Sections[0].Items[0].Fields {
		if view.Sections[0].Items[0].Fields[i].Key == "skills" {
			skills = &view.Sections[0].Items[0].Fields[i]
		}
	}
	require.NotNil(t, skills)
	assert.Equal(t, []string{"Go", "SQL"}, skills.Items)
	assert.Equal(t, "Go, SQL", skills.Value)
}

func TestTransform_TitleFallsBackToDisplayName(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	assert.Equal(t, "Work Experience", view.Sections[0].Title)
	assert.Equal(t, "About Me", view.Sections[1].Title)
}

func TestTransform_RenderHints(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	assert.Equal(t, RenderHintTimeline, view.Sections[0].DefaultRenderHint)
	assert.Equal(t, RenderHintText, view.Sections[1].DefaultRenderHint)
}

func TestTransform_MarkdownFlagPassedThrough(t *testing.T) {
	view := Transform(renderTestDocument(), builtinSource())

	for _, f := range view.Sections[1].Items[0].Fields {
		if f.Key == "content" {
			assert.True(t, f.Markdown)
			return
		}
	}
	t.Fatal("content field not rendered")
}

func TestTransformLegacy_MigratesThenRenders(t *testing.T) {
	legacy := &types.LegacyResume{
		PersonalDetails: map[string]string{"name": "Grace"},
		Summary:         "Compiler pioneer.",
		Experience: []types.LegacyExperience{
			{JobTitle: "Rear Admiral", Company: "US Navy", StartDate: "1943-01"},
		},
		Skills: []string{"COBOL"},
	}

	view := TransformLegacy(legacy, builtinSource())

	require.Len(t, view.Sections, 3)
	assert.Equal(t, "summary", view.Sections[0].SchemaID)
	assert.Equal(t, "experience", view.Sections[1].SchemaID)
	assert.Equal(t, "skills", view.Sections[2].SchemaID)
	assert.Equal(t, "Grace", view.PersonalDetails["name"])
	assert.Equal(t, "Compiler pioneer.", view.Sections[0].Items[0].Fields[0].Value)
}
