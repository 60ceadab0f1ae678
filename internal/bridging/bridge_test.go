package bridging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/roles"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/types"
)

// catalogSource adapts the builtin catalogs to the SchemaSource interface
// for tests that do not need a full registry.
type catalogSource struct {
	schemas  *schema.Catalog
	roleMaps *roles.Catalog
}

func newCatalogSource() *catalogSource {
	return &catalogSource{
		schemas:  schema.NewBuiltinCatalog(),
		roleMaps: roles.NewBuiltinCatalog(),
	}
}

func (s *catalogSource) SectionSchema(id string) (*schema.SectionSchema, bool) {
	return s.schemas.Get(id)
}

func (s *catalogSource) RoleMap(schemaID string) (*roles.RoleMap, bool) {
	return s.roleMaps.Get(schemaID)
}

func experienceSection() *types.DynamicSection {
	return &types.DynamicSection{
		ID:       "sec-1",
		SchemaID: "experience",
		Title:    "Experience",
		Visible:  true,
		Items: []*types.SectionItem{
			{
				ID:       "item-1",
				SchemaID: "experience",
				Data: types.ItemData{
					"job_title":   types.Text("Engineer"),
					"company":     types.Text("Acme"),
					"location":    types.Text("Berlin"),
					"url":         types.Text("https://acme.test"),
					"description": types.Text("Built things"),
					"skills":      types.List("Go"),
				},
			},
		},
	}
}

func TestFromInternal_KeepsOnlyCoreRoleFields(t *testing.T) {
	bridged := FromInternal(experienceSection(), newCatalogSource())

	require.Len(t, bridged.Items, 1)
	item := bridged.Items[0]

	assert.Contains(t, item, "job_title")
	assert.Contains(t, item, "company")
	assert.Contains(t, item, "description")
	assert.Contains(t, item, "skills")
	// location maps to a non-core role, url is unmapped
	assert.NotContains(t, item, "location")
	assert.NotContains(t, item, "url")
}

func TestFromInternal_SkipsEmptyFields(t *testing.T) {
	section := experienceSection()
	section.Items[0].Data["description"] = types.Text("   ")

	bridged := FromInternal(section, newCatalogSource())
	assert.NotContains(t, bridged.Items[0], "description")
}

func TestFromInternal_NoRoleMapFallsBackToAllFieldsExceptID(t *testing.T) {
	section := &types.DynamicSection{
		ID:       "sec-x",
		SchemaID: "custom",
		Items: []*types.SectionItem{
			{ID: "i1", Data: types.ItemData{
				"id":    types.Text("i1"),
				"notes": types.Text("something"),
			}},
		},
	}

	bridged := FromInternal(section, newCatalogSource())
	require.Len(t, bridged.Items, 1)
	assert.Contains(t, bridged.Items[0], "notes")
	assert.NotContains(t, bridged.Items[0], "id")
}

func TestFromInternal_PreservesItemOrder(t *testing.T) {
	section := &types.DynamicSection{
		ID:       "sec-1",
		SchemaID: "experience",
		Items: []*types.SectionItem{
			{ID: "a", Data: types.ItemData{"job_title": types.Text("First")}},
			{ID: "b", Data: types.ItemData{"job_title": types.Text("Second")}},
			{ID: "c", Data: types.ItemData{"job_title": types.Text("Third")}},
		},
	}

	bridged := FromInternal(section, newCatalogSource())
	require.Len(t, bridged.Items, 3)
	assert.Equal(t, "First", bridged.Items[0]["job_title"].Text())
	assert.Equal(t, "Second", bridged.Items[1]["job_title"].Text())
	assert.Equal(t, "Third", bridged.Items[2]["job_title"].Text())
}

func TestToInternal_SkipsUnknownSchemas(t *testing.T) {
	resume := &AIBridgedResume{
		Sections: []*AIBridgedSection{
			{SchemaID: "nonexistent", Items: []AIBridgedItem{{"x": types.Text("y")}}},
			{SchemaID: "skills", Items: []AIBridgedItem{{"name": types.Text("Go")}}},
		},
	}

	doc := ToInternal(resume, newCatalogSource())
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "skills", doc.Sections[0].SchemaID)
}

func TestToInternal_DropsUndeclaredAndEmptyFields(t *testing.T) {
	resume := &AIBridgedResume{
		Sections: []*AIBridgedSection{
			{SchemaID: "skills", Items: []AIBridgedItem{{
				"name":       types.Text("Go"),
				"blank":      types.Text(""),
				"undeclared": types.Text("dropped"),
			}}},
		},
	}

	doc := ToInternal(resume, newCatalogSource())
	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Items, 1)

	data := doc.Sections[0].Items[0].Data
	assert.Contains(t, data, "name")
	assert.NotContains(t, data, "blank")
	assert.NotContains(t, data, "undeclared")
}

func TestToInternal_StampsMetadataAndIDs(t *testing.T) {
	resume := &AIBridgedResume{
		Sections: []*AIBridgedSection{
			{SchemaID: "skills", Items: []AIBridgedItem{{"name": types.Text("Go")}}},
		},
	}

	doc := ToInternal(resume, newCatalogSource())
	require.Len(t, doc.Sections, 1)
	section := doc.Sections[0]
	item := section.Items[0]

	assert.NotEmpty(t, section.ID)
	assert.NotEmpty(t, item.ID)
	assert.True(t, section.Visible)
	assert.True(t, section.Meta.AIOptimized)
	assert.True(t, item.Meta.AIGenerated)
	assert.False(t, item.Meta.CreatedAt.IsZero())
	assert.Equal(t, types.SchemaVersion, doc.SchemaVersion)
}

func TestToInternal_DefaultTitleFromSchema(t *testing.T) {
	resume := &AIBridgedResume{
		Sections: []*AIBridgedSection{
			{SchemaID: "skills", Items: []AIBridgedItem{{"name": types.Text("Go")}}},
			{SchemaID: "experience", Title: "My Career", Items: []AIBridgedItem{{"job_title": types.Text("Dev")}}},
		},
	}

	doc := ToInternal(resume, newCatalogSource())
	require.Len(t, doc.Sections, 2)

	assert.Equal(t, "Skills", doc.Sections[0].Title)
	assert.False(t, doc.Sections[0].Meta.CustomTitle)

	assert.Equal(t, "My Career", doc.Sections[1].Title)
	assert.True(t, doc.Sections[1].Meta.CustomTitle)
}

func TestToInternal_SingleCardinalityKeepsFirstItem(t *testing.T) {
	resume := &AIBridgedResume{
		Sections: []*AIBridgedSection{
			{SchemaID: "summary", Items: []AIBridgedItem{
				{"content": types.Text("first")},
				{"content": types.Text("second")},
			}},
		},
	}

	doc := ToInternal(resume, newCatalogSource())
	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Items, 1)
	assert.Equal(t, "first", doc.Sections[0].Items[0].Data["content"].Text())
}

func TestRoundTrip_CoreFieldsSurvive(t *testing.T) {
	src := newCatalogSource()
	original := experienceSection()

	bridged := FromInternal(original, src)
	doc := ToInternal(&AIBridgedResume{Sections: []*AIBridgedSection{bridged}}, src)

	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Items, 1)
	data := doc.Sections[0].Items[0].Data
	assert.Equal(t, "Engineer", data["job_title"].Text())
	assert.Equal(t, "Acme", data["company"].Text())
	assert.Equal(t, []string{"Go"}, data["skills"].List())
}

func TestCoerceValue_ScalarRejectsListValue(t *testing.T) {
	fs := &schema.FieldSchema{ID: "title", Label: "Title", Type: schema.TypeShortText}

	_, ok := CoerceValue(fs, types.List("a"))
	assert.False(t, ok)

	v, ok := CoerceValue(fs, types.Text("hello"))
	require.True(t, ok)
	assert.Equal(t, "hello", v.Text())
}

func TestCoerceValue_ArrayRequiresList(t *testing.T) {
	fs := &schema.FieldSchema{ID: "tech", Label: "Tech", Type: schema.TypeArray}

	_, ok := CoerceValue(fs, types.Text("Go"))
	assert.False(t, ok)

	v, ok := CoerceValue(fs, types.List("Go", "SQL"))
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "SQL"}, v.List())
}

func TestCoerceValue_SelectEnforcesOptions(t *testing.T) {
	fs := &schema.FieldSchema{
		ID: "level", Label: "Level", Type: schema.TypeSelect,
		Options: []string{"Beginner", "Expert"},
	}

	_, ok := CoerceValue(fs, types.Text("Wizard"))
	assert.False(t, ok)

	v, ok := CoerceValue(fs, types.Text("Expert"))
	require.True(t, ok)
	assert.Equal(t, "Expert", v.Text())
}

func TestCoerceValue_MultiSelectFiltersToDeclaredOptions(t *testing.T) {
	fs := &schema.FieldSchema{
		ID: "tags", Label: "Tags", Type: schema.TypeMultiSelect,
		Options: []string{"go", "sql"},
	}

	v, ok := CoerceValue(fs, types.List("go", "made-up", "sql"))
	require.True(t, ok)
	assert.Equal(t, []string{"go", "sql"}, v.List())

	_, ok = CoerceValue(fs, types.List("made-up"))
	assert.False(t, ok)
}

func TestCoerceValue_ObjectRequiresObjectKind(t *testing.T) {
	fs := &schema.FieldSchema{ID: "meta", Label: "Meta", Type: schema.TypeObject}

	_, ok := CoerceValue(fs, types.Text("not an object"))
	assert.False(t, ok)

	v, ok := CoerceValue(fs, types.Object(map[string]string{"k": "v"}))
	require.True(t, ok)
	assert.Equal(t, map[string]string{"k": "v"}, v.Object())
}
