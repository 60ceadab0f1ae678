package aicontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestRegistry_UnknownBuilderReturnsEmpty(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "", r.BuildItem("nonexistent", types.ItemData{}, nil))
	assert.Equal(t, "", r.BuildSection("nonexistent", &types.DynamicSection{}, nil))
	assert.Equal(t, "", r.BuildItem(BuilderNone, types.ItemData{}, nil))
}

func TestRegistry_RegisterItemBuilderLastWriteWins(t *testing.T) {
	r := NewRegistry()
	r.RegisterItemBuilder("custom", func(types.ItemData, *types.Document) string { return "first" })
	r.RegisterItemBuilder("custom", func(types.ItemData, *types.Document) string { return "second" })

	assert.Equal(t, "second", r.BuildItem("custom", types.ItemData{}, nil))
}

func TestRegistry_HasBuilder(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.HasItemBuilder(BuilderExperienceItem))
	assert.True(t, r.HasSectionBuilder(BuilderExperienceSection))
	assert.False(t, r.HasItemBuilder("nonexistent"))
}

func TestExperienceItem_FullData(t *testing.T) {
	data := types.ItemData{
		"job_title":   types.Text("Backend Engineer"),
		"company":     types.Text("Acme"),
		"location":    types.Text("Berlin"),
		"start_date":  types.Text("2020-01"),
		"end_date":    types.Text("2022-06"),
		"description": types.Text("Built the billing system"),
		"skills":      types.List("Go", "Postgres"),
	}

	result := NewRegistry().BuildItem(BuilderExperienceItem, data, nil)

	assert.Contains(t, result, "Backend Engineer at Acme")
	assert.Contains(t, result, "2020-01 – 2022-06, Berlin")
	assert.Contains(t, result, "Built the billing system")
	assert.Contains(t, result, "Skills: Go, Postgres")
}

func TestExperienceItem_OngoingRole(t *testing.T) {
	data := types.ItemData{
		"job_title":  types.Text("Engineer"),
		"start_date": types.Text("2023-02"),
	}

	result := NewRegistry().BuildItem(BuilderExperienceItem, data, nil)
	assert.Contains(t, result, "2023-02 – Present")
}

func TestExperienceItem_EmptyFieldsAreOmitted(t *testing.T) {
	data := types.ItemData{
		"job_title": types.Text("Engineer"),
		"skills":    types.List(""),
	}

	result := NewRegistry().BuildItem(BuilderExperienceItem, data, nil)
	assert.Equal(t, "Engineer", result)
}

func TestSkillsItem_NameIsRequired(t *testing.T) {
	r := NewRegistry()

	empty := r.BuildItem(BuilderSkillsItem, types.ItemData{"level": types.Text("Expert")}, nil)
	assert.Equal(t, "", empty)

	full := r.BuildItem(BuilderSkillsItem, types.ItemData{
		"name":     types.Text("Databases"),
		"level":    types.Text("Expert"),
		"keywords": types.List("Postgres", "Redis"),
	}, nil)
	assert.Equal(t, "Databases (Expert): Postgres, Redis", full)
}

func TestCertificationItem(t *testing.T) {
	result := NewRegistry().BuildItem(BuilderCertificationItem, types.ItemData{
		"name":   types.Text("CKA"),
		"issuer": types.Text("CNCF"),
		"date":   types.Text("2024-03"),
	}, nil)

	assert.Equal(t, "CKA by CNCF (2024-03)", result)
}

func TestSectionBuilder_RendersTitleAndBulletPerItem(t *testing.T) {
	section := &types.DynamicSection{
		ID:       "sec-1",
		SchemaID: "languages",
		Title:    "Languages",
		Items: []*types.SectionItem{
			{ID: "i1", Data: types.ItemData{"language": types.Text("German"), "proficiency": types.Text("Native")}},
			{ID: "i2", Data: types.ItemData{"language": types.Text("English")}},
		},
	}

	result := NewRegistry().BuildSection(BuilderLanguageSection, section, nil)

	require.Contains(t, result, "Languages:")
	assert.Contains(t, result, "- German (Native)")
	assert.Contains(t, result, "- English")
}

func TestSectionBuilder_FallsBackToDefaultTitle(t *testing.T) {
	section := &types.DynamicSection{
		ID:       "sec-1",
		SchemaID: "experience",
		Items: []*types.SectionItem{
			{ID: "i1", Data: types.ItemData{"job_title": types.Text("Engineer")}},
		},
	}

	result := NewRegistry().BuildSection(BuilderExperienceSection, section, nil)
	assert.Contains(t, result, "Work experience:")
}

func TestSectionBuilder_EmptySectionReturnsEmpty(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "", r.BuildSection(BuilderExperienceSection, &types.DynamicSection{Title: "Experience"}, nil))
	assert.Equal(t, "", r.BuildSection(BuilderExperienceSection, nil, nil))
}

func TestSummarySection(t *testing.T) {
	section := &types.DynamicSection{
		ID:       "sec-summary",
		SchemaID: "summary",
		Items: []*types.SectionItem{
			{ID: "i1", Data: types.ItemData{"content": types.Text("Ten years of infrastructure work.")}},
		},
	}

	result := NewRegistry().BuildSection(BuilderSummarySection, section, nil)
	assert.Equal(t, "Professional summary: Ten years of infrastructure work.", result)
}
