package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/roles"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/types"
)

// fakeClient is an in-memory llm.Client returning canned responses and
// recording the prompts it received.
type fakeClient struct {
	contentResult string
	jsonResult    string
	err           error
	prompts       []string
	calls         int
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.Task) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.contentResult, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.Task) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.jsonResult, f.err
}

func (f *fakeClient) Close() error { return nil }

// fixtureDocument builds a document with an experience section (two items),
// a skills section, and a single-cardinality summary section.
func fixtureDocument() *types.Document {
	return &types.Document{
		PersonalDetails: map[string]string{"name": "Ada"},
		SchemaVersion:   types.SchemaVersion,
		Sections: []*types.DynamicSection{
			{
				ID: "sec-exp", SchemaID: "experience", Title: "Experience", Visible: true,
				Items: []*types.SectionItem{
					{ID: "exp-1", SchemaID: "experience", Data: types.ItemData{
						"job_title":   types.Text("Backend Engineer"),
						"company":     types.Text("Acme"),
						"description": types.Text("Built the billing system"),
					}},
					{ID: "exp-2", SchemaID: "experience", Data: types.ItemData{
						"job_title": types.Text("Intern"),
						"company":   types.Text("Initech"),
					}},
				},
			},
			{
				ID: "sec-skills", SchemaID: "skills", Title: "Skills", Visible: true,
				Items: []*types.SectionItem{
					{ID: "skill-1", SchemaID: "skills", Data: types.ItemData{
						"name": types.Text("Go"),
					}},
				},
			},
			{
				ID: "sec-summary", SchemaID: "summary", Title: "Summary", Visible: true,
			},
		},
	}
}

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	reg, err := New(opts...)
	require.NoError(t, err)
	return reg
}

func TestNew_DefaultsToBuiltinCatalogs(t *testing.T) {
	reg := newTestRegistry(t)

	_, ok := reg.SectionSchema("experience")
	assert.True(t, ok)
	_, ok = reg.RoleMap("experience")
	assert.True(t, ok)
	assert.NotEmpty(t, reg.AllSectionSchemas())
}

func TestNew_RejectsRoleMapsWithDanglingFields(t *testing.T) {
	roleCatalog := roles.NewCatalog()
	roleCatalog.Register(&roles.RoleMap{
		SchemaID: "experience",
		Fields:   map[string]roles.Role{"salary": roles.RoleOther},
	})

	_, err := New(WithRoleCatalog(roleCatalog))
	assert.Error(t, err)
}

func TestRegisterSectionSchema_ValidatesSchema(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.RegisterSectionSchema(&schema.SectionSchema{ID: "broken"})
	assert.Error(t, err)
}

func TestRegisterRoleMap_RejectsDanglingFields(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.RegisterRoleMap(&roles.RoleMap{
		SchemaID: "experience",
		Fields:   map[string]roles.Role{"salary": roles.RoleOther},
	})
	assert.Error(t, err)
}

func TestRegisterRoleMap_AcceptsValidMap(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.RegisterSectionSchema(&schema.SectionSchema{
		ID:          "awards",
		DisplayName: "Awards",
		Cardinality: schema.CardinalityList,
		Fields: []schema.FieldSchema{
			{ID: "title", Label: "Title", Type: schema.TypeShortText},
		},
	}))

	err := reg.RegisterRoleMap(&roles.RoleMap{
		SchemaID: "awards",
		Version:  "2.0",
		Fields:   map[string]roles.Role{"title": roles.RoleTitle},
	})
	require.NoError(t, err)

	m, ok := reg.RoleMap("awards")
	require.True(t, ok)
	role, _ := m.Role("title")
	assert.Equal(t, roles.RoleTitle, role)
}
