package bridging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func mergeTestDocument() *types.Document {
	return &types.Document{
		SchemaVersion: types.SchemaVersion,
		Sections: []*types.DynamicSection{
			{
				ID:       "sec-1",
				SchemaID: "experience",
				Title:    "Experience",
				Visible:  true,
				Items: []*types.SectionItem{
					{ID: "item-1", Data: types.ItemData{
						"job_title":   types.Text("Engineer"),
						"description": types.Text("old text"),
					}},
					{ID: "item-2", Data: types.ItemData{
						"job_title": types.Text("Manager"),
					}},
				},
			},
			{
				ID:       "sec-2",
				SchemaID: "skills",
				Title:    "Skills",
				Visible:  true,
				Items: []*types.SectionItem{
					{ID: "item-3", Data: types.ItemData{"name": types.Text("Go")}},
				},
			},
		},
	}
}

func TestMergeBack_ReplacesOnlyPatchedFields(t *testing.T) {
	doc := mergeTestDocument()

	merged, err := MergeBack(doc, "sec-1", []ItemPatch{
		{ID: "item-1", Data: types.ItemData{"description": types.Text("new text")}},
	})
	require.NoError(t, err)

	item := merged.Section("sec-1").Item("item-1")
	assert.Equal(t, "new text", item.Data["description"].Text())
	assert.Equal(t, "Engineer", item.Data["job_title"].Text())
	assert.True(t, item.Meta.AIImproved)
	assert.False(t, item.Meta.UpdatedAt.IsZero())
}

func TestMergeBack_DoesNotMutateInput(t *testing.T) {
	doc := mergeTestDocument()

	_, err := MergeBack(doc, "sec-1", []ItemPatch{
		{ID: "item-1", Data: types.ItemData{"description": types.Text("new text")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "old text", doc.Section("sec-1").Item("item-1").Data["description"].Text())
	assert.False(t, doc.Section("sec-1").Item("item-1").Meta.AIImproved)
}

func TestMergeBack_UnpatchedItemsAndSectionsUntouched(t *testing.T) {
	doc := mergeTestDocument()

	merged, err := MergeBack(doc, "sec-1", []ItemPatch{
		{ID: "item-1", Data: types.ItemData{"description": types.Text("new text")}},
	})
	require.NoError(t, err)

	untouched := merged.Section("sec-1").Item("item-2")
	assert.False(t, untouched.Meta.AIImproved)
	assert.True(t, untouched.Meta.UpdatedAt.IsZero())

	otherSection := merged.Section("sec-2")
	assert.Equal(t, "Go", otherSection.Item("item-3").Data["name"].Text())
	assert.False(t, otherSection.Item("item-3").Meta.AIImproved)
}

func TestMergeBack_UnknownSectionFails(t *testing.T) {
	_, err := MergeBack(mergeTestDocument(), "missing", nil)

	var unknownErr *UnknownSectionError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "missing", unknownErr.SectionID)
}

func TestMergeBack_UnknownPatchIDsAreIgnored(t *testing.T) {
	merged, err := MergeBack(mergeTestDocument(), "sec-1", []ItemPatch{
		{ID: "ghost", Data: types.ItemData{"description": types.Text("ignored")}},
	})
	require.NoError(t, err)

	for _, item := range merged.Section("sec-1").Items {
		assert.False(t, item.Meta.AIImproved)
	}
}

func TestMergeBack_EmptyPatchesAreSkipped(t *testing.T) {
	merged, err := MergeBack(mergeTestDocument(), "sec-1", []ItemPatch{
		{ID: "item-1", Data: types.ItemData{}},
	})
	require.NoError(t, err)

	assert.False(t, merged.Section("sec-1").Item("item-1").Meta.AIImproved)
}

func TestMergeBack_PreservesItemOrder(t *testing.T) {
	merged, err := MergeBack(mergeTestDocument(), "sec-1", []ItemPatch{
		{ID: "item-2", Data: types.ItemData{"job_title": types.Text("Director")}},
	})
	require.NoError(t, err)

	items := merged.Section("sec-1").Items
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, "item-2", items[1].ID)
}
