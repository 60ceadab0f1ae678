package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestUpdateField_SetsValueAndBumpsTimestamp(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	err := reg.UpdateField(doc, "sec-exp", "exp-1", "job_title", types.Text("Principal Engineer"))
	require.NoError(t, err)

	item := doc.Section("sec-exp").Item("exp-1")
	assert.Equal(t, "Principal Engineer", item.Data["job_title"].Text())
	assert.False(t, item.Meta.UpdatedAt.IsZero())
}

func TestUpdateField_UnknownSectionAndField(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	var sectionErr *SectionNotFoundError
	assert.ErrorAs(t, reg.UpdateField(doc, "missing", "exp-1", "job_title", types.Text("x")), &sectionErr)

	var fieldErr *FieldNotFoundError
	assert.ErrorAs(t, reg.UpdateField(doc, "sec-exp", "exp-1", "salary", types.Text("x")), &fieldErr)
}

func TestUpdateField_MaxLengthRule(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	err := reg.UpdateField(doc, "sec-exp", "exp-1", "job_title", types.Text(strings.Repeat("x", 121)))

	var validationErr *FieldValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "job_title", validationErr.FieldID)
	// The rejected value must not be stored.
	assert.Equal(t, "Backend Engineer", doc.Section("sec-exp").Item("exp-1").Data["job_title"].Text())
}

func TestUpdateField_DateFormatRule(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	assert.Error(t, reg.UpdateField(doc, "sec-exp", "exp-1", "start_date", types.Text("March 2020")))
	assert.NoError(t, reg.UpdateField(doc, "sec-exp", "exp-1", "start_date", types.Text("2020-03")))
}

func TestUpdateField_SelectMembership(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	assert.Error(t, reg.UpdateField(doc, "sec-skills", "skill-1", "level", types.Text("Wizard")))
	assert.NoError(t, reg.UpdateField(doc, "sec-skills", "skill-1", "level", types.Text("Expert")))
}

func TestUpdateField_WrongShapeRejected(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	// skills is an array field, job_title a scalar field
	assert.Error(t, reg.UpdateField(doc, "sec-exp", "exp-1", "skills", types.Text("Go")))
	assert.Error(t, reg.UpdateField(doc, "sec-exp", "exp-1", "job_title", types.List("a", "b")))
	assert.NoError(t, reg.UpdateField(doc, "sec-exp", "exp-1", "skills", types.List("Go")))
}

func TestUpdateField_SingleCardinalityCreatesItemLazily(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()
	require.Empty(t, doc.Section("sec-summary").Items)

	err := reg.UpdateField(doc, "sec-summary", "", "content", types.Text("Ten years of Go."))
	require.NoError(t, err)

	items := doc.Section("sec-summary").Items
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, "Ten years of Go.", items[0].Data["content"].Text())

	// A second edit reuses the sole item instead of creating another.
	require.NoError(t, reg.UpdateField(doc, "sec-summary", "", "content", types.Text("Updated.")))
	assert.Len(t, doc.Section("sec-summary").Items, 1)
}

func TestUpdateField_ListCardinalityRequiresItemID(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	var notFound *ItemNotFoundError
	assert.ErrorAs(t, reg.UpdateField(doc, "sec-exp", "", "job_title", types.Text("x")), &notFound)
}

func TestAddItem_AppendsToListSection(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	item, err := reg.AddItem(doc, "sec-exp")
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Len(t, doc.Section("sec-exp").Items, 3)
	assert.Equal(t, item.ID, doc.Section("sec-exp").Items[2].ID)
}

func TestAddItem_SingleCardinalityRejectsSecondItem(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	_, err := reg.AddItem(doc, "sec-summary")
	require.NoError(t, err)

	_, err = reg.AddItem(doc, "sec-summary")
	assert.Error(t, err)
}

func TestRemoveItem(t *testing.T) {
	reg := newTestRegistry(t)
	doc := fixtureDocument()

	require.NoError(t, reg.RemoveItem(doc, "sec-exp", "exp-1"))

	items := doc.Section("sec-exp").Items
	require.Len(t, items, 1)
	assert.Equal(t, "exp-2", items[0].ID)

	var notFound *ItemNotFoundError
	assert.ErrorAs(t, reg.RemoveItem(doc, "sec-exp", "exp-1"), &notFound)
}
