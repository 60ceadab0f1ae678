package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_BatchItems_Valid(t *testing.T) {
	assert.NoError(t, Validate(ContractBatchItems, `{"items":[
		{"description":"Improved text","skills":["Go","SQL"]},
		{}
	]}`))
}

func TestValidate_BatchItems_EmptyItems(t *testing.T) {
	assert.NoError(t, Validate(ContractBatchItems, `{"items":[]}`))
}

func TestValidate_BatchItems_MissingItems(t *testing.T) {
	err := Validate(ContractBatchItems, `{"results":[]}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidate_BatchItems_WrongValueType(t *testing.T) {
	err := Validate(ContractBatchItems, `{"items":[{"description":42}]}`)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidate_BatchItems_NestedArraysRejected(t *testing.T) {
	err := Validate(ContractBatchItems, `{"items":[{"skills":[["nested"]]}]}`)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidate_BridgedResume_Valid(t *testing.T) {
	assert.NoError(t, Validate(ContractBridgedResume, `{
		"personal_details": {"name": "Ada"},
		"sections": [
			{"schema_id": "experience", "title": "Experience", "items": [
				{"job_title": "Engineer", "skills": ["Go"]}
			]}
		]
	}`))
}

func TestValidate_BridgedResume_MissingSchemaID(t *testing.T) {
	err := Validate(ContractBridgedResume, `{"sections":[{"items":[]}]}`)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidate_UnknownContract(t *testing.T) {
	err := Validate(Contract("nonexistent"), `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, Contract("nonexistent"), loadErr.Contract)
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(ContractBatchItems, `{not json`)
	assert.Error(t, err)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := Validate(ContractBatchItems, `{"items":"wrong"}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "validation failed")
}
