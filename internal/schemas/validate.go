// Package schemas provides JSON Schema validation for the structured output
// the generation backend returns. The contracts embedded here are the
// "schema-declared output contract" the AI operations prompt for; backend
// output that fails its contract is rejected before any bridging or merge.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed contracts/*.json
var contractFiles embed.FS

// Contract names the embedded output contracts.
type Contract string

// Output contracts.
const (
	// ContractBatchItems is the shape of a batch-improvement result.
	ContractBatchItems Contract = "batch_items"
	// ContractBridgedResume is the shape of a whole bridged resume.
	ContractBridgedResume Contract = "bridged_resume"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Contract Contract
	Message  string
	Cause    error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load contract %s: %s: %v", e.Contract, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load contract %s: %s", e.Contract, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate validates a JSON document string against an embedded contract.
// Returns *ValidationError when the document does not match the contract.
func Validate(contract Contract, jsonContent string) error {
	schemaBytes, err := contractFiles.ReadFile(fmt.Sprintf("contracts/%s.json", contract))
	if err != nil {
		return &SchemaLoadError{
			Contract: contract,
			Message:  "unknown contract",
			Cause:    err,
		}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Contract: contract,
			Message:  "schema validation failed during load",
			Cause:    err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
