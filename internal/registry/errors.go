// Package registry provides the schema registry: the dependency-injected
// service composing the schema catalog, role maps, context builders, and
// the generation client, plus the high-level AI operations built on them.
package registry

import "fmt"

// SectionNotFoundError reports an operation against a section id the
// document does not contain.
type SectionNotFoundError struct {
	SectionID string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("document has no section %s", e.SectionID)
}

// ItemNotFoundError reports an operation against an item id the section
// does not contain.
type ItemNotFoundError struct {
	SectionID string
	ItemID    string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("section %s has no item %s", e.SectionID, e.ItemID)
}

// UnknownSchemaError reports a section whose schema id is not registered.
type UnknownSchemaError struct {
	SchemaID string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("unknown section schema %q", e.SchemaID)
}

// FieldNotFoundError reports a field id the section schema does not declare.
type FieldNotFoundError struct {
	SchemaID string
	FieldID  string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("schema %q declares no field %q", e.SchemaID, e.FieldID)
}

// FieldValidationError reports a field value rejected by the schema's
// declared validation rules. Message is the rule's user-facing message.
type FieldValidationError struct {
	FieldID string
	Message string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.FieldID, e.Message)
}

// BatchUnsupportedError reports a batch improvement request against a
// schema that does not declare batch support.
type BatchUnsupportedError struct {
	SchemaID string
}

func (e *BatchUnsupportedError) Error() string {
	return fmt.Sprintf("schema %q does not support batch improvement", e.SchemaID)
}

// GenerationError wraps a generation backend failure. The engine does not
// retry; the caller decides what to do with the failed operation.
type GenerationError struct {
	Operation string
	Cause     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: generation backend failed: %v", e.Operation, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
