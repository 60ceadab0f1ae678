// Package schema provides the declarative section-type catalog: what fields
// a section has, how they validate, and which AI context builders apply.
// Section types are data, not code; adding one requires a schema, a role
// map, and any new context builders, never changes to the engine.
package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/aicontext"
)

// FieldType is the closed set of value shapes a field can declare.
type FieldType string

// Field types.
const (
	TypeShortText   FieldType = "short_text"
	TypeLongText    FieldType = "long_text"
	TypeDate        FieldType = "date"
	TypeURL         FieldType = "url"
	TypeEmail       FieldType = "email"
	TypePhone       FieldType = "phone"
	TypeSelect      FieldType = "select"
	TypeMultiSelect FieldType = "multi_select"
	TypeObject      FieldType = "object"
	TypeArray       FieldType = "array"
)

// IsListType reports whether values of this type are lists of strings.
func (t FieldType) IsListType() bool {
	return t == TypeMultiSelect || t == TypeArray
}

// RuleKind is the closed set of declarative validation rule kinds.
type RuleKind string

// Rule kinds.
const (
	RuleMinLength  RuleKind = "min_length"
	RuleMaxLength  RuleKind = "max_length"
	RulePattern    RuleKind = "pattern"
	RuleDateFormat RuleKind = "date_format"
	RuleOptions    RuleKind = "allowed_options"
)

var knownRuleKinds = map[RuleKind]bool{
	RuleMinLength:  true,
	RuleMaxLength:  true,
	RulePattern:    true,
	RuleDateFormat: true,
	RuleOptions:    true,
}

// ValidationRule is one declarative constraint on a field value. Rules are
// applied in declaration order by the registry's field update path.
type ValidationRule struct {
	Kind    RuleKind `json:"kind"`
	Param   string   `json:"param,omitempty"`
	Message string   `json:"message"`
}

// AIHints declares how the AI operations treat one field.
type AIHints struct {
	// ImproveBuilder and AutocompleteBuilder name the context builder
	// used when this field is the target of the respective task.
	ImproveBuilder      aicontext.BuilderID `json:"improve_builder,omitempty"`
	AutocompleteBuilder aicontext.BuilderID `json:"autocomplete_builder,omitempty"`
	// Autocomplete marks the field eligible for inline completion.
	Autocomplete bool `json:"autocomplete,omitempty"`
	// Priority orders fields within batch-improvement prompts; higher
	// priority fields are listed first.
	Priority int `json:"priority,omitempty"`
	// PromptSuggestions are free-form improvement angles surfaced to the
	// user and appended to improvement prompts.
	PromptSuggestions []string `json:"prompt_suggestions,omitempty"`
}

// FieldSchema describes one editable field of a section type. The field id
// is stable for the lifetime of the schema version; renaming a field means
// a new schema version plus a migration.
type FieldSchema struct {
	ID       string           `json:"id" validate:"required"`
	Label    string           `json:"label" validate:"required"`
	Type     FieldType        `json:"type" validate:"required"`
	Required bool             `json:"required,omitempty"`
	Markdown bool             `json:"markdown,omitempty"`
	Options  []string         `json:"options,omitempty"`
	Rules    []ValidationRule `json:"rules,omitempty"`
	AI       AIHints          `json:"ai,omitempty"`
}

// Cardinality declares how many items a section holds.
type Cardinality string

// Cardinalities.
const (
	CardinalitySingle Cardinality = "single"
	CardinalityList   Cardinality = "list"
)

// UIHints carries presentation metadata the engine passes through untouched.
type UIHints struct {
	Icon     string `json:"icon,omitempty"`
	AddLabel string `json:"add_label,omitempty"`
	Sortable bool   `json:"sortable,omitempty"`
}

// AIContext declares the section-level AI wiring.
type AIContext struct {
	SectionBuilder aicontext.BuilderID `json:"section_builder,omitempty"`
	ItemBuilder    aicontext.BuilderID `json:"item_builder,omitempty"`
	BatchImprove   bool                `json:"batch_improve,omitempty"`
}

// SectionSchema describes one section type.
type SectionSchema struct {
	ID          string        `json:"id" validate:"required"`
	DisplayName string        `json:"display_name" validate:"required"`
	Cardinality Cardinality   `json:"cardinality" validate:"required,oneof=single list"`
	Fields      []FieldSchema `json:"fields" validate:"required,min=1,dive"`
	AI          AIContext     `json:"ai,omitempty"`
	UI          UIHints       `json:"ui,omitempty"`
}

// Field returns the field schema with the given id.
func (s *SectionSchema) Field(id string) (*FieldSchema, bool) {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i], true
		}
	}
	return nil, false
}

// FieldIDs returns the declared field ids in declaration order.
func (s *SectionSchema) FieldIDs() []string {
	ids := make([]string, 0, len(s.Fields))
	for i := range s.Fields {
		ids = append(ids, s.Fields[i].ID)
	}
	return ids
}

// Validate checks the schema's structural rules: tag-level constraints,
// unique field ids, select options where required, known rule kinds.
func (s *SectionSchema) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("schema %q failed structural validation: %w", s.ID, err)
	}

	seen := make(map[string]bool, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		if seen[f.ID] {
			return fmt.Errorf("schema %q declares field id %q more than once", s.ID, f.ID)
		}
		seen[f.ID] = true

		if (f.Type == TypeSelect || f.Type == TypeMultiSelect) && len(f.Options) == 0 {
			return fmt.Errorf("schema %q field %q is a select type but declares no options", s.ID, f.ID)
		}
		if f.Type != TypeSelect && f.Type != TypeMultiSelect && len(f.Options) > 0 {
			return fmt.Errorf("schema %q field %q declares options but is not a select type", s.ID, f.ID)
		}
		for _, rule := range f.Rules {
			if !knownRuleKinds[rule.Kind] {
				return fmt.Errorf("schema %q field %q uses unknown rule kind %q", s.ID, f.ID, rule.Kind)
			}
		}
	}
	return nil
}
