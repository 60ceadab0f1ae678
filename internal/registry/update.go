package registry

import (
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/types"
)

// UpdateField sets one field value on an item, enforcing the field's
// declared validation rules. For single-cardinality sections an empty item
// id addresses the section's sole item, which is created lazily on the
// first edit. The document is mutated in place; it is the edit model.
func (r *Registry) UpdateField(doc *types.Document, sectionID, itemID, fieldID string, value types.Value) error {
	section := doc.Section(sectionID)
	if section == nil {
		return &SectionNotFoundError{SectionID: sectionID}
	}
	sectionSchema, ok := r.schemas.Get(section.SchemaID)
	if !ok {
		return &UnknownSchemaError{SchemaID: section.SchemaID}
	}
	fieldSchema, declared := sectionSchema.Field(fieldID)
	if !declared {
		return &FieldNotFoundError{SchemaID: sectionSchema.ID, FieldID: fieldID}
	}
	if err := checkRules(fieldSchema, value); err != nil {
		return err
	}

	now := time.Now().UTC()
	var item *types.SectionItem
	switch {
	case itemID != "":
		item = section.Item(itemID)
		if item == nil {
			return &ItemNotFoundError{SectionID: sectionID, ItemID: itemID}
		}
	case sectionSchema.Cardinality == schema.CardinalitySingle:
		if len(section.Items) == 0 {
			item = &types.SectionItem{
				ID:       uuid.NewString(),
				SchemaID: section.SchemaID,
				Data:     make(types.ItemData),
				Meta:     types.ItemMeta{CreatedAt: now, UpdatedAt: now},
			}
			section.Items = append(section.Items, item)
		} else {
			item = section.Items[0]
		}
	default:
		return &ItemNotFoundError{SectionID: sectionID, ItemID: "(unspecified)"}
	}

	if item.Data == nil {
		item.Data = make(types.ItemData)
	}
	item.Data[fieldID] = value.Clone()
	item.Meta.UpdatedAt = now
	return nil
}

// AddItem appends an empty item to a list-cardinality section and returns
// it. Single-cardinality sections get their item lazily through
// UpdateField instead.
func (r *Registry) AddItem(doc *types.Document, sectionID string) (*types.SectionItem, error) {
	section := doc.Section(sectionID)
	if section == nil {
		return nil, &SectionNotFoundError{SectionID: sectionID}
	}
	sectionSchema, ok := r.schemas.Get(section.SchemaID)
	if !ok {
		return nil, &UnknownSchemaError{SchemaID: section.SchemaID}
	}
	if sectionSchema.Cardinality == schema.CardinalitySingle && len(section.Items) >= 1 {
		return nil, &ItemNotFoundError{SectionID: sectionID, ItemID: "(single-cardinality section is full)"}
	}

	now := time.Now().UTC()
	item := &types.SectionItem{
		ID:       uuid.NewString(),
		SchemaID: section.SchemaID,
		Data:     make(types.ItemData),
		Meta:     types.ItemMeta{CreatedAt: now, UpdatedAt: now},
	}
	section.Items = append(section.Items, item)
	return item, nil
}

// RemoveItem deletes an item by id. Deletion is always an explicit user
// action; nothing in the engine deletes items implicitly.
func (r *Registry) RemoveItem(doc *types.Document, sectionID, itemID string) error {
	section := doc.Section(sectionID)
	if section == nil {
		return &SectionNotFoundError{SectionID: sectionID}
	}
	for i, item := range section.Items {
		if item.ID == itemID {
			section.Items = append(section.Items[:i], section.Items[i+1:]...)
			return nil
		}
	}
	return &ItemNotFoundError{SectionID: sectionID, ItemID: itemID}
}

// checkRules applies a field's declared validation rules in order and
// returns the first failure.
func checkRules(fieldSchema *schema.FieldSchema, value types.Value) error {
	// Shape first: a value of the wrong kind never reaches the rules.
	if fieldSchema.Type.IsListType() || fieldSchema.Type == schema.TypeObject {
		wantKind := types.KindList
		if fieldSchema.Type == schema.TypeObject {
			wantKind = types.KindObject
		}
		if !value.IsEmpty() && value.Kind() != wantKind {
			return &FieldValidationError{FieldID: fieldSchema.ID, Message: "value has the wrong shape for this field"}
		}
	} else if !value.IsEmpty() && value.Kind() != types.KindText {
		return &FieldValidationError{FieldID: fieldSchema.ID, Message: "value has the wrong shape for this field"}
	}

	text := value.Text()
	for _, rule := range fieldSchema.Rules {
		switch rule.Kind {
		case schema.RuleMinLength:
			if limit, err := strconv.Atoi(rule.Param); err == nil && len(text) < limit && !value.IsEmpty() {
				return &FieldValidationError{FieldID: fieldSchema.ID, Message: rule.Message}
			}
		case schema.RuleMaxLength:
			if limit, err := strconv.Atoi(rule.Param); err == nil && len(text) > limit {
				return &FieldValidationError{FieldID: fieldSchema.ID, Message: rule.Message}
			}
		case schema.RulePattern:
			if text == "" {
				continue
			}
			re, err := regexp.Compile(rule.Param)
			if err != nil {
				continue
			}
			if !re.MatchString(text) {
				return &FieldValidationError{FieldID: fieldSchema.ID, Message: rule.Message}
			}
		case schema.RuleDateFormat:
			if text == "" {
				continue
			}
			if _, err := time.Parse(rule.Param, text); err != nil {
				return &FieldValidationError{FieldID: fieldSchema.ID, Message: rule.Message}
			}
		case schema.RuleOptions:
			// Option membership is enforced through the schema's Options
			// list; the rule kind exists for authored schemas that want a
			// custom message.
			if text == "" {
				continue
			}
			allowed := false
			for _, opt := range fieldSchema.Options {
				if text == opt {
					allowed = true
					break
				}
			}
			if !allowed {
				return &FieldValidationError{FieldID: fieldSchema.ID, Message: rule.Message}
			}
		}
	}

	// Select membership applies even without an explicit rule.
	if fieldSchema.Type == schema.TypeSelect && text != "" {
		for _, opt := range fieldSchema.Options {
			if text == opt {
				return nil
			}
		}
		return &FieldValidationError{FieldID: fieldSchema.ID, Message: "value is not among the declared options"}
	}
	return nil
}
