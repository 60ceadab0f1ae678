package bridging

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/roles"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/types"
)

// SchemaSource is the catalog access the bridge needs; the schema registry
// satisfies it.
type SchemaSource interface {
	SectionSchema(id string) (*schema.SectionSchema, bool)
	RoleMap(schemaID string) (*roles.RoleMap, bool)
}

// AIBridgedItem is one item in the external representation: a plain field
// map with no ids or metadata.
type AIBridgedItem map[string]types.Value

// AIBridgedSection is the minimal external representation of a section.
type AIBridgedSection struct {
	SchemaID string          `json:"schema_id"`
	Title    string          `json:"title,omitempty"`
	Items    []AIBridgedItem `json:"items"`
}

// AIBridgedResume is the external representation of a whole document.
type AIBridgedResume struct {
	PersonalDetails map[string]string   `json:"personal_details,omitempty"`
	Sections        []*AIBridgedSection `json:"sections"`
}

// FromInternal projects a section onto its external representation. With a
// role map, only non-empty fields mapped to core roles are included; without
// one, all non-empty fields except "id" are included. Item order is
// preserved.
func FromInternal(section *types.DynamicSection, src SchemaSource) *AIBridgedSection {
	out := &AIBridgedSection{
		SchemaID: section.SchemaID,
		Title:    section.Title,
		Items:    make([]AIBridgedItem, 0, len(section.Items)),
	}

	roleMap, hasRoles := src.RoleMap(section.SchemaID)
	for _, item := range section.Items {
		bridged := make(AIBridgedItem)
		for _, fieldID := range item.Data.NonEmpty() {
			if hasRoles {
				role, mapped := roleMap.Role(fieldID)
				if !mapped || !roles.IsCore(role) {
					continue
				}
			} else if fieldID == "id" {
				continue
			}
			bridged[fieldID] = item.Data[fieldID].Clone()
		}
		out.Items = append(out.Items, bridged)
	}
	return out
}

// ToInternal converts backend-produced (or imported) bridged data into an
// internal document. This is the shape-validation boundary: sections with
// unknown schema ids are skipped, field keys the schema does not declare
// and empty or wrongly shaped values are silently dropped. Every produced
// item and section is stamped as AI-generated with fresh timestamps.
func ToInternal(resume *AIBridgedResume, src SchemaSource) *types.Document {
	doc := &types.Document{
		PersonalDetails: make(map[string]string),
		SchemaVersion:   types.SchemaVersion,
	}
	for k, v := range resume.PersonalDetails {
		doc.PersonalDetails[k] = v
	}

	now := time.Now().UTC()
	for _, bridged := range resume.Sections {
		sectionSchema, ok := src.SectionSchema(bridged.SchemaID)
		if !ok {
			continue
		}

		section := &types.DynamicSection{
			ID:       uuid.NewString(),
			SchemaID: bridged.SchemaID,
			Title:    bridged.Title,
			Visible:  true,
			Meta:     types.SectionMeta{AIOptimized: true},
		}
		if section.Title == "" {
			section.Title = sectionSchema.DisplayName
		} else if section.Title != sectionSchema.DisplayName {
			section.Meta.CustomTitle = true
		}

		for _, bridgedItem := range bridged.Items {
			data := make(types.ItemData)
			for fieldID, value := range bridgedItem {
				fieldSchema, declared := sectionSchema.Field(fieldID)
				if !declared || value.IsEmpty() {
					continue
				}
				coerced, valid := CoerceValue(fieldSchema, value)
				if !valid {
					continue
				}
				data[fieldID] = coerced
			}
			if len(data) == 0 {
				continue
			}
			section.Items = append(section.Items, &types.SectionItem{
				ID:       uuid.NewString(),
				SchemaID: bridged.SchemaID,
				Data:     data,
				Meta: types.ItemMeta{
					CreatedAt:   now,
					UpdatedAt:   now,
					AIGenerated: true,
				},
			})
		}

		// A single-cardinality schema keeps at most its first item.
		if sectionSchema.Cardinality == schema.CardinalitySingle && len(section.Items) > 1 {
			section.Items = section.Items[:1]
		}

		doc.Sections = append(doc.Sections, section)
	}
	return doc
}

// CoerceValue checks a value against the declared field type and returns
// the value to store. Values of the wrong shape or select values not among
// the declared options are rejected; multi-select lists are filtered to the
// declared options and rejected only when nothing remains.
func CoerceValue(fs *schema.FieldSchema, v types.Value) (types.Value, bool) {
	switch {
	case fs.Type.IsListType():
		if v.Kind() != types.KindList {
			return types.Value{}, false
		}
		if fs.Type == schema.TypeMultiSelect {
			allowed := make(map[string]bool, len(fs.Options))
			for _, opt := range fs.Options {
				allowed[opt] = true
			}
			kept := make([]string, 0, len(v.List()))
			for _, entry := range v.List() {
				if allowed[entry] {
					kept = append(kept, entry)
				}
			}
			if len(kept) == 0 {
				return types.Value{}, false
			}
			return types.List(kept...), true
		}
		return v.Clone(), true

	case fs.Type == schema.TypeObject:
		if v.Kind() != types.KindObject {
			return types.Value{}, false
		}
		return v.Clone(), true

	case fs.Type == schema.TypeSelect:
		if v.Kind() != types.KindText {
			return types.Value{}, false
		}
		for _, opt := range fs.Options {
			if v.Text() == opt {
				return v, true
			}
		}
		return types.Value{}, false

	default:
		if v.Kind() != types.KindText {
			return types.Value{}, false
		}
		return v, true
	}
}
