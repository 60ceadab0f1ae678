package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/aicontext"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/types"
)

// ContextRequest scopes an AI context build to a section and, for
// field-scoped tasks, an item and field.
type ContextRequest struct {
	Document  *types.Document
	SectionID string
	// ItemID selects the target item. It may be empty for sections with
	// single cardinality, where the sole item (if any) is used.
	ItemID  string
	FieldID string
	Task    llm.Task
	// DraftText is the live, uncommitted editor input for FieldID. The
	// item snapshot handed to the builder has the field overridden with
	// it so the prompt sees the in-progress edit, not the saved value.
	DraftText string
}

// AIContext is the assembled prompt context for one generation request.
type AIContext struct {
	CurrentItemContext   string
	OtherSectionsContext string
	UserJobTitle         string
	UserJobInfo          string
	UserBio              string
}

// BuildAIContext assembles the context for a generation request: the
// builder-rendered view of the target item with the in-edit field
// overridden, the cached rest-of-document context, and the cross-cutting
// profile fields.
func (r *Registry) BuildAIContext(req ContextRequest) (*AIContext, error) {
	section := req.Document.Section(req.SectionID)
	if section == nil {
		return nil, &SectionNotFoundError{SectionID: req.SectionID}
	}
	sectionSchema, ok := r.schemas.Get(section.SchemaID)
	if !ok {
		return nil, &UnknownSchemaError{SchemaID: section.SchemaID}
	}

	out := &AIContext{
		UserJobTitle: r.profile.JobTitle,
		UserJobInfo:  r.profile.JobInfo,
		UserBio:      r.profile.Bio,
	}

	if req.FieldID != "" {
		item, err := resolveItem(section, sectionSchema, req.ItemID)
		if err != nil {
			return nil, err
		}
		fieldSchema, declared := sectionSchema.Field(req.FieldID)
		if !declared {
			return nil, &FieldNotFoundError{SchemaID: sectionSchema.ID, FieldID: req.FieldID}
		}

		var data types.ItemData
		if item != nil {
			data = item.Data.Clone()
		} else {
			data = make(types.ItemData)
		}
		data[req.FieldID] = types.Text(req.DraftText)

		if builderID := builderForTask(fieldSchema, req.Task); builderID != aicontext.BuilderNone {
			out.CurrentItemContext = r.builders.BuildItem(builderID, data, req.Document)
		}
		if out.CurrentItemContext == "" {
			// No builder for this field and task: fall back to the
			// draft text itself so the prompt is never blind.
			out.CurrentItemContext = req.DraftText
		}
	}

	out.OtherSectionsContext = r.otherSectionsContext(req.Document, req.SectionID)
	return out, nil
}

// resolveItem finds the target item: by id when given, otherwise the sole
// item of a single-cardinality section (nil when none exists yet).
func resolveItem(section *types.DynamicSection, sectionSchema *schema.SectionSchema, itemID string) (*types.SectionItem, error) {
	if itemID != "" {
		item := section.Item(itemID)
		if item == nil {
			return nil, &ItemNotFoundError{SectionID: section.ID, ItemID: itemID}
		}
		return item, nil
	}
	if sectionSchema.Cardinality == schema.CardinalitySingle && len(section.Items) > 0 {
		return section.Items[0], nil
	}
	if sectionSchema.Cardinality == schema.CardinalitySingle {
		return nil, nil
	}
	return nil, &ItemNotFoundError{SectionID: section.ID, ItemID: "(unspecified)"}
}

// builderForTask returns the field's context builder for the task.
func builderForTask(fieldSchema *schema.FieldSchema, task llm.Task) aicontext.BuilderID {
	switch task {
	case llm.TaskAutocomplete:
		return fieldSchema.AI.AutocompleteBuilder
	default:
		return fieldSchema.AI.ImproveBuilder
	}
}

// otherSectionsContext renders the rest-of-document context: the joined
// section-level builder output of every visible section except the one
// being edited. The result is cached keyed by the hash of the document
// excluding the in-edit section, so keystrokes in the active section never
// invalidate it while edits anywhere else do. Concurrent identical builds
// are collapsed through singleflight.
func (r *Registry) otherSectionsContext(doc *types.Document, excludeSectionID string) string {
	key := fmt.Sprintf("%s|%s", hashDocumentExcluding(doc, excludeSectionID), excludeSectionID)

	r.mu.RLock()
	cached, ok := r.ctxCache[key]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	built, _, _ := r.group.Do(key, func() (interface{}, error) {
		fragments := make([]string, 0, len(doc.Sections))
		for _, section := range doc.Sections {
			if section.ID == excludeSectionID || !section.Visible {
				continue
			}
			sectionSchema, ok := r.schemas.Get(section.SchemaID)
			if !ok {
				continue
			}
			fragment := r.builders.BuildSection(sectionSchema.AI.SectionBuilder, section, doc)
			if fragment != "" {
				fragments = append(fragments, fragment)
			}
		}
		result := strings.Join(fragments, "\n\n")

		r.mu.Lock()
		r.ctxCache[key] = result
		r.mu.Unlock()
		return result, nil
	})
	return built.(string)
}

// ClearCache drops every cached context string. Entries are never evicted
// individually; this is the correctness escape hatch after bulk changes
// such as a full document import.
func (r *Registry) ClearCache() {
	r.mu.Lock()
	r.ctxCache = make(map[string]string)
	r.mu.Unlock()
}

// hashDocumentExcluding hashes the document with the named section removed.
// JSON marshaling of the model is deterministic (maps marshal with sorted
// keys), so equal documents hash equally.
func hashDocumentExcluding(doc *types.Document, sectionID string) string {
	shadow := struct {
		PersonalDetails map[string]string       `json:"personal_details"`
		Sections        []*types.DynamicSection `json:"sections"`
		Template        string                  `json:"template"`
		SchemaVersion   string                  `json:"schema_version"`
	}{
		PersonalDetails: doc.PersonalDetails,
		Template:        doc.Template,
		SchemaVersion:   doc.SchemaVersion,
	}
	for _, section := range doc.Sections {
		if section.ID != sectionID {
			shadow.Sections = append(shadow.Sections, section)
		}
	}

	payload, err := json.Marshal(shadow)
	if err != nil {
		// The model is marshal-safe by construction; treat failure as an
		// uncacheable build.
		return fmt.Sprintf("unhashable-%p", doc)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
