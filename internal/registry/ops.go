package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/bridging"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// The high-level AI operations are thin orchestrators: assemble context,
// call the generation backend with a declared output contract, hand the
// result through the bridge. An empty backend result means "no suggestion";
// only transport, contract, and cardinality failures are errors.

// ImproveField generates an improved version of one field's text. Returns
// "" with no error when the backend has no suggestion.
func (r *Registry) ImproveField(ctx context.Context, req ContextRequest) (string, error) {
	req.Task = llm.TaskImprove
	aiCtx, err := r.BuildAIContext(req)
	if err != nil {
		return "", err
	}

	_, label, suggestions := r.fieldPromptInfo(req)

	prompt := prompts.Format(prompts.MustGet(prompts.KeyImproveField), map[string]string{
		"FieldLabel":           label,
		"CurrentItemContext":   aiCtx.CurrentItemContext,
		"OtherSectionsContext": aiCtx.OtherSectionsContext,
		"ProfileContext":       profileContext(aiCtx),
		"Suggestions":          suggestions,
	})

	text, err := r.client.GenerateContent(ctx, prompt, llm.TaskImprove)
	if err != nil {
		return "", &GenerationError{Operation: "improve field", Cause: err}
	}
	return strings.TrimSpace(text), nil
}

// Autocomplete generates a short continuation of the field's draft text.
// Fields not marked autocomplete-eligible return "" without calling the
// backend.
func (r *Registry) Autocomplete(ctx context.Context, req ContextRequest) (string, error) {
	req.Task = llm.TaskAutocomplete

	section := req.Document.Section(req.SectionID)
	if section == nil {
		return "", &SectionNotFoundError{SectionID: req.SectionID}
	}
	if sectionSchema, ok := r.schemas.Get(section.SchemaID); ok {
		if fieldSchema, declared := sectionSchema.Field(req.FieldID); declared && !fieldSchema.AI.Autocomplete {
			return "", nil
		}
	}

	aiCtx, err := r.BuildAIContext(req)
	if err != nil {
		return "", err
	}

	_, label, _ := r.fieldPromptInfo(req)
	prompt := prompts.Format(prompts.MustGet(prompts.KeyAutocomplete), map[string]string{
		"FieldLabel":           label,
		"CurrentItemContext":   aiCtx.CurrentItemContext,
		"OtherSectionsContext": aiCtx.OtherSectionsContext,
		"ProfileContext":       profileContext(aiCtx),
	})

	text, err := r.client.GenerateContent(ctx, prompt, llm.TaskAutocomplete)
	if err != nil {
		return "", &GenerationError{Operation: "autocomplete", Cause: err}
	}
	return strings.TrimSpace(text), nil
}

// batchResult is the declared output contract of a batch improvement.
type batchResult struct {
	Items []bridging.AIBridgedItem `json:"items"`
}

// BatchImproveSection improves every item of a section in one backend call
// and returns a new document with the validated results merged in. A result
// item count different from the request aborts the whole operation: the
// returned error carries the mismatch and the input document is untouched.
func (r *Registry) BatchImproveSection(ctx context.Context, doc *types.Document, sectionID string) (*types.Document, error) {
	section := doc.Section(sectionID)
	if section == nil {
		return nil, &SectionNotFoundError{SectionID: sectionID}
	}
	sectionSchema, ok := r.schemas.Get(section.SchemaID)
	if !ok {
		return nil, &UnknownSchemaError{SchemaID: section.SchemaID}
	}
	if !sectionSchema.AI.BatchImprove {
		return nil, &BatchUnsupportedError{SchemaID: sectionSchema.ID}
	}
	if len(section.Items) == 0 {
		return doc, nil
	}

	bridged := bridging.FromInternal(section, r)
	sectionJSON, err := json.Marshal(bridged)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal section for batch improvement: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet(prompts.KeyBatchImprove), map[string]string{
		"SectionJSON":          string(sectionJSON),
		"OtherSectionsContext": r.otherSectionsContext(doc, sectionID),
		"ProfileContext":       profileText(r.profile),
	})

	raw, err := r.client.GenerateJSON(ctx, prompt, llm.TaskBatchImprove)
	if err != nil {
		return nil, &GenerationError{Operation: "batch improve section", Cause: err}
	}
	if err := schemas.Validate(schemas.ContractBatchItems, raw); err != nil {
		return nil, fmt.Errorf("batch improvement output rejected: %w", err)
	}

	var result batchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse batch improvement output: %w", err)
	}
	if len(result.Items) != len(section.Items) {
		return nil, &bridging.CountMismatchError{
			SectionID: sectionID,
			Sent:      len(section.Items),
			Received:  len(result.Items),
		}
	}

	// Results map back to items positionally; the external representation
	// carries no ids. Only declared fields with validly shaped, non-empty
	// values survive into the patch.
	patches := make([]bridging.ItemPatch, 0, len(section.Items))
	for i, item := range section.Items {
		patch := bridging.ItemPatch{ID: item.ID, Data: make(types.ItemData)}
		for fieldID, value := range result.Items[i] {
			fieldSchema, declared := sectionSchema.Field(fieldID)
			if !declared || value.IsEmpty() {
				continue
			}
			coerced, valid := bridging.CoerceValue(fieldSchema, value)
			if !valid {
				continue
			}
			patch.Data[fieldID] = coerced
		}
		if len(patch.Data) > 0 {
			patches = append(patches, patch)
		}
	}

	return bridging.MergeBack(doc, sectionID, patches)
}

// ReviewDocument asks the backend for whole-document feedback. Returns ""
// with no error when the backend has nothing to say.
func (r *Registry) ReviewDocument(ctx context.Context, doc *types.Document) (string, error) {
	documentContext := r.otherSectionsContext(doc, "")
	if documentContext == "" {
		return "", nil
	}

	prompt := prompts.Format(prompts.MustGet(prompts.KeyReviewDocument), map[string]string{
		"DocumentContext": documentContext,
		"ProfileContext":  profileText(r.profile),
	})

	text, err := r.client.GenerateContent(ctx, prompt, llm.TaskReview)
	if err != nil {
		return "", &GenerationError{Operation: "review document", Cause: err}
	}
	return strings.TrimSpace(text), nil
}

// fieldPromptInfo resolves the field's label and joined prompt suggestions
// for prompt assembly, falling back to the raw field id.
func (r *Registry) fieldPromptInfo(req ContextRequest) (found bool, label, suggestions string) {
	label = req.FieldID
	section := req.Document.Section(req.SectionID)
	if section == nil {
		return false, label, ""
	}
	sectionSchema, ok := r.schemas.Get(section.SchemaID)
	if !ok {
		return false, label, ""
	}
	fieldSchema, declared := sectionSchema.Field(req.FieldID)
	if !declared {
		return false, label, ""
	}
	if fieldSchema.Label != "" {
		label = fieldSchema.Label
	}
	return true, label, strings.Join(fieldSchema.AI.PromptSuggestions, "; ")
}

// profileContext renders the cross-cutting fields already attached to an
// assembled context.
func profileContext(aiCtx *AIContext) string {
	return renderProfile(aiCtx.UserJobTitle, aiCtx.UserJobInfo, aiCtx.UserBio)
}

func profileText(p Profile) string {
	return renderProfile(p.JobTitle, p.JobInfo, p.Bio)
}

func renderProfile(jobTitle, jobInfo, bio string) string {
	var parts []string
	if jobTitle != "" {
		parts = append(parts, "Target role: "+jobTitle)
	}
	if jobInfo != "" {
		parts = append(parts, "About the target job:\n"+jobInfo)
	}
	if bio != "" {
		parts = append(parts, "About the candidate:\n"+bio)
	}
	return strings.Join(parts, "\n\n")
}
