// Package aicontext provides named, pure context builders that render
// prompt text fragments from section and item data. Builders are the only
// schema-specific code the AI operations depend on; everything else reaches
// data through role maps or field schemas.
package aicontext

import (
	"github.com/jonathan/resume-studio/internal/types"
)

// BuilderID names a context builder. Section schemas reference builders by
// id; an id that resolves to nothing degrades to empty context rather than
// failing the AI call, because schemas are authored data and may reference
// builders that were never registered.
type BuilderID string

// Built-in builder ids.
const (
	BuilderNone BuilderID = ""

	BuilderExperienceItem    BuilderID = "experience_item"
	BuilderExperienceSection BuilderID = "experience_section"
	BuilderEducationItem     BuilderID = "education_item"
	BuilderEducationSection  BuilderID = "education_section"
	BuilderSkillsItem        BuilderID = "skills_item"
	BuilderSkillsSection     BuilderID = "skills_section"
	BuilderProjectItem       BuilderID = "project_item"
	BuilderProjectSection    BuilderID = "project_section"
	BuilderCertificationItem BuilderID = "certification_item"
	BuilderCertSection       BuilderID = "certification_section"
	BuilderLanguageItem      BuilderID = "language_item"
	BuilderLanguageSection   BuilderID = "language_section"
	BuilderSummaryItem       BuilderID = "summary_item"
	BuilderSummarySection    BuilderID = "summary_section"
)

// ItemBuilder renders a prompt fragment for one item. The whole document is
// available for cross-referencing but builders must not mutate it.
type ItemBuilder func(data types.ItemData, doc *types.Document) string

// SectionBuilder renders a prompt fragment summarizing one section.
type SectionBuilder func(section *types.DynamicSection, doc *types.Document) string

// Registry holds the builder lookup tables.
type Registry struct {
	itemBuilders    map[BuilderID]ItemBuilder
	sectionBuilders map[BuilderID]SectionBuilder
}

// NewRegistry creates a registry pre-populated with the built-in builders.
func NewRegistry() *Registry {
	r := &Registry{
		itemBuilders:    make(map[BuilderID]ItemBuilder),
		sectionBuilders: make(map[BuilderID]SectionBuilder),
	}
	registerBuiltins(r)
	return r
}

// RegisterItemBuilder registers an item-level builder. Registering an
// existing id overwrites it (last write wins, used only at startup).
func (r *Registry) RegisterItemBuilder(id BuilderID, fn ItemBuilder) {
	if id == BuilderNone || fn == nil {
		return
	}
	r.itemBuilders[id] = fn
}

// RegisterSectionBuilder registers a section-level builder.
func (r *Registry) RegisterSectionBuilder(id BuilderID, fn SectionBuilder) {
	if id == BuilderNone || fn == nil {
		return
	}
	r.sectionBuilders[id] = fn
}

// BuildItem invokes the item builder with the given id. An unknown id
// returns "" so a missing builder degrades to empty context.
func (r *Registry) BuildItem(id BuilderID, data types.ItemData, doc *types.Document) string {
	fn, ok := r.itemBuilders[id]
	if !ok {
		return ""
	}
	return fn(data, doc)
}

// BuildSection invokes the section builder with the given id. An unknown id
// returns "".
func (r *Registry) BuildSection(id BuilderID, section *types.DynamicSection, doc *types.Document) string {
	fn, ok := r.sectionBuilders[id]
	if !ok {
		return ""
	}
	return fn(section, doc)
}

// HasItemBuilder reports whether an item builder is registered for the id.
func (r *Registry) HasItemBuilder(id BuilderID) bool {
	_, ok := r.itemBuilders[id]
	return ok
}

// HasSectionBuilder reports whether a section builder is registered for the id.
func (r *Registry) HasSectionBuilder(id BuilderID) bool {
	_, ok := r.sectionBuilders[id]
	return ok
}
