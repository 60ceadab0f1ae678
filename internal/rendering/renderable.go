// Package rendering transforms the mutable edit-time document into the
// immutable, schema-agnostic view model consumed by display templates.
// Templates never see schema objects and never need to branch on empty
// values: a field that appears in the view model always has content.
package rendering

// RenderableField is one display-ready field. Value is the rendered text;
// Items carries the individual entries for list-valued fields.
type RenderableField struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Value    string   `json:"value"`
	Items    []string `json:"items,omitempty"`
	Markdown bool     `json:"markdown,omitempty"`
}

// RenderableItem is one display-ready section entry.
type RenderableItem struct {
	ID     string            `json:"id"`
	Fields []RenderableField `json:"fields"`
}

// Render hints templates may use to pick a default layout for a section.
const (
	RenderHintText     = "text"
	RenderHintTimeline = "timeline"
	RenderHintList     = "list"
)

// RenderableSection is one display-ready section.
type RenderableSection struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	SchemaID          string           `json:"schema_id"`
	DefaultRenderHint string           `json:"default_render_hint"`
	Items             []RenderableItem `json:"items"`
}

// RenderableResume is the root of the view model.
type RenderableResume struct {
	PersonalDetails map[string]string   `json:"personal_details"`
	Sections        []RenderableSection `json:"sections"`
}
