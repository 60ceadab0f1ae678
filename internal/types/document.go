package types

import "time"

// SchemaVersion is the current dynamic document schema version. Documents
// without a schema version are legacy fixed-shape resumes.
const SchemaVersion = "2.0"

// ItemMeta carries per-item bookkeeping.
type ItemMeta struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AIGenerated bool      `json:"ai_generated,omitempty"`
	AIImproved  bool      `json:"ai_improved,omitempty"`
}

// SectionItem is one entry in a section: a bag of schema-declared field
// values plus metadata.
type SectionItem struct {
	ID       string   `json:"id"`
	SchemaID string   `json:"schema_id"`
	Data     ItemData `json:"data"`
	Meta     ItemMeta `json:"meta"`
}

// Clone returns a deep copy of the item.
func (it *SectionItem) Clone() *SectionItem {
	out := &SectionItem{
		ID:       it.ID,
		SchemaID: it.SchemaID,
		Data:     it.Data.Clone(),
		Meta:     it.Meta,
	}
	return out
}

// SectionMeta carries per-section bookkeeping.
type SectionMeta struct {
	CustomTitle bool `json:"custom_title,omitempty"`
	AIOptimized bool `json:"ai_optimized,omitempty"`
}

// DynamicSection is one schema-referencing section of a document. Item
// order is user-controlled and must be preserved by every transformation.
type DynamicSection struct {
	ID       string         `json:"id"`
	SchemaID string         `json:"schema_id"`
	Title    string         `json:"title"`
	Visible  bool           `json:"visible"`
	Items    []*SectionItem `json:"items"`
	Meta     SectionMeta    `json:"meta"`
}

// Clone returns a deep copy of the section.
func (s *DynamicSection) Clone() *DynamicSection {
	out := &DynamicSection{
		ID:       s.ID,
		SchemaID: s.SchemaID,
		Title:    s.Title,
		Visible:  s.Visible,
		Meta:     s.Meta,
	}
	if s.Items != nil {
		out.Items = make([]*SectionItem, len(s.Items))
		for i, it := range s.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// Item returns the item with the given id, or nil.
func (s *DynamicSection) Item(id string) *SectionItem {
	for _, it := range s.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Document is the internal, editable representation of a resume.
type Document struct {
	PersonalDetails map[string]string `json:"personal_details"`
	Sections        []*DynamicSection `json:"sections"`
	Template        string            `json:"template,omitempty"`
	SchemaVersion   string            `json:"schema_version"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Template:      d.Template,
		SchemaVersion: d.SchemaVersion,
	}
	if d.PersonalDetails != nil {
		out.PersonalDetails = make(map[string]string, len(d.PersonalDetails))
		for k, v := range d.PersonalDetails {
			out.PersonalDetails[k] = v
		}
	}
	if d.Sections != nil {
		out.Sections = make([]*DynamicSection, len(d.Sections))
		for i, s := range d.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}

// Section returns the section with the given id, or nil.
func (d *Document) Section(id string) *DynamicSection {
	for _, s := range d.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SectionBySchema returns the first section referencing the given schema
// id, or nil.
func (d *Document) SectionBySchema(schemaID string) *DynamicSection {
	for _, s := range d.Sections {
		if s.SchemaID == schemaID {
			return s
		}
	}
	return nil
}
