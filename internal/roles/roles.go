// Package roles provides the static mapping from schema-specific field ids
// to a closed set of semantic roles. Role maps are authored alongside their
// schema version and looked up deterministically; they are never inferred
// from data at runtime.
package roles

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/schema"
)

// Role is the closed set of generic meanings a field can carry.
type Role string

// Roles.
const (
	RoleTitle        Role = "title"
	RoleOrganization Role = "organization"
	RoleDescription  Role = "description"
	RoleStartDate    Role = "startDate"
	RoleEndDate      Role = "endDate"
	RoleLocation     Role = "location"
	RoleURL          Role = "url"
	RoleIdentifier   Role = "identifier"
	RoleSkills       Role = "skills"
	RoleLevel        Role = "level"
	RoleOther        Role = "other"
)

// coreRoles is the whitelist of roles the AI bridge sends to the generation
// backend. Narrowing to these intentionally shrinks the prompt payload and
// the hallucination surface.
var coreRoles = map[Role]bool{
	RoleTitle:        true,
	RoleOrganization: true,
	RoleDescription:  true,
	RoleStartDate:    true,
	RoleEndDate:      true,
	RoleLevel:        true,
	RoleSkills:       true,
}

// IsCore reports whether the role is in the bridge whitelist.
func IsCore(r Role) bool {
	return coreRoles[r]
}

// RoleMap is the per-schema, versioned fieldID -> Role mapping. A field
// maps to at most one role; unmapped fields have no generic meaning.
type RoleMap struct {
	SchemaID string          `json:"schema_id"`
	Version  string          `json:"version"`
	Fields   map[string]Role `json:"fields"`
}

// Role returns the role mapped to the field id.
func (m *RoleMap) Role(fieldID string) (Role, bool) {
	r, ok := m.Fields[fieldID]
	return r, ok
}

// Catalog is the role-map registry.
type Catalog struct {
	byID map[string]*RoleMap
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]*RoleMap)}
}

// NewBuiltinCatalog creates a catalog with the role maps for the built-in
// section schemas.
func NewBuiltinCatalog() *Catalog {
	c := NewCatalog()
	for _, m := range builtinRoleMaps() {
		c.Register(m)
	}
	return c
}

// Register registers a role map, overwriting an existing map for the same
// schema id (last write wins, used only at startup).
func (c *Catalog) Register(m *RoleMap) {
	if m == nil || m.SchemaID == "" {
		return
	}
	c.byID[m.SchemaID] = m
}

// Get returns the role map for the schema id.
func (c *Catalog) Get(schemaID string) (*RoleMap, bool) {
	m, ok := c.byID[schemaID]
	return m, ok
}

// ValidateAgainst checks every registered role map against the schema
// catalog: the schema must exist and every mapped field id must be declared
// by it (no dangling mappings).
func (c *Catalog) ValidateAgainst(schemas *schema.Catalog) error {
	for schemaID, m := range c.byID {
		s, ok := schemas.Get(schemaID)
		if !ok {
			return fmt.Errorf("role map %q references unknown schema", schemaID)
		}
		for fieldID := range m.Fields {
			if _, ok := s.Field(fieldID); !ok {
				return fmt.Errorf("role map %q maps field %q which schema %q does not declare", schemaID, fieldID, schemaID)
			}
		}
	}
	return nil
}

// builtinRoleMaps returns the authored role maps for the built-in schemas.
// Version strings track the schema version they were authored against.
func builtinRoleMaps() []*RoleMap {
	return []*RoleMap{
		{
			SchemaID: "experience",
			Version:  "2.0",
			Fields: map[string]Role{
				"job_title":   RoleTitle,
				"company":     RoleOrganization,
				"location":    RoleLocation,
				"start_date":  RoleStartDate,
				"end_date":    RoleEndDate,
				"description": RoleDescription,
				"skills":      RoleSkills,
			},
		},
		{
			SchemaID: "education",
			Version:  "2.0",
			Fields: map[string]Role{
				"degree":      RoleTitle,
				"institution": RoleOrganization,
				"location":    RoleLocation,
				"start_date":  RoleStartDate,
				"end_date":    RoleEndDate,
				"description": RoleDescription,
			},
		},
		{
			SchemaID: "skills",
			Version:  "2.0",
			Fields: map[string]Role{
				"name":     RoleTitle,
				"level":    RoleLevel,
				"keywords": RoleSkills,
			},
		},
		{
			SchemaID: "projects",
			Version:  "2.0",
			Fields: map[string]Role{
				"name":         RoleTitle,
				"url":          RoleURL,
				"start_date":   RoleStartDate,
				"end_date":     RoleEndDate,
				"description":  RoleDescription,
				"technologies": RoleSkills,
			},
		},
		{
			SchemaID: "certifications",
			Version:  "2.0",
			Fields: map[string]Role{
				"name":          RoleTitle,
				"issuer":        RoleOrganization,
				"date":          RoleStartDate,
				"url":           RoleURL,
				"credential_id": RoleIdentifier,
			},
		},
		{
			SchemaID: "languages",
			Version:  "2.0",
			Fields: map[string]Role{
				"language":    RoleTitle,
				"proficiency": RoleLevel,
			},
		},
		{
			SchemaID: "summary",
			Version:  "2.0",
			Fields: map[string]Role{
				"content": RoleDescription,
			},
		},
	}
}
