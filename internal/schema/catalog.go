package schema

import "fmt"

// Catalog is the section-schema registry. Registration order is preserved
// so schema listings are deterministic.
type Catalog struct {
	order []string
	byID  map[string]*SectionSchema
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]*SectionSchema)}
}

// NewBuiltinCatalog creates a catalog pre-populated with the built-in
// section schemas.
func NewBuiltinCatalog() *Catalog {
	c := NewCatalog()
	for _, s := range BuiltinSchemas() {
		// Built-in schemas are authored in this package; a validation
		// failure here is a programming error.
		if err := c.Register(s); err != nil {
			panic(fmt.Sprintf("invalid built-in schema %q: %v", s.ID, err))
		}
	}
	return c
}

// Register validates and registers a schema. Registering an existing id
// overwrites it (last write wins); registration happens at startup only.
func (c *Catalog) Register(s *SectionSchema) error {
	if s == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := c.byID[s.ID]; !exists {
		c.order = append(c.order, s.ID)
	}
	c.byID[s.ID] = s
	return nil
}

// Get returns the schema with the given id.
func (c *Catalog) Get(id string) (*SectionSchema, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// All returns every registered schema in registration order.
func (c *Catalog) All() []*SectionSchema {
	out := make([]*SectionSchema, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of registered schemas.
func (c *Catalog) Len() int {
	return len(c.byID)
}
