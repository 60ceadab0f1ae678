package registry

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-studio/internal/aicontext"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/roles"
	"github.com/jonathan/resume-studio/internal/schema"
	"github.com/jonathan/resume-studio/internal/types"
)

// Profile carries the caller-supplied cross-cutting context attached to
// every AI request: the role the user is targeting plus free-text job and
// bio information.
type Profile struct {
	JobTitle string
	JobInfo  string
	Bio      string
}

// Registry composes the schema catalog, role-map catalog, context-builder
// registry, and the generation client. It is constructed explicitly and
// injected where needed so tests can run isolated instances; it is safe for
// concurrent readers once startup registration is done.
type Registry struct {
	schemas  *schema.Catalog
	roleMaps *roles.Catalog
	builders *aicontext.Registry
	client   llm.Client
	profile  Profile

	mu       sync.RWMutex
	ctxCache map[string]string
	group    singleflight.Group
}

// Option configures a Registry.
type Option func(*Registry)

// WithClient sets the generation client. A registry without a client can
// still build context and serve catalog lookups; AI operations will fail.
func WithClient(client llm.Client) Option {
	return func(r *Registry) { r.client = client }
}

// WithProfile sets the cross-cutting user profile.
func WithProfile(p Profile) Option {
	return func(r *Registry) { r.profile = p }
}

// WithSchemaCatalog replaces the default built-in schema catalog.
func WithSchemaCatalog(c *schema.Catalog) Option {
	return func(r *Registry) { r.schemas = c }
}

// WithRoleCatalog replaces the default built-in role-map catalog.
func WithRoleCatalog(c *roles.Catalog) Option {
	return func(r *Registry) { r.roleMaps = c }
}

// WithBuilderRegistry replaces the default built-in builder registry.
func WithBuilderRegistry(b *aicontext.Registry) Option {
	return func(r *Registry) { r.builders = b }
}

// New creates a registry with the built-in catalogs unless options override
// them, and verifies every role map against the schema catalog.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		ctxCache: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.schemas == nil {
		r.schemas = schema.NewBuiltinCatalog()
	}
	if r.roleMaps == nil {
		r.roleMaps = roles.NewBuiltinCatalog()
	}
	if r.builders == nil {
		r.builders = aicontext.NewRegistry()
	}
	if err := r.roleMaps.ValidateAgainst(r.schemas); err != nil {
		return nil, err
	}
	return r, nil
}

// RegisterSectionSchema validates and registers a section schema.
func (r *Registry) RegisterSectionSchema(s *schema.SectionSchema) error {
	return r.schemas.Register(s)
}

// SectionSchema returns the schema with the given id.
func (r *Registry) SectionSchema(id string) (*schema.SectionSchema, bool) {
	return r.schemas.Get(id)
}

// AllSectionSchemas returns every registered schema in registration order.
func (r *Registry) AllSectionSchemas() []*schema.SectionSchema {
	return r.schemas.All()
}

// RoleMap returns the role map for a schema id. Lookup is pure and
// synchronous; roles are never inferred from data.
func (r *Registry) RoleMap(schemaID string) (*roles.RoleMap, bool) {
	return r.roleMaps.Get(schemaID)
}

// RegisterRoleMap registers a role map after checking it against the
// schema catalog.
func (r *Registry) RegisterRoleMap(m *roles.RoleMap) error {
	probe := roles.NewCatalog()
	probe.Register(m)
	if err := probe.ValidateAgainst(r.schemas); err != nil {
		return err
	}
	r.roleMaps.Register(m)
	return nil
}

// RegisterItemBuilder registers an item-level context builder.
func (r *Registry) RegisterItemBuilder(id aicontext.BuilderID, fn aicontext.ItemBuilder) {
	r.builders.RegisterItemBuilder(id, fn)
}

// RegisterSectionBuilder registers a section-level context builder.
func (r *Registry) RegisterSectionBuilder(id aicontext.BuilderID, fn aicontext.SectionBuilder) {
	r.builders.RegisterSectionBuilder(id, fn)
}

// BuildContext invokes an item-level builder by id, returning "" when the
// id is not registered.
func (r *Registry) BuildContext(id aicontext.BuilderID, data types.ItemData, doc *types.Document) string {
	return r.builders.BuildItem(id, data, doc)
}

// Client returns the configured generation client.
func (r *Registry) Client() llm.Client {
	return r.client
}

// Profile returns the configured user profile.
func (r *Registry) Profile() Profile {
	return r.profile
}
