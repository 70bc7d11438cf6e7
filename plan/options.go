package plan

import "go.confplan.dev/vplan/value/schemacheck"

// Options configures a single planning call.
type Options struct {
	// SortKeys requests alphabetically sorted keys at emission time.
	SortKeys bool
	// IncludeSchemaTypePath requests a "_type" attribute be injected into
	// every planned schema instance, holding the type path suffix returned
	// by valueTypePath.
	IncludeSchemaTypePath bool

	// SchemaRegistry, when non-nil, records each dispatched schema
	// instance's declared shape, or the shape schemacheck.Infer derives from
	// it when none is declared, under its type path for later introspection.
	// Dicts dispatched only because they carry a settings key are not
	// recorded. Purely
	// observational: it never changes FilterResults's return value.
	SchemaRegistry *schemacheck.Registry
}

// Config holds the global flags a [Context] exposes to the planner.
type Config struct {
	// DisableNone elides explicit null values from planned output when set.
	DisableNone bool
	// DisableEmptyList suppresses emitting an empty list as [] when set.
	DisableEmptyList bool
}

// Context is the borrowed, read-only planning context. The planner never
// mutates Cfg.
type Context struct {
	Cfg Config
}

// NewContext returns a Context with the given configuration.
func NewContext(cfg Config) *Context {
	return &Context{Cfg: cfg}
}
