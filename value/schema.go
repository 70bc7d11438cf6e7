package value

import "github.com/google/jsonschema-go/jsonschema"

// Well-known keys under a schema instance's Config payload that carry the
// schema's own settings, per the data model: a schema's settings live at
// key path settings.output_type and settings.schema_type inside the
// schema's payload, looked up by path rather than by identity.
const (
	SettingsKey    = "settings"
	OutputTypeKey  = "output_type"
	SchemaTypeKey  = "schema_type"
	TypeMetaAttr   = "_type"
	PrivatePrefix  = "_"
	ListDictTmpKey = "$"
)

// Output type values recognized at the settings.output_type path.
const (
	OutputStandalone = "standalone"
	OutputIgnore     = "ignore"
)

// Schema is a typed configuration instance: a named schema type together
// with its Config payload. Config is itself an ordered dict, so a Schema
// projects to the same key-to-Value mapping a plain Dict does.
type Schema struct {
	Name        string
	PackagePath string
	Config      *Dict
	ConfigMeta  *Dict

	// Shape is an optional best-effort declared shape for Config, used only
	// by value/schemacheck; the planner never reads it.
	Shape *jsonschema.Schema
}

// Has reports whether key is present in the schema's Config payload.
func (s *Schema) Has(key string) bool {
	if s == nil {
		return false
	}

	return s.Config.Has(key)
}

// Get returns the value stored at key in the schema's Config payload.
func (s *Schema) Get(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}

	return s.Config.Get(key)
}
