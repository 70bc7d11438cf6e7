package schemacheck

import "github.com/google/jsonschema-go/jsonschema"

// TrueSchema returns a schema that validates everything.
func TrueSchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

// FalseSchema returns a schema that validates nothing. [Validate] recognizes
// this exact shape and reports every value as a rejection, rather than
// trying to check it against every field that isn't there.
func FalseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
