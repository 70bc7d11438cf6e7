package schemacheck

import (
	"slices"

	"github.com/google/jsonschema-go/jsonschema"

	"go.confplan.dev/vplan/value"
)

// JSON Schema type constants.
const (
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
)

// Infer returns the JSON Schema shape of v. Undefined, none, and func
// values infer to an unconstrained ("true") schema, since none of them
// survive planning and so impose no shape on the output.
func Infer(v value.Value) *jsonschema.Schema {
	switch {
	case v.IsBool():
		return &jsonschema.Schema{Type: typeBoolean}
	case v.IsInt():
		return &jsonschema.Schema{Type: typeInteger}
	case v.IsFloat(), v.IsUnit():
		return &jsonschema.Schema{Type: typeNumber}
	case v.IsStr():
		return &jsonschema.Schema{Type: typeString}
	case v.IsList():
		return inferList(v)
	case v.IsConfig():
		return inferConfig(v)
	default:
		return TrueSchema()
	}
}

func inferList(v value.Value) *jsonschema.Schema {
	items := v.List().Items()

	s := &jsonschema.Schema{Type: typeArray}
	if len(items) == 0 {
		return s
	}

	itemSchema := Infer(items[0])
	for _, item := range items[1:] {
		itemSchema = mergeSchemas(itemSchema, Infer(item))
	}

	s.Items = itemSchema

	return s
}

func inferConfig(v value.Value) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: typeObject}

	var dict *value.Dict

	switch {
	case v.IsDict():
		dict = v.Dict()
	case v.IsSchema():
		dict = v.Schema().Config
	}

	if dict == nil || dict.Len() == 0 {
		return s
	}

	s.Properties = make(map[string]*jsonschema.Schema, dict.Len())
	s.PropertyOrder = append([]string(nil), dict.Keys()...)

	dict.Range(func(key string, val value.Value) bool {
		s.Properties[key] = Infer(val)

		return true
	})

	return s
}

// widenType returns the widened type when merging two type strings. Returns
// empty string (no constraint) for incompatible types.
func widenType(a, b string) string {
	if a == b {
		return a
	}

	if a == "" {
		return b
	}

	if b == "" {
		return a
	}

	if (a == typeInteger && b == typeNumber) || (a == typeNumber && b == typeInteger) {
		return typeNumber
	}

	return ""
}

func isObjectType(s *jsonschema.Schema) bool {
	return s.Type == typeObject || slices.Contains(s.Types, typeObject)
}
