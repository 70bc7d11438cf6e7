package schemacheck

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"go.confplan.dev/vplan/value"
)

// Validate reports the ways v plainly contradicts shape: a property typed
// one way in shape but present with an incompatible type in v, or an object
// required property entirely missing. It is best-effort and not a
// substitute for a compiled schema validator: unknown properties, nested
// array element shapes, and string/number constraints (format, pattern,
// minimum, etc.) are not checked.
func Validate(v value.Value, shape *jsonschema.Schema) []string {
	if shape == nil {
		return nil
	}

	return validate(v, shape, "$")
}

func validate(v value.Value, shape *jsonschema.Schema, path string) []string {
	if isFalseSchema(shape) {
		return []string{fmt.Sprintf("%s: schema accepts no value", path)}
	}

	var problems []string

	wantType := schemaType(shape)
	if wantType != "" {
		got := Infer(v)
		if gotType := schemaType(got); gotType != "" && widenType(wantType, gotType) != wantType && gotType != wantType {
			problems = append(problems, fmt.Sprintf("%s: want type %q, got %q", path, wantType, gotType))
		}
	}

	if !isObjectType(shape) || !v.IsConfig() {
		return problems
	}

	for _, name := range shape.Required {
		if !v.HasKey(name) {
			problems = append(problems, fmt.Sprintf("%s: missing required property %q", path, name))
		}
	}

	for key, propShape := range shape.Properties {
		if !v.HasKey(key) {
			continue
		}

		child, ok := v.GetByKey(key)
		if !ok {
			continue
		}

		problems = append(problems, validate(child, propShape, path+"."+key)...)
	}

	return problems
}

// isFalseSchema reports whether shape is the false schema returned by
// [FalseSchema]: a Not of the unconstrained schema, which by definition
// nothing satisfies.
func isFalseSchema(shape *jsonschema.Schema) bool {
	return shape.Not != nil && schemaType(shape.Not) == "" &&
		shape.Not.Properties == nil && shape.Not.Items == nil
}
