package schemacheck

import "github.com/google/jsonschema-go/jsonschema"

// mergeSchemas merges two schemas with union semantics: properties from
// both sides are kept, conflicting scalar types are widened, and
// additionalProperties fails open.
func mergeSchemas(a, b *jsonschema.Schema) *jsonschema.Schema {
	if a == nil {
		return b
	}

	if b == nil {
		return a
	}

	result := &jsonschema.Schema{}

	if merged := widenType(schemaType(a), schemaType(b)); merged != "" {
		result.Type = merged
	}

	result.Title = firstNonEmpty(a.Title, b.Title)
	result.Description = firstNonEmpty(a.Description, b.Description)

	if a.Properties != nil || b.Properties != nil {
		mergeProperties(result, a, b)
	}

	result.Required = intersectStrings(a.Required, b.Required)

	switch {
	case a.Items != nil && b.Items != nil:
		result.Items = mergeSchemas(a.Items, b.Items)
	case a.Items != nil:
		result.Items = a.Items
	default:
		result.Items = b.Items
	}

	return result
}

func schemaType(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}

	if len(s.Types) == 1 {
		return s.Types[0]
	}

	return ""
}

func intersectStrings(a, b []string) []string {
	if a == nil || b == nil {
		return nil
	}

	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}

	var result []string

	for _, s := range b {
		if set[s] {
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

func propertyKeys(s *jsonschema.Schema) []string {
	if s.Properties == nil {
		return nil
	}

	if len(s.PropertyOrder) > 0 {
		seen := make(map[string]bool, len(s.PropertyOrder))

		var keys []string

		for _, k := range s.PropertyOrder {
			if _, ok := s.Properties[k]; ok {
				keys = append(keys, k)
				seen[k] = true
			}
		}

		for k := range s.Properties {
			if !seen[k] {
				keys = append(keys, k)
			}
		}

		return keys
	}

	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}

	return keys
}

func mergeProperties(result, a, b *jsonschema.Schema) {
	result.Properties = make(map[string]*jsonschema.Schema)

	var order []string

	if a.Properties != nil {
		for _, k := range propertyKeys(a) {
			result.Properties[k] = a.Properties[k]
			order = append(order, k)
		}
	}

	if b.Properties != nil {
		for _, k := range propertyKeys(b) {
			if existing, ok := result.Properties[k]; ok {
				result.Properties[k] = mergeSchemas(existing, b.Properties[k])
			} else {
				result.Properties[k] = b.Properties[k]
				order = append(order, k)
			}
		}
	}

	result.PropertyOrder = order
}
