package value

import "strings"

// HasKey reports whether v is config-shaped and contains key.
func (v Value) HasKey(key string) bool {
	switch v.kind {
	case KindDict:
		return v.dict.Has(key)
	case KindSchema:
		return v.schema.Has(key)
	}

	return false
}

// GetByKey returns the value stored at key in a config-shaped v, or false
// if v is not config-shaped or key is absent.
func (v Value) GetByKey(key string) (Value, bool) {
	switch v.kind {
	case KindDict:
		return v.dict.Get(key)
	case KindSchema:
		return v.schema.Get(key)
	}

	return Value{}, false
}

// GetByPath performs a dotted-path lookup over nested config-shaped values.
// It is absent when any segment is missing or a non-config value is
// traversed before the path is exhausted.
func (v Value) GetByPath(path string) (Value, bool) {
	if path == "" {
		return v, true
	}

	cur := v

	for _, seg := range strings.Split(path, ".") {
		if !cur.IsConfig() {
			return Value{}, false
		}

		next, ok := cur.GetByKey(seg)
		if !ok {
			return Value{}, false
		}

		cur = next
	}

	return cur, true
}
