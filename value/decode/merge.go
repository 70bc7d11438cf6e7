package decode

import "go.confplan.dev/vplan/value"

// Merge folds multiple decoded roots into one, left to right: each
// successive root is merged into the accumulated result with
// [MergeTwo]. Merge returns [value.Undefined] for zero roots, and the sole
// root unchanged for one.
func Merge(roots ...value.Value) value.Value {
	if len(roots) == 0 {
		return value.Undefined()
	}

	result := roots[0]

	for _, next := range roots[1:] {
		result = MergeTwo(result, next)
	}

	return result
}

// MergeTwo merges b into a. When both are config-shaped, b's keys are
// folded into a's in a's insertion order followed by any keys b introduces:
// a key present in both that is itself config-shaped on both sides is
// merged recursively (union); any other conflicting key is overridden by
// b's value. When the shapes differ, b wins outright, matching override
// semantics for anything that isn't a config-shaped union.
func MergeTwo(a, b value.Value) value.Value {
	if !a.IsConfig() || !b.IsConfig() {
		return b
	}

	out := &value.Dict{}

	aDict := configDict(a)
	bDict := configDict(b)

	aDict.Range(func(key string, v value.Value) bool {
		out.Upsert(key, v)

		return true
	})

	bDict.Range(func(key string, v value.Value) bool {
		existing, ok := out.Get(key)
		if ok && existing.IsConfig() && v.IsConfig() {
			out.UpsertOp(key, MergeTwo(existing, v), value.MergeUnion)
		} else {
			out.UpsertOp(key, v, value.MergeOverride)
		}

		return true
	})

	return value.NewDict(out)
}

func configDict(v value.Value) *value.Dict {
	switch {
	case v.IsDict():
		return v.Dict()
	case v.IsSchema():
		return v.Schema().Config
	default:
		return nil
	}
}
