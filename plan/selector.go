package plan

import (
	"fmt"

	"go.confplan.dev/vplan/value"
)

// FilterByPath projects v down to the value(s) named by pathSelector, a set
// of dotted key paths evaluated against v with [value.Value.GetByPath].
//
// An empty pathSelector, or a non-config v, returns v unchanged. A single
// path returns the value found at that path. Multiple paths return a list
// of the values found at each path, in the order given. Any path that
// resolves to nothing is an error.
func FilterByPath(v value.Value, pathSelector []string) (value.Value, error) {
	if !v.IsConfig() || len(pathSelector) == 0 {
		return v, nil
	}

	if len(pathSelector) == 1 {
		return resolvePath(v, pathSelector[0])
	}

	out := &value.List{}

	for _, path := range pathSelector {
		resolved, err := resolvePath(v, path)
		if err != nil {
			return value.Value{}, err
		}

		out.Append(resolved)
	}

	return value.NewList(out), nil
}

func resolvePath(v value.Value, path string) (value.Value, error) {
	resolved, ok := v.GetByPath(path)
	if !ok {
		return value.Value{}, fmt.Errorf("invalid path select operand %s, value not found", path)
	}

	return resolved, nil
}
