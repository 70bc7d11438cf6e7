package emit

import (
	"strings"

	"github.com/goccy/go-yaml"

	"go.confplan.dev/vplan/value"
)

// EncodeYAML serializes v as a single YAML document, terminated by a
// trailing newline.
func EncodeYAML(v value.Value, opts YAMLOptions) (string, error) {
	goVal := toYAMLValue(v, opts)

	b, err := yaml.Marshal(goVal)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// JoinYAMLStream strips a single trailing newline from each document and
// joins them with [StreamSeparator].
func JoinYAMLStream(docs []string) string {
	trimmed := make([]string, len(docs))
	for i, d := range docs {
		trimmed[i] = strings.TrimSuffix(d, "\n")
	}

	return strings.Join(trimmed, StreamSeparator)
}

// toYAMLValue converts v to either a plain map (sorted-keys path, left to
// goccy/go-yaml's own map marshaling) or a [yaml.MapSlice] (insertion-order
// path), depending on opts.SortKeys.
func toYAMLValue(v value.Value, opts YAMLOptions) any {
	switch {
	case v.IsUndefined(), v.IsFunc(), v.IsNone():
		return nil
	case v.IsBool():
		return v.Bool()
	case v.IsInt():
		return v.Int()
	case v.IsFloat(), v.IsUnit():
		return v.Float()
	case v.IsStr():
		return v.Str()
	case v.IsList():
		items := v.List().Items()
		out := make([]any, 0, len(items))

		for _, item := range items {
			if opts.IgnoreNone && item.IsNone() {
				continue
			}

			out = append(out, toYAMLValue(item, opts))
		}

		return out
	case v.IsConfig():
		return dictToYAMLValue(configDict(v), opts)
	default:
		return nil
	}
}

func dictToYAMLValue(d *value.Dict, opts YAMLOptions) any {
	if opts.SortKeys {
		out := make(map[string]any, d.Len())

		d.Range(func(key string, val value.Value) bool {
			if shouldSkip(key, val, opts.IgnorePrivate, opts.IgnoreNone) {
				return true
			}

			out[key] = toYAMLValue(val, opts)

			return true
		})

		return out
	}

	out := make(yaml.MapSlice, 0, d.Len())

	d.Range(func(key string, val value.Value) bool {
		if shouldSkip(key, val, opts.IgnorePrivate, opts.IgnoreNone) {
			return true
		}

		out = append(out, yaml.MapItem{Key: key, Value: toYAMLValue(val, opts)})

		return true
	})

	return out
}

func shouldSkip(key string, val value.Value, ignorePrivate, ignoreNone bool) bool {
	if ignorePrivate && strings.HasPrefix(key, value.PrivatePrefix) {
		return true
	}

	return ignoreNone && val.IsNone()
}
