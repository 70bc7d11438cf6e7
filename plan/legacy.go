package plan

import (
	"strings"

	"go.confplan.dev/vplan/emit"
	"go.confplan.dev/vplan/value"
)

// PlanToJSONString runs the simplified per-value filter and JSON-encodes
// the result, returning "" when the filtered root is planned-empty.
func PlanToJSONString(ctx *Context, v value.Value, opts Options) (string, error) {
	filtered := simplifiedFilter(ctx, v)
	if filtered.IsPlannedEmpty() {
		return "", nil
	}

	return emit.EncodeJSON(filtered, emit.JSONOptions{SortKeys: opts.SortKeys})
}

// PlanToYAMLStringWithDelimiter runs FilterResults with default options and
// joins the resulting per-document YAML with [emit.StreamSeparator].
func PlanToYAMLStringWithDelimiter(ctx *Context, v value.Value) (string, error) {
	results := FilterResults(ctx, v, Options{})

	docs := make([]string, 0, len(results))

	for _, r := range results {
		text, err := emit.EncodeYAML(r, emit.YAMLOptions{})
		if err != nil {
			return "", err
		}

		docs = append(docs, text)
	}

	return emit.JoinYAMLStream(docs), nil
}

// simplifiedFilter is a structural deep copy that drops Undefined and Func
// values, drops None when ctx.Cfg.DisableNone is set, and degrades Unit
// values to their float magnitude. It performs no schema promotion and no
// private-key filtering: only the legacy wrappers call it.
func simplifiedFilter(ctx *Context, v value.Value) value.Value {
	switch {
	case v.IsUndefined(), v.IsFunc():
		return value.Undefined()
	case v.IsNone():
		if ctx.Cfg.DisableNone {
			return value.Undefined()
		}

		return value.None()
	case v.IsUnit():
		return value.Float(v.Float())
	case v.IsList():
		out := &value.List{}

		for _, item := range v.List().Items() {
			f := simplifiedFilter(ctx, item)
			if f.IsUndefined() {
				continue
			}

			out.Append(f)
		}

		return value.NewList(out)
	case v.IsDict():
		return value.NewDict(simplifiedFilterDict(ctx, v.Dict()))
	case v.IsSchema():
		s := v.Schema()

		return value.NewSchema(&value.Schema{
			Name:        s.Name,
			PackagePath: s.PackagePath,
			Config:      simplifiedFilterDict(ctx, s.Config),
			ConfigMeta:  value.NewDict(s.ConfigMeta).DeepCopy().Dict(),
			Shape:       s.Shape,
		})
	default:
		return v.DeepCopy()
	}
}

func simplifiedFilterDict(ctx *Context, d *value.Dict) *value.Dict {
	out := &value.Dict{}

	d.Range(func(key string, val value.Value) bool {
		f := simplifiedFilter(ctx, val)
		if f.IsUndefined() && (val.IsUndefined() || val.IsFunc() || (val.IsNone() && ctx.Cfg.DisableNone)) {
			return true
		}

		out.UpsertOp(key, f, unionMergeOp(strings.HasPrefix(key, value.PrivatePrefix)))

		return true
	})

	return out
}

// unionMergeOp returns the merge operation the simplified filter records
// when re-inserting a filtered key: private attributes still override,
// everything else carries a union merge operation forward per the legacy
// wrapper's "re-inserted via a union merge operation" contract.
func unionMergeOp(private bool) value.MergeOp {
	if private {
		return value.MergeOverride
	}

	return value.MergeUnion
}
