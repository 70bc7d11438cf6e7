package plan

import (
	"strings"

	"go.confplan.dev/vplan/value"
	"go.confplan.dev/vplan/value/schemacheck"
)

// configDict returns the ordered dict backing a config-shaped value,
// uniformly for Dict and Schema.
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

// isSchemaDispatched reports whether v should be routed through
// [HandleSchema]: it is either a schema instance itself, or a dict that
// carries a "settings" key (an inline value imitating a schema's settings
// shape).
func isSchemaDispatched(v value.Value) bool {
	return v.IsSchema() || v.HasKey(value.SettingsKey)
}

// FilterResults is the planner's primitive: it turns v into an ordered
// sequence of output documents under opts and the flags in ctx.Cfg.
//
// Semantics by shape of v:
//
//   - List: the concatenation of FilterResults over each element, in order.
//   - Config-shaped (Dict or Schema): results[0] accumulates the inline
//     projection; results[1:] accumulate standalone documents discovered
//     during traversal, per the drop rules and schema dispatch documented
//     inline below.
//   - Anything else (scalars, none, undefined, func): an empty sequence.
func FilterResults(ctx *Context, v value.Value, opts Options) []value.Value {
	switch {
	case v.IsList():
		var results []value.Value
		for _, item := range v.List().Items() {
			results = append(results, FilterResults(ctx, item, opts)...)
		}

		return results

	case v.IsConfig():
		return filterConfig(ctx, v, opts)

	default:
		return nil
	}
}

func filterConfig(ctx *Context, v value.Value, opts Options) []value.Value {
	r0 := &value.Dict{}
	results := []value.Value{value.NewDict(r0)}

	dict := configDict(v)

	dict.Range(func(key string, val value.Value) bool {
		// Drop rules, evaluated in this exact order.
		if val.IsNone() && ctx.Cfg.DisableNone {
			return true
		}

		if strings.HasPrefix(key, value.PrivatePrefix) || val.IsUndefined() || val.IsFunc() {
			return true
		}

		switch {
		case isSchemaDispatched(val):
			filtered, standalone := HandleSchema(ctx, val, opts)
			if len(filtered) == 0 {
				return true
			}

			if standalone {
				results = append(results, filtered...)
			} else {
				results[0].Dict().Upsert(key, filtered[0])
				if len(filtered) > 1 {
					results = append(results, filtered[1:]...)
				}
			}

		case val.IsDict():
			filtered := FilterResults(ctx, val, opts)
			if len(filtered) > 0 {
				results[0].Dict().Upsert(key, filtered[0])
			}

			if len(filtered) > 1 {
				results = append(results, filtered[1:]...)
			}

		case val.IsList():
			results = filterListKey(ctx, opts, results, key, val)

		default:
			results[0].Dict().Upsert(key, val)
		}

		return true
	})

	kept := results[:0:0]

	for i, r := range results {
		if i == 0 || !r.IsPlannedEmpty() {
			kept = append(kept, r)
		}
	}

	return kept
}

// filterListKey implements case (b).4: planning a list-valued dict entry.
func filterListKey(ctx *Context, opts Options, results []value.Value, key string, listVal value.Value) []value.Value {
	var (
		filteredList      []value.Value
		standaloneList    []value.Value
		ignoreSchemaCnt   int
		derivedStandalone []value.Value
	)

	items := listVal.List().Items()

	for _, item := range items {
		switch {
		case isSchemaDispatched(item):
			filtered, standalone := HandleSchema(ctx, item, opts)
			switch {
			case len(filtered) == 0:
				ignoreSchemaCnt++
			case standalone:
				standaloneList = append(standaloneList, filtered...)
			default:
				filteredList = append(filteredList, filtered...)
			}

		case item.IsDict():
			filteredList = append(filteredList, FilterResults(ctx, item, opts)...)

		case item.IsNone() && ctx.Cfg.DisableNone:
			// dropped

		case !item.IsUndefined():
			wrapper := &value.Dict{}
			wrapper.Upsert(value.ListDictTmpKey, item)

			filtered := FilterResults(ctx, value.NewDict(wrapper), opts)
			if len(filtered) > 0 {
				if v, ok := filtered[0].Dict().Get(value.ListDictTmpKey); ok {
					if v.IsUnit() {
						v = value.Float(v.Float())
					}

					filteredList = append(filteredList, v)
				}
			}

			if len(filtered) > 1 {
				derivedStandalone = append(derivedStandalone, filtered[1:]...)
			}
		}
	}

	results = append(results, derivedStandalone...)

	schemaInListCount := ignoreSchemaCnt + len(standaloneList)

	if len(items) == 0 && !ctx.Cfg.DisableEmptyList {
		results[0].Dict().Upsert(key, value.NewList(&value.List{}))
	}

	if schemaInListCount < len(items) {
		out := &value.List{}
		for _, v := range filteredList {
			out.Append(v)
		}

		results[0].Dict().Upsert(key, value.NewList(out))
	}

	results = append(results, standaloneList...)

	return results
}

// HandleSchema dispatches a schema-shaped value S: it plans S's own payload,
// optionally injects a "_type" attribute, and decides whether the result is
// inlined at its key or promoted to a standalone top-level document based on
// S's settings.output_type.
func HandleSchema(ctx *Context, s value.Value, opts Options) (filtered []value.Value, standalone bool) {
	filtered = FilterResults(ctx, s, opts)
	if len(filtered) == 0 {
		return filtered, false
	}

	typePath := valueTypePath(s)

	if opts.IncludeSchemaTypePath && filtered[0].IsConfig() {
		filtered[0].Dict().Upsert(value.TypeMetaAttr, value.Str(typePath))
	}

	if opts.SchemaRegistry != nil && s.IsSchema() {
		shape := s.Schema().Shape
		if shape == nil {
			shape = schemacheck.Infer(s)
		}

		opts.SchemaRegistry.Record(typePath, shape)
	}

	outputType, ok := s.GetByPath(value.SettingsKey + "." + value.OutputTypeKey)
	if ok && outputType.IsStr() && outputType.Str() == value.OutputIgnore {
		return filtered[1:], true
	}

	standalone = ok && outputType.IsStr() && outputType.Str() == value.OutputStandalone

	return filtered, standalone
}

// valueTypePath returns the type path of v: the suffix after the final '.'
// of settings.schema_type when that path resolves to a string, or v's
// TypeStr otherwise.
func valueTypePath(v value.Value) string {
	typePath, ok := v.GetByPath(value.SettingsKey + "." + value.SchemaTypeKey)
	if !ok || !typePath.IsStr() {
		return v.TypeStr()
	}

	parts := strings.Split(typePath.Str(), ".")

	return parts[len(parts)-1]
}
