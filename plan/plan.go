package plan

import (
	"go.confplan.dev/vplan/emit"
	"go.confplan.dev/vplan/value"
)

// Plan is the adapter entry point: it plans v and returns the JSON and YAML
// renderings of the result.
//
// If v is list-or-config, FilterResults partitions it into an ordered
// sequence of documents; the YAML half joins each document's YAML (each
// stripped of its single trailing newline) with [emit.StreamSeparator], and
// the JSON half packs every document into a single array. Otherwise v is
// serialized directly, with no document partitioning.
func Plan(ctx *Context, v value.Value, opts Options) (jsonString, yamlString string, err error) {
	if !v.IsListOrConfig() {
		jsonString, err = emit.EncodeJSON(v, emit.JSONOptions{SortKeys: opts.SortKeys})
		if err != nil {
			return "", "", err
		}

		yamlString, err = emit.EncodeYAML(v, emit.YAMLOptions{SortKeys: opts.SortKeys})
		if err != nil {
			return "", "", err
		}

		return jsonString, yamlString, nil
	}

	results := FilterResults(ctx, v, opts)

	docs := make([]string, 0, len(results))

	for _, r := range results {
		text, encErr := emit.EncodeYAML(r, emit.YAMLOptions{SortKeys: opts.SortKeys})
		if encErr != nil {
			return "", "", encErr
		}

		docs = append(docs, text)
	}

	yamlString = emit.JoinYAMLStream(docs)

	jsonString, err = emit.EncodeJSONDocuments(results, emit.JSONOptions{SortKeys: opts.SortKeys})
	if err != nil {
		return "", "", err
	}

	return jsonString, yamlString, nil
}
