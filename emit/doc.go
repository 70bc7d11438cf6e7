// Package emit serializes planned [go.confplan.dev/vplan/value.Value] trees
// to JSON and YAML. It holds no state, never alters the values it is given,
// and never re-derives the planner's document partitioning — it only joins
// already-planned documents per [JoinYAMLStream] and [EncodeJSONDocuments].
//
// # Design Principles
//
//  1. Two key-order regimes, chosen per call. Alphabetical sorting
//     (SortKeys) goes through Go's native map marshaling, which sorts map
//     keys for both encoding/json and goccy/go-yaml. Insertion order goes
//     through an explicit ordered writer (JSON) or [yaml.MapSlice] (YAML),
//     since neither encoder's map path preserves insertion order.
//  2. IgnorePrivate/IgnoreNone are encode-time filters independent of the
//     planner's own drop rules — they exist so the foreign JSON entry
//     points can filter arbitrary decoded values that never went through
//     [go.confplan.dev/vplan/plan].
package emit
