// Package schemacheck infers a best-effort JSON Schema shape from planned
// [go.confplan.dev/vplan/value.Value] trees, and keeps a [Registry] of the
// shapes seen per schema type path so callers can union-merge instances
// discovered across many planning calls and, optionally, validate a later
// instance against what has been observed so far.
//
// # Design Principles
//
//  1. Best-effort, never authoritative. Inference widens rather than
//     rejects: two instances of the same type path with a differently typed
//     field produce a wider field type, not an error.
//
//  2. The registry is additive. Recording a shape never narrows a
//     previously recorded one; [Registry.Record] always merges with union
//     semantics.
//
//  3. Validation is opt-in and best-effort. [Validate] flags values that
//     plainly contradict the recorded shape; it is not a substitute for a
//     real schema compiler.
package schemacheck
