// Package value implements the polymorphic runtime value tree consumed by
// the [go.confplan.dev/vplan] planner: a tagged variant ([Value]) with
// scalar, list, ordered-dict, and typed-schema-instance cases, plus the
// predicates and accessors the planner dispatches on.
//
// # Design Principles
//
//  1. Dispatch by case, not by interface. [Value] is a single struct with a
//     [Kind] tag; every operation switches on Kind rather than relying on
//     dynamic method lookup, so a reviewer can see every case a function
//     handles in one place.
//
//  2. Insertion order is load-bearing. [Dict] preserves the order keys were
//     first inserted in, and iteration, path lookup, and equality all
//     respect it. Nothing in this package re-sorts a Dict's keys; sorting
//     is an emission-time concern (see [go.confplan.dev/vplan/emit]).
//
//  3. Values are immutable from the planner's point of view. Composite
//     cases ([List], [Dict], [Schema]) are held by pointer so multiple
//     Values can share structure cheaply, but every function in this
//     package that returns a transformed Value builds a fresh one rather
//     than mutating its input in place.
//
//  4. Config-shaped values are uniform. [Dict] and [Schema] both project to
//     an ordered key-to-Value mapping via [Value.HasKey]/[Value.GetByKey];
//     callers that only need that projection never need to know which case
//     they're holding.
package value
