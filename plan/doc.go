// Package plan implements the recursive, order-sensitive transform that
// turns a [go.confplan.dev/vplan/value.Value] tree into an ordered list of
// output documents: the configuration value planner itself.
//
// # Design Principles
//
//  1. Fail closed on the unserializable. Undefined values, functions, and
//     (optionally) explicit nulls never reach planned output — see
//     [FilterResults]'s drop rules, evaluated in a fixed order.
//
//  2. One inline document, any number of standalone ones. Every
//     config-shaped value produces exactly one inline document (index 0 of
//     its result slice, possibly empty) plus zero or more standalone
//     documents promoted out of nested schema instances whose
//     settings.output_type is "standalone" or "ignore". See [HandleSchema].
//
//  3. Order is structure, not an optimization. Dict key order is
//     preserved end to end; nothing in this package sorts keys. Sorting, if
//     requested, is strictly an [go.confplan.dev/vplan/emit]-time concern
//     applied after planning.
//
//  4. The planner never mutates its input. Every result is a freshly built
//     value.Value (or a structurally-shared leaf reused by reference, per
//     the data model's invariant that sharing is fine as long as nothing
//     downstream mutates it).
package plan
