// Package decode turns YAML and JSON input into
// [go.confplan.dev/vplan/value.Value] trees, preserving the insertion order
// neither encoding/json's map decoding nor a naive YAML-to-map-any decode
// guarantees, and folds multiple decoded roots together with the same
// union-merge semantics the planner's legacy wrapper describes.
//
// # Design Principles
//
//  1. Order survives decode, not just encode. YAML input is walked as an
//     AST ([github.com/goccy/go-yaml/ast]) rather than unmarshaled into a
//     Go map; JSON input is walked token by token
//     ([encoding/json.Decoder.Token]) rather than unmarshaled into
//     map[string]any. Both avoid Go's unordered map representation.
//  2. YAML merge keys are real merges. A "<<" key in a mapping node folds
//     the referenced mapping's properties into the current dict wherever
//     they are not already present, matching standard YAML merge-key
//     semantics.
//  3. Merging multiple roots never panics on a type mismatch: unless both
//     sides are config-shaped, the later input wins outright.
package decode
