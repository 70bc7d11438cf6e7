// Package api exposes the planner's host-facing entry points: the four
// foreign-callable JSON functions (encode, decode, validate,
// dump-to-file) together with the handle table that stands in for the
// original pointer-marshalling bridge to a host runtime.
//
// # Design Principles
//
//  1. Handles, not pointers. [Registry] hands out opaque [Handle] values
//     backed by a mutex-guarded map instead of raw pointers: the same
//     contract (a caller holds an opaque reference it must eventually
//     release) without unsafe aliasing.
//  2. Argument shapes mirror the original calling convention: a positional
//     [value.Value] list and a keyword [value.Value] dict, so the error
//     messages and option-parsing logic read the same way the original
//     bridge's kwargs_to_opts does.
//  3. The dump-to-file defect is corrected, not reproduced. See
//     [JSONDumpToFile]: positional argument 0 is the data, argument 1 is
//     the filename, and a successful write reports success.
package api
