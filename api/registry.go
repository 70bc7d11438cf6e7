package api

import (
	"sync"

	"go.confplan.dev/vplan/value"
)

// Handle is an opaque reference into a [Registry], standing in for the
// original runtime's raw ValueRef pointers.
type Handle uint64

// Registry is a safe handle table: it hands out [Handle] values for
// [value.Value]s and resolves them back, without ever exposing a pointer a
// caller could outlive or alias.
type Registry struct {
	mu     sync.Mutex
	next   Handle
	values map[Handle]value.Value
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{values: make(map[Handle]value.Value)}
}

// Alloc stores v and returns a fresh handle for it.
func (r *Registry) Alloc(v value.Value) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	h := r.next
	r.values[h] = v

	return h
}

// Get resolves h to its value, reporting whether h is live.
func (r *Registry) Get(h Handle) (value.Value, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.values[h]

	return v, ok
}

// Free releases h. Freeing an already-freed or unknown handle is a no-op.
func (r *Registry) Free(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, h)
}
