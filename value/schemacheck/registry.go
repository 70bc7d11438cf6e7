package schemacheck

import (
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// Registry accumulates, per schema type path, the union of every shape
// observed for that type across planning calls. It is safe for concurrent
// use.
type Registry struct {
	mu     sync.Mutex
	shapes map[string]*jsonschema.Schema
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]*jsonschema.Schema)}
}

// Record merges shape into the shape recorded under typePath with union
// semantics. An empty typePath or a nil shape records nothing; Record does
// no inference of its own. Callers typically pass the instance's own
// declared [*jsonschema.Schema] (from value.Schema.Shape) if one is
// available, and otherwise the shape [Infer] derives from the instance.
func (r *Registry) Record(typePath string, shape *jsonschema.Schema) {
	if typePath == "" || shape == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.shapes[typePath] = mergeSchemas(r.shapes[typePath], shape)
}

// Shape returns the accumulated shape for typePath, or nil if nothing has
// been recorded under it.
func (r *Registry) Shape(typePath string) *jsonschema.Schema {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.shapes[typePath]
}

// TypePaths returns every type path recorded so far, in no particular
// order.
func (r *Registry) TypePaths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, 0, len(r.shapes))
	for p := range r.shapes {
		paths = append(paths, p)
	}

	return paths
}
