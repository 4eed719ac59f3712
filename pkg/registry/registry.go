package registry

import (
	"sort"
	"sync"
)

// Registry tracks the block types whose fields are searchable. It implements
// ports.TypeSource and serves as the extension point for plugins that add
// their own text-capable blocks.
type Registry struct {
	mu    sync.RWMutex
	types map[string]struct{}
}

// New creates a registry containing exactly the given types.
func New(types ...string) *Registry {
	r := &Registry{types: make(map[string]struct{}, len(types))}
	r.Register(types...)
	return r
}

// Default returns a registry seeded with the text-capable core types.
func Default() *Registry {
	return New(
		"paragraph",
		"heading",
		"list",
		"list-item",
		"quote",
		"pull-quote",
		"details",
		"table",
		"code",
		"preformatted",
		"verse",
	)
}

// Register adds types to the allowed set. Re-registering is a no-op.
func (r *Registry) Register(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		if n == "" {
			continue
		}
		r.types[n] = struct{}{}
	}
}

// Remove drops types from the allowed set.
func (r *Registry) Remove(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		delete(r.types, n)
	}
}

// Allows reports whether the given type is searchable.
func (r *Registry) Allows(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// AllowedTypes returns the allowed type names, sorted for determinism.
func (r *Registry) AllowedTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.types))
	for n := range r.types {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
