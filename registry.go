package sieve

import (
	"sort"
	"sync"
)

// TypeRegistry maps type names to handlers. Registrations happen at program
// start or under the writer lock; lookups take the read lock and are cheap.
// Callers that register a type for a test must deregister it on teardown.
type TypeRegistry struct {
	mu       sync.RWMutex
	handlers map[string]TypeHandler
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{handlers: map[string]TypeHandler{}}
}

// Register stores h under its name, replacing any previous handler. A
// handler with an empty name panics with an ArgumentError.
func (r *TypeRegistry) Register(h TypeHandler) {
	if h == nil || h.Name() == "" {
		panic(NewArgumentError("type handler must have a non-empty name"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Name()] = h
}

// Deregister removes the handler stored under name, if any.
func (r *TypeRegistry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, name)
}

// Lookup returns the handler under name and whether it exists.
func (r *TypeRegistry) Lookup(name string) (TypeHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered names in ascending order.
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent registry with the same handlers. Schemas use
// this to take per-schema type tables that later global registrations do
// not disturb.
func (r *TypeRegistry) Clone() *TypeRegistry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := NewTypeRegistry()
	for k, v := range r.handlers {
		out.handlers[k] = v
	}
	return out
}

var defaultRegistry = NewTypeRegistry()

// DefaultRegistry returns the process-wide registry. The sieve/types package
// preloads it with the built-in handlers.
func DefaultRegistry() *TypeRegistry { return defaultRegistry }
