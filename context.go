package sieve

// Context is an immutable request-scoped key/value map threaded through
// hooks, refinements, conditional predicates and cross-field validators.
// Contexts are constructed per parse and are safe to share.
type Context struct {
	values map[string]any
}

// EmptyContext is the shared empty context.
var EmptyContext = Context{}

// NewContext builds a Context from kv. The map is copied; later mutation of
// kv does not affect the context.
func NewContext(kv map[string]any) Context {
	if len(kv) == 0 {
		return EmptyContext
	}
	values := make(map[string]any, len(kv))
	for k, v := range kv {
		values[k] = v
	}
	return Context{values: values}
}

// Get returns the value for key and whether it was present.
func (c Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Fetch returns the value for key, or def when absent.
func (c Context) Fetch(key string, def any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return def
}

// Len returns the number of entries.
func (c Context) Len() int { return len(c.values) }

// AsContext coerces v into a Context. A Context passes through, a raw
// map[string]any is wrapped implicitly, and nil yields the empty context.
// Any other type panics with an ArgumentError.
func AsContext(v any) Context {
	switch t := v.(type) {
	case nil:
		return EmptyContext
	case Context:
		return t
	case map[string]any:
		return NewContext(t)
	default:
		panic(NewArgumentError("context must be a sieve.Context or map[string]any, got %T", v))
	}
}
