package sieve

// TypeHandler is the capability set of one value shape: a named coercion and
// type-check strategy. Handlers never see null; the field pipeline resolves
// missing and null values before consulting the handler.
type TypeHandler interface {
	// Name returns the registry identifier, e.g. "string" or "integer".
	Name() string
	// Coerce converts a raw value to the handler's typed form, or returns an
	// ErrorCollection describing the failure. Paths in returned errors are
	// relative to the value being coerced; callers rebase them.
	Coerce(ctx Context, v any) (any, error)
	// Check verifies v is already in typed form without converting. Used
	// when coercion is disabled on a field.
	Check(v any) error
}

// Constraint is a named bounded predicate applied to a coerced value.
// Constraints interpret their parameter type-aware: min/max compare length
// for strings and sequences and numeric value for numbers.
type Constraint interface {
	// Name returns the constraint kind, e.g. "min" or "format".
	Name() string
	// Check returns nil when v satisfies the constraint, or an Error with an
	// empty path; the field pipeline assigns the path.
	Check(v any) *Error
	// Describe returns the constraint's configuration for introspection.
	Describe() map[string]any
}

// UnknownPolicy controls how a schema treats input keys it does not declare.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys silently (default).
	UnknownStrict                           // Reject each unknown key with an error.
	UnknownPassthrough                      // Copy unknown keys verbatim into the output.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrict:
		return "strict"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "strip"
	}
}
