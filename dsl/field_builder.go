package dsl

import (
	"regexp"

	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/constraint"
	"github.com/sievekit/sieve/types"
)

// FieldBuilder configures one field. Methods return the receiver for
// chaining; Field, Validate, Build and friends delegate back to the parent
// Builder so field definitions read as one fluent block.
type FieldBuilder struct {
	b *Builder
	f *Field
}

// Of sets the field's type handler.
func (fb *FieldBuilder) Of(h sieve.TypeHandler) *FieldBuilder {
	fb.f.typ = h
	return fb
}

// Type sets the field's type by registry name. The name is resolved against
// the schema's type table at build time; unknown names fail the build.
func (fb *FieldBuilder) Type(name string) *FieldBuilder {
	fb.b.deferred = append(fb.b.deferred, func(reg *sieve.TypeRegistry) error {
		h, ok := reg.Lookup(name)
		if !ok {
			return sieve.NewArgumentError("unknown type %q for field %q", name, fb.f.name)
		}
		fb.f.typ = h
		return nil
	})
	return fb
}

// Optional permits the key to be missing.
func (fb *FieldBuilder) Optional() *FieldBuilder {
	fb.f.optional = true
	return fb
}

// Nullable permits an explicit null value.
func (fb *FieldBuilder) Nullable() *FieldBuilder {
	fb.f.nullable = true
	return fb
}

// NoCoerce disables coercion; the raw value must already have the declared
// type.
func (fb *FieldBuilder) NoCoerce() *FieldBuilder {
	fb.f.coerce = false
	return fb
}

// Default supplies a fixed default for a missing key. The value flows into
// preprocess as if the caller had supplied it.
func (fb *FieldBuilder) Default(v any) *FieldBuilder {
	fb.f.hasDefault = true
	fb.f.defaultValue = v
	fb.f.defaultFunc = nil
	return fb
}

// DefaultFunc supplies a thunk default, materialized per parse before
// preprocess. Thunks receive no arguments.
func (fb *FieldBuilder) DefaultFunc(fn func() any) *FieldBuilder {
	fb.f.hasDefault = true
	fb.f.defaultFunc = fn
	return fb
}

// Preprocess installs a context-free preprocess hook.
func (fb *FieldBuilder) Preprocess(fn PreprocessFunc) *FieldBuilder {
	fb.f.pre = fn
	fb.f.preCtx = nil
	return fb
}

// PreprocessCtx installs a context-aware preprocess hook.
func (fb *FieldBuilder) PreprocessCtx(fn PreprocessCtxFunc) *FieldBuilder {
	fb.f.preCtx = fn
	fb.f.pre = nil
	return fb
}

// Transform installs a context-free transform hook.
func (fb *FieldBuilder) Transform(fn TransformFunc) *FieldBuilder {
	fb.f.post = fn
	fb.f.postCtx = nil
	return fb
}

// TransformCtx installs a context-aware transform hook.
func (fb *FieldBuilder) TransformCtx(fn TransformCtxFunc) *FieldBuilder {
	fb.f.postCtx = fn
	fb.f.post = nil
	return fb
}

// When gates the field: it is validated only while pred holds over the full
// input.
func (fb *FieldBuilder) When(pred Predicate) *FieldBuilder {
	fb.f.when = pred
	return fb
}

// Unless gates the field with the negated predicate.
func (fb *FieldBuilder) Unless(pred Predicate) *FieldBuilder {
	fb.f.unless = pred
	return fb
}

// Refine appends a refinement with a static failure message.
func (fb *FieldBuilder) Refine(fn RefineFunc, message string) *FieldBuilder {
	fb.f.refinements = append(fb.f.refinements, refinement{fn: fn, message: message})
	return fb
}

// RefineCtx appends a context-aware refinement.
func (fb *FieldBuilder) RefineCtx(fn RefineCtxFunc, message string) *FieldBuilder {
	fb.f.refinements = append(fb.f.refinements, refinement{fnCtx: fn, message: message})
	return fb
}

// RefineMsg appends a refinement whose message is computed from the
// offending value.
func (fb *FieldBuilder) RefineMsg(fn RefineFunc, messageFn func(v any) string) *FieldBuilder {
	fb.f.refinements = append(fb.f.refinements, refinement{fn: fn, messageFn: messageFn})
	return fb
}

// Literal restricts the coerced value to an exact set, compared by identity.
func (fb *FieldBuilder) Literal(values ...any) *FieldBuilder {
	fb.f.literals = append(fb.f.literals, values...)
	return fb
}

// Union sets the field's type to a union tried in declared order.
func (fb *FieldBuilder) Union(members ...sieve.TypeHandler) *FieldBuilder {
	fb.f.typ = types.Union(members...)
	return fb
}

// Message overrides the generated message for type, literal and constraint
// failures on this field.
func (fb *FieldBuilder) Message(msg string) *FieldBuilder {
	fb.f.customMessage = msg
	return fb
}

// Constraint appends an arbitrary constraint.
func (fb *FieldBuilder) Constraint(c sieve.Constraint) *FieldBuilder {
	fb.f.constraints = append(fb.f.constraints, c)
	return fb
}

// Min appends the type-aware min constraint.
func (fb *FieldBuilder) Min(n float64) *FieldBuilder { return fb.Constraint(constraint.Min(n)) }

// Max appends the type-aware max constraint.
func (fb *FieldBuilder) Max(n float64) *FieldBuilder { return fb.Constraint(constraint.Max(n)) }

// Length appends the exact-length constraint.
func (fb *FieldBuilder) Length(exact int) *FieldBuilder {
	return fb.Constraint(constraint.Length(exact))
}

// LengthRange appends the inclusive length-range constraint.
func (fb *FieldBuilder) LengthRange(min, max int) *FieldBuilder {
	return fb.Constraint(constraint.LengthRange(min, max))
}

// Format appends a named format from the fixed catalog.
func (fb *FieldBuilder) Format(name string) *FieldBuilder {
	return fb.Constraint(constraint.Format(name))
}

// Pattern appends a format constraint over an arbitrary regexp.
func (fb *FieldBuilder) Pattern(re *regexp.Regexp) *FieldBuilder {
	return fb.Constraint(constraint.Pattern(re))
}

// Enum appends the membership constraint.
func (fb *FieldBuilder) Enum(values ...any) *FieldBuilder {
	return fb.Constraint(constraint.Enum(values...))
}

// ---- parent Builder delegation (fluent chaining) ----

// Field starts the next field on the parent builder.
func (fb *FieldBuilder) Field(name string) *FieldBuilder { return fb.b.Field(name) }

// Validate registers a cross-field validator on the parent builder.
func (fb *FieldBuilder) Validate(name string, fn ValidatorFunc) *Builder {
	return fb.b.Validate(name, fn)
}

// ValidateCtx registers a context-aware cross-field validator.
func (fb *FieldBuilder) ValidateCtx(name string, fn ValidatorCtxFunc) *Builder {
	return fb.b.ValidateCtx(name, fn)
}

// Strict sets the strict unknown-key policy on the parent builder.
func (fb *FieldBuilder) Strict() *Builder { return fb.b.Strict() }

// Strip sets the strip unknown-key policy on the parent builder.
func (fb *FieldBuilder) Strip() *Builder { return fb.b.Strip() }

// Passthrough sets the passthrough unknown-key policy on the parent builder.
func (fb *FieldBuilder) Passthrough() *Builder { return fb.b.Passthrough() }

// Build freezes the parent builder into a Schema.
func (fb *FieldBuilder) Build() (*Schema, error) { return fb.b.Build() }

// MustBuild is like Build but panics on error.
func (fb *FieldBuilder) MustBuild() *Schema { return fb.b.MustBuild() }
