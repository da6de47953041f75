package dsl

import (
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/i18n"
)

// Option configures a Builder at construction.
type Option func(*Builder)

// WithRegistry gives the schema its own type table. The registry is cloned
// at build time so later global registrations do not disturb built schemas.
func WithRegistry(reg *sieve.TypeRegistry) Option {
	return func(b *Builder) { b.registry = reg }
}

// WithLimits overrides the resource caps enforced before field processing.
func WithLimits(opt sieve.ParseOpt) Option {
	return func(b *Builder) { b.opt = opt }
}

// Builder accumulates schema definition and freezes it with Build. The
// zero-configuration default is the strip unknown-key policy and the global
// type registry.
type Builder struct {
	fields     []*Field
	index      map[string]*FieldBuilder
	validators []validator
	unknown    sieve.UnknownPolicy
	registry   *sieve.TypeRegistry
	opt        sieve.ParseOpt
	deferred   []func(reg *sieve.TypeRegistry) error
	buildErrs  sieve.ErrorCollection
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		index:    map[string]*FieldBuilder{},
		unknown:  sieve.UnknownStrip,
		registry: sieve.DefaultRegistry(),
		opt:      sieve.DefaultParseOpt(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Field declares a field. Declaring the same name twice records a
// duplicate_field build error.
func (b *Builder) Field(name string) *FieldBuilder {
	if _, dup := b.index[name]; dup {
		params := map[string]any{"name": name}
		b.buildErrs.Push(sieve.Error{
			Code:    sieve.CodeDuplicateField,
			Message: i18n.T(sieve.CodeDuplicateField, params),
			Params:  params,
		})
		// Return a detached builder so chained calls stay safe.
		return &FieldBuilder{b: b, f: &Field{name: name, coerce: true}}
	}
	fb := &FieldBuilder{b: b, f: &Field{name: name, coerce: true}}
	b.fields = append(b.fields, fb.f)
	b.index[name] = fb
	return fb
}

// AddField installs an already-built Field (used by the schema algebra).
func (b *Builder) AddField(f *Field) *Builder {
	if _, dup := b.index[f.name]; dup {
		params := map[string]any{"name": f.name}
		b.buildErrs.Push(sieve.Error{
			Code:    sieve.CodeDuplicateField,
			Message: i18n.T(sieve.CodeDuplicateField, params),
			Params:  params,
		})
		return b
	}
	fb := &FieldBuilder{b: b, f: f}
	b.fields = append(b.fields, f)
	b.index[f.name] = fb
	return b
}

// Strict rejects unknown keys with unknown_key errors.
func (b *Builder) Strict() *Builder {
	b.unknown = sieve.UnknownStrict
	return b
}

// Strip drops unknown keys silently (the default).
func (b *Builder) Strip() *Builder {
	b.unknown = sieve.UnknownStrip
	return b
}

// Passthrough copies unknown keys verbatim into the output.
func (b *Builder) Passthrough() *Builder {
	b.unknown = sieve.UnknownPassthrough
	return b
}

// Validate registers a cross-field validator, run in declaration order once
// every field has validated cleanly.
func (b *Builder) Validate(name string, fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, validator{name: name, fn: fn})
	}
	return b
}

// ValidateCtx registers a context-aware cross-field validator.
func (b *Builder) ValidateCtx(name string, fn ValidatorCtxFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, validator{name: name, fnCtx: fn})
	}
	return b
}

// Build freezes the builder into an immutable Schema. Duplicate field names
// and unresolvable type names surface here.
func (b *Builder) Build() (*Schema, error) {
	reg := b.registry.Clone()
	for _, fn := range b.deferred {
		if err := fn(reg); err != nil {
			return nil, err
		}
	}
	if len(b.buildErrs) > 0 {
		return nil, b.buildErrs
	}
	fields := make([]*Field, len(b.fields))
	index := make(map[string]*Field, len(b.fields))
	for i, f := range b.fields {
		fields[i] = f
		index[f.name] = f
	}
	return &Schema{
		fields:     fields,
		index:      index,
		validators: append([]validator(nil), b.validators...),
		unknown:    b.unknown,
		registry:   reg,
		opt:        b.opt,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
