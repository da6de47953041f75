package dsl

import (
	"sort"

	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/i18n"
)

// Schema orchestrates fields for one mapping shape. Schemas are immutable
// after construction and safe to share across concurrent parses.
type Schema struct {
	fields     []*Field
	index      map[string]*Field
	validators []validator
	unknown    sieve.UnknownPolicy
	registry   *sieve.TypeRegistry
	opt        sieve.ParseOpt
}

// Registry returns the schema's type table.
func (s *Schema) Registry() *sieve.TypeRegistry { return s.registry }

// UnknownKeyPolicy returns the schema's unknown-key policy.
func (s *Schema) UnknownKeyPolicy() sieve.UnknownPolicy { return s.unknown }

// normalizeInput accepts the mapping shapes a parse understands. An
// *OrderedMap passes through unchanged (zero-copy); a plain map is wrapped
// with key-sorted order for determinism; nil means empty. Anything else is
// caller misuse.
func normalizeInput(v any) (*sieve.OrderedMap, bool) {
	switch t := v.(type) {
	case nil:
		return sieve.NewOrderedMap(), true
	case *sieve.OrderedMap:
		if t == nil {
			return sieve.NewOrderedMap(), true
		}
		return t, true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		in := sieve.NewOrderedMap()
		for _, k := range keys {
			in.Set(k, t[k])
		}
		return in, true
	default:
		return nil, false
	}
}

// SafeParse validates input against the schema and returns a Result. It
// never raises for validation outcomes; non-mapping input panics with an
// ArgumentError (caller misuse, not a data error).
func (s *Schema) SafeParse(ctx sieve.Context, input any) sieve.Result {
	in, ok := normalizeInput(input)
	if !ok {
		panic(sieve.NewArgumentError("input must be a mapping, got %T", input))
	}
	if errs := sieve.CheckLimits(in, s.opt); len(errs) > 0 {
		return sieve.Failure(errs)
	}
	out, errs := s.parseAt(ctx, sieve.Path{}, in)
	if len(errs) > 0 {
		return sieve.Failure(errs)
	}
	return sieve.Success(out)
}

// Parse is SafeParse with failure converted to a *ValidationError.
func (s *Schema) Parse(ctx sieve.Context, input any) (*sieve.OrderedMap, error) {
	r := s.SafeParse(ctx, input)
	if r.IsFailure() {
		return nil, r.Err()
	}
	return r.Data(), nil
}

// MustParse is Parse panicking on failure.
func (s *Schema) MustParse(ctx sieve.Context, input any) *sieve.OrderedMap {
	out, err := s.Parse(ctx, input)
	if err != nil {
		panic(err)
	}
	return out
}

// parseAt runs the field pipelines and cross-field validators with error
// paths qualified under prefix. Every field runs to completion regardless of
// other fields' outcomes so one parse surfaces all detectable errors.
func (s *Schema) parseAt(ctx sieve.Context, prefix sieve.Path, in *sieve.OrderedMap) (*sieve.OrderedMap, sieve.ErrorCollection) {
	out := sieve.NewOrderedMap()
	var errs sieve.ErrorCollection

	for _, f := range s.fields {
		raw, present := in.Get(f.name)
		v, emit, ferrs := f.run(in, raw, present, ctx, prefix)
		if len(ferrs) > 0 {
			errs.Extend(ferrs)
			continue
		}
		if emit {
			out.Set(f.name, v)
		}
	}

	errs.Extend(s.collectUnknown(prefix, in, out))

	if len(errs) == 0 && len(s.validators) > 0 {
		for _, val := range s.validators {
			ve := &ValidatorErrors{prefix: prefix}
			if val.fnCtx != nil {
				val.fnCtx(out, ctx, ve)
			} else {
				val.fn(out, ve)
			}
			errs.Extend(ve.errs)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// collectUnknown applies the unknown-key policy. Passthrough values are
// copied verbatim after field processing, preserving input order.
func (s *Schema) collectUnknown(prefix sieve.Path, in, out *sieve.OrderedMap) sieve.ErrorCollection {
	var errs sieve.ErrorCollection
	in.Range(func(k string, v any) bool {
		if _, known := s.index[k]; known {
			return true
		}
		switch s.unknown {
		case sieve.UnknownStrict:
			errs.Push(sieve.Error{
				Path:    prefix.Child(k),
				Code:    sieve.CodeUnknownKey,
				Message: i18n.T(sieve.CodeUnknownKey, nil),
			})
		case sieve.UnknownPassthrough:
			out.Set(k, v)
		}
		return true
	})
	return errs
}
