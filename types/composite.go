package types

import (
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/i18n"
	js "github.com/sievekit/sieve/jsonschema"
)

// Union returns a handler that tries each member in declared order; the
// first successful coercion wins. Put more specific members first. When no
// member accepts, the failure carries union_type_error.
func Union(members ...sieve.TypeHandler) sieve.TypeHandler {
	if len(members) == 0 {
		panic(sieve.NewArgumentError("union requires at least one member type"))
	}
	return unionHandler{members: members}
}

type unionHandler struct{ members []sieve.TypeHandler }

func (unionHandler) Name() string { return "union" }

// Members exposes the member handlers for introspection.
func (h unionHandler) Members() []sieve.TypeHandler {
	return append([]sieve.TypeHandler(nil), h.members...)
}

func (h unionHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	for _, m := range h.members {
		if coerced, err := m.Coerce(ctx, v); err == nil {
			return coerced, nil
		}
	}
	names := make([]string, 0, len(h.members))
	for _, m := range h.members {
		names = append(names, m.Name())
	}
	params := map[string]any{"types": names}
	return nil, sieve.ErrorCollection{sieve.Error{
		Code:    sieve.CodeUnionTypeError,
		Message: i18n.T(sieve.CodeUnionTypeError, params),
		Params:  params,
	}}
}

func (h unionHandler) Check(v any) error {
	for _, m := range h.members {
		if m.Check(v) == nil {
			return nil
		}
	}
	params := map[string]any{}
	return sieve.ErrorCollection{sieve.Error{
		Code:    sieve.CodeUnionTypeError,
		Message: i18n.T(sieve.CodeUnionTypeError, params),
	}}
}

func (h unionHandler) JSONSchema() *js.Schema {
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(h.members))}
	for _, m := range h.members {
		if p, ok := m.(interface{ JSONSchema() *js.Schema }); ok {
			out.OneOf = append(out.OneOf, p.JSONSchema())
		} else {
			out.OneOf = append(out.OneOf, &js.Schema{})
		}
	}
	return out
}

// Literal returns a handler accepting exactly the enumerated values,
// compared by identity. No coercion is attempted.
func Literal(values ...any) sieve.TypeHandler {
	if len(values) == 0 {
		panic(sieve.NewArgumentError("literal requires at least one value"))
	}
	return literalHandler{values: values}
}

type literalHandler struct{ values []any }

func (literalHandler) Name() string { return "literal" }

// Values exposes the accepted set for introspection.
func (h literalHandler) Values() []any { return append([]any(nil), h.values...) }

func (h literalHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	if err := h.Check(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (h literalHandler) Check(v any) error {
	for _, want := range h.values {
		if sieve.DeepEqual(v, want) {
			return nil
		}
	}
	params := map[string]any{"values": h.values}
	return sieve.ErrorCollection{sieve.Error{
		Code:    sieve.CodeLiteralMismatch,
		Message: i18n.T(sieve.CodeLiteralMismatch, params),
		Params:  params,
	}}
}

func (h literalHandler) JSONSchema() *js.Schema {
	return &js.Schema{Enum: append([]any(nil), h.values...)}
}
