package types

import (
	sieve "github.com/sievekit/sieve"
	js "github.com/sievekit/sieve/jsonschema"
)

// Array returns a sequence handler whose items are validated through inner.
// Item errors surface under their index path. Every item is processed so a
// single parse reports all item failures.
func Array(inner sieve.TypeHandler) sieve.TypeHandler {
	if inner == nil {
		panic(sieve.NewArgumentError("array requires an inner type handler"))
	}
	return arrayHandler{inner: inner}
}

type arrayHandler struct{ inner sieve.TypeHandler }

func (arrayHandler) Name() string { return "array" }

// Inner exposes the item handler for introspection.
func (h arrayHandler) Inner() sieve.TypeHandler { return h.inner }

func (h arrayHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, typeErr("array")
	}
	out := make([]any, 0, len(seq))
	var errs sieve.ErrorCollection
	for i, item := range seq {
		if item == nil {
			out = append(out, nil)
			continue
		}
		coerced, err := h.inner.Coerce(ctx, item)
		if err != nil {
			if child, ok := sieve.AsErrors(err); ok {
				errs.Extend(child.Rebase(sieve.Path{}.ChildIndex(i)))
			} else {
				errs.Push(sieve.Error{
					Path:    sieve.Path{}.ChildIndex(i),
					Code:    sieve.CodeTypeError,
					Message: err.Error(),
				})
			}
			continue
		}
		out = append(out, coerced)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (arrayHandler) Check(v any) error {
	if _, ok := v.([]any); !ok {
		return typeErr("array")
	}
	return nil
}

func (h arrayHandler) JSONSchema() *js.Schema {
	items := &js.Schema{}
	if p, ok := h.inner.(interface{ JSONSchema() *js.Schema }); ok {
		items = p.JSONSchema()
	}
	return &js.Schema{Type: "array", Items: items}
}
