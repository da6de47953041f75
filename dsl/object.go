package dsl

import (
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/i18n"
	js "github.com/sievekit/sieve/jsonschema"
)

// ObjectOf wraps a nested Schema as a TypeHandler so mappings can nest.
// The inner schema runs with the empty context: nested schemas do not
// inherit the parent parse's Context.
func ObjectOf(schema *Schema) sieve.TypeHandler {
	if schema == nil {
		panic(sieve.NewArgumentError("object requires a schema"))
	}
	return objectHandler{schema: schema}
}

type objectHandler struct{ schema *Schema }

func (objectHandler) Name() string { return "object" }

// Schema exposes the nested schema for introspection.
func (h objectHandler) Schema() *Schema { return h.schema }

func (h objectHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	in, ok := normalizeInput(v)
	if !ok || v == nil {
		return nil, typeErrObject()
	}
	out, errs := h.schema.parseAt(sieve.EmptyContext, sieve.Path{}, in)
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (h objectHandler) Check(v any) error {
	switch v.(type) {
	case *sieve.OrderedMap, map[string]any:
		return nil
	default:
		return typeErrObject()
	}
}

func (h objectHandler) JSONSchema() *js.Schema {
	return h.schema.jsonSchemaNode()
}

func typeErrObject() sieve.ErrorCollection {
	params := map[string]any{"type": "object"}
	return sieve.ErrorCollection{sieve.Error{
		Code:    sieve.CodeTypeError,
		Message: i18n.T(sieve.CodeTypeError, params),
		Params:  params,
	}}
}

// Discriminated builds an object handler whose inner schema is selected at
// runtime by the discriminator key. String and integer discriminator values
// are normalized to their string form before lookup. Variant errors surface
// under the field's own path.
func Discriminated(key string, mapping map[string]*Schema) sieve.TypeHandler {
	if key == "" || len(mapping) == 0 {
		panic(sieve.NewArgumentError("discriminated union requires a key and at least one variant"))
	}
	return discriminatedHandler{key: key, mapping: mapping}
}

type discriminatedHandler struct {
	key     string
	mapping map[string]*Schema
}

func (discriminatedHandler) Name() string { return "discriminated_union" }

// Key exposes the discriminator key for introspection.
func (h discriminatedHandler) Key() string { return h.key }

func (h discriminatedHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	in, ok := normalizeInput(v)
	if !ok || v == nil {
		return nil, typeErrObject()
	}
	// Missing covers only absent and null tags. A supplied value that is
	// empty, unmapped or of the wrong shape is an invalid discriminator.
	raw, present := in.Get(h.key)
	if !present || raw == nil {
		params := map[string]any{"key": h.key}
		return nil, sieve.ErrorCollection{sieve.Error{
			Path:    sieve.Path{}.Child(h.key),
			Code:    sieve.CodeDiscriminatorMissing,
			Message: i18n.T(sieve.CodeDiscriminatorMissing, params),
			Params:  params,
		}}
	}
	tag, ok := discriminatorTag(raw)
	if !ok {
		tag = fmt.Sprint(raw)
	}
	variant, mapped := h.mapping[tag]
	if !ok || !mapped {
		params := map[string]any{"value": tag}
		return nil, sieve.ErrorCollection{sieve.Error{
			Path:    sieve.Path{}.Child(h.key),
			Code:    sieve.CodeInvalidDiscriminator,
			Message: i18n.T(sieve.CodeInvalidDiscriminator, params),
			Params:  params,
		}}
	}
	out, errs := variant.parseAt(sieve.EmptyContext, sieve.Path{}, in)
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// discriminatorTag normalizes string, integer and json.Number discriminator
// values to a lookup key; other shapes cannot address a variant.
func discriminatorTag(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

func (h discriminatedHandler) Check(v any) error {
	switch v.(type) {
	case *sieve.OrderedMap, map[string]any:
		return nil
	default:
		return typeErrObject()
	}
}

func (h discriminatedHandler) JSONSchema() *js.Schema {
	names := make([]string, 0, len(h.mapping))
	for name := range h.mapping {
		names = append(names, name)
	}
	sort.Strings(names)
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(names))}
	for _, name := range names {
		out.OneOf = append(out.OneOf, h.mapping[name].jsonSchemaNode())
	}
	return out
}
