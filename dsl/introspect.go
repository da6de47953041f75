package dsl

import (
	"strings"

	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/constraint"
	js "github.com/sievekit/sieve/jsonschema"
)

// ---- Field introspection ----

// Type returns the field's type handler; nil when the field is untyped.
func (f *Field) Type() sieve.TypeHandler { return f.typ }

// Constraints returns the field's constraints in declaration order.
func (f *Field) Constraints() []sieve.Constraint {
	return append([]sieve.Constraint(nil), f.constraints...)
}

// ConstraintBy returns the first constraint of the given kind, or nil.
func (f *Field) ConstraintBy(kind string) sieve.Constraint {
	for _, c := range f.constraints {
		if c.Name() == kind {
			return c
		}
	}
	return nil
}

// HasConstraint reports whether a constraint of the given kind is declared.
func (f *Field) HasConstraint(kind string) bool { return f.ConstraintBy(kind) != nil }

// ConstraintValues merges every constraint's configuration into one map.
func (f *Field) ConstraintValues() map[string]any {
	out := map[string]any{}
	for _, c := range f.constraints {
		for k, v := range c.Describe() {
			out[k] = v
		}
	}
	return out
}

// IsOptional reports whether the key may be missing.
func (f *Field) IsOptional() bool { return f.optional }

// IsNullable reports whether an explicit null is accepted.
func (f *Field) IsNullable() bool { return f.nullable }

// IsConditional reports whether the field is gated by when/unless.
func (f *Field) IsConditional() bool { return f.when != nil || f.unless != nil }

// HasDefault reports whether a default (literal or thunk) is declared.
func (f *Field) HasDefault() bool { return f.hasDefault }

// Options summarizes the field's flags for introspection.
func (f *Field) Options() map[string]any {
	return map[string]any{
		"optional":    f.optional,
		"nullable":    f.nullable,
		"coerce":      f.coerce,
		"conditional": f.IsConditional(),
		"default":     f.hasDefault,
	}
}

// ---- Schema introspection ----

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []*Field { return append([]*Field(nil), s.fields...) }

// Field returns the named field, or nil.
func (s *Schema) Field(name string) *Field { return s.index[name] }

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string {
	out := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f.name)
	}
	return out
}

func (s *Schema) selectFields(pred func(*Field) bool) []*Field {
	var out []*Field
	for _, f := range s.fields {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

// RequiredFields returns the unconditional, non-optional fields.
func (s *Schema) RequiredFields() []*Field {
	return s.selectFields(func(f *Field) bool { return !f.optional && !f.IsConditional() })
}

// OptionalFields returns the fields whose key may be missing.
func (s *Schema) OptionalFields() []*Field {
	return s.selectFields(func(f *Field) bool { return f.optional })
}

// ConditionalFields returns the when/unless-gated fields.
func (s *Schema) ConditionalFields() []*Field {
	return s.selectFields(func(f *Field) bool { return f.IsConditional() })
}

// FieldsWithDefaults returns the fields that declare a default.
func (s *Schema) FieldsWithDefaults() []*Field {
	return s.selectFields(func(f *Field) bool { return f.hasDefault })
}

// SchemaHash renders the schema as a plain description: types, constraints,
// conditions, defaults and the unknown-key policy. External emitters (JSON
// Schema, OpenAPI) consume this; it is pure and read-only.
func (s *Schema) SchemaHash() map[string]any {
	fields := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		typeName := ""
		if f.typ != nil {
			typeName = f.typ.Name()
		}
		desc := map[string]any{
			"type":    typeName,
			"options": f.Options(),
		}
		if len(f.constraints) > 0 {
			desc["constraints"] = f.ConstraintValues()
		}
		if len(f.literals) > 0 {
			desc["literals"] = append([]any(nil), f.literals...)
		}
		if f.hasDefault && f.defaultFunc == nil {
			desc["default"] = f.defaultValue
		}
		fields[f.name] = desc
	}
	return map[string]any{
		"fields":       fields,
		"field_order":  s.FieldNames(),
		"unknown_keys": s.unknown.String(),
	}
}

// Describe renders a one-line-per-field summary for debugging:
//
//	name: string required [min max]
//	age: integer optional [min]
func (s *Schema) Describe() string {
	b := &strings.Builder{}
	for _, f := range s.fields {
		b.WriteString(f.name)
		b.WriteString(": ")
		if f.typ != nil {
			b.WriteString(f.typ.Name())
		} else {
			b.WriteString("any")
		}
		switch {
		case f.IsConditional():
			b.WriteString(" conditional")
		case f.optional:
			b.WriteString(" optional")
		default:
			b.WriteString(" required")
		}
		if f.nullable {
			b.WriteString(" nullable")
		}
		if len(f.constraints) > 0 {
			b.WriteString(" [")
			for i, c := range f.constraints {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(c.Name())
			}
			b.WriteByte(']')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// JSONSchema projects the schema into a Draft-07 representation with the
// $schema header.
func (s *Schema) JSONSchema() *js.Schema {
	out := s.jsonSchemaNode()
	out.SchemaURI = js.DraftURI
	return out
}

func (s *Schema) jsonSchemaNode() *js.Schema {
	props := make(map[string]*js.Schema, len(s.fields))
	var required []string
	for _, f := range s.fields {
		props[f.name] = f.jsonSchemaNode()
		if !f.optional && !f.IsConditional() {
			required = append(required, f.name)
		}
	}
	var additional any
	switch s.unknown {
	case sieve.UnknownStrict:
		additional = false
	default:
		// Strip accepts then discards unknown keys; passthrough keeps them.
		// Both admit additional properties in JSON Schema terms.
		additional = true
	}
	return &js.Schema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: additional,
	}
}

func (f *Field) jsonSchemaNode() *js.Schema {
	node := &js.Schema{}
	if p, ok := f.typ.(interface{ JSONSchema() *js.Schema }); ok {
		node = p.JSONSchema()
	}
	if len(f.literals) > 0 {
		node.Enum = append([]any(nil), f.literals...)
	}
	if f.hasDefault && f.defaultFunc == nil {
		node.Default = f.defaultValue
	}
	for _, c := range f.constraints {
		applyConstraintToNode(node, c)
	}
	return node
}

func applyConstraintToNode(node *js.Schema, c sieve.Constraint) {
	cfg := c.Describe()
	switch c.Name() {
	case "min":
		if n, ok := cfg["min"].(float64); ok {
			if node.Type == "string" {
				node.MinLength = js.PtrInt(int(n))
			} else if node.Type == "array" {
				node.MinItems = js.PtrInt(int(n))
			} else {
				node.Minimum = js.PtrFloat(n)
			}
		}
	case "max":
		if n, ok := cfg["max"].(float64); ok {
			if node.Type == "string" {
				node.MaxLength = js.PtrInt(int(n))
			} else if node.Type == "array" {
				node.MaxItems = js.PtrInt(int(n))
			} else {
				node.Maximum = js.PtrFloat(n)
			}
		}
	case "length":
		if n, ok := cfg["length"].(int); ok {
			node.MinLength = js.PtrInt(n)
			node.MaxLength = js.PtrInt(n)
			return
		}
		if n, ok := cfg["min"].(int); ok {
			node.MinLength = js.PtrInt(n)
		}
		if n, ok := cfg["max"].(int); ok {
			node.MaxLength = js.PtrInt(n)
		}
	case "format":
		if pattern, ok := constraint.PatternOf(c); ok {
			node.Pattern = pattern
		}
		if name, ok := cfg["format"].(string); ok {
			node.Format = name
		}
	case "enum":
		if vals, ok := cfg["values"].([]any); ok {
			node.Enum = append([]any(nil), vals...)
		}
	}
}
