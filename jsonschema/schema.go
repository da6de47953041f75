// Package jsonschema holds a minimal Draft-07 JSON Schema representation
// used for export. External emitters (OpenAPI and friends) consume this;
// the core only ever writes it.
package jsonschema

// DraftURI is the $schema header stamped on top-level exports.
const DraftURI = "http://json-schema.org/draft-07/schema#"

// Schema is a minimal JSON Schema node. Keep this struct small and extend
// incrementally.
type Schema struct {
	// Header (top-level exports only)
	SchemaURI string `json:"$schema,omitempty"`

	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Const       any    `json:"const,omitempty"`
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`

	// Numbers
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Strings
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// PtrFloat returns a pointer to v, for the numeric bound fields.
func PtrFloat(v float64) *float64 { return &v }

// PtrInt returns a pointer to v, for the length bound fields.
func PtrInt(v int) *int { return &v }
