// Package i18n resolves error codes into human-readable messages. The core
// stays locale-independent: it looks up a template by code and interpolates
// structured parameters. A message-catalog collaborator may replace the
// Translator to substitute its own templates.
package i18n

import (
	"fmt"
	"strings"
)

// Translator retrieves messages for error codes. params provides optional
// values to embed in the message (for example "min" or "values").
type Translator interface {
	Message(code string, params map[string]any) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

var templates = map[string]string{
	"required":              "is required",
	"type_error":            "must be a valid %{type}",
	"preprocess_error":      "preprocess failed: %{reason}",
	"transform_error":       "transform failed: %{reason}",
	"min":                   "must be at least %{min}",
	"max":                   "must be at most %{max}",
	"length":                "has invalid length (expected %{expected})",
	"format":                "has invalid format",
	"enum":                  "must be one of: %{values}",
	"refinement":            "is invalid",
	"union_type_error":      "does not match any of the allowed types",
	"literal_mismatch":      "must be one of the allowed values",
	"unknown_key":           "is not allowed",
	"duplicate_field":       "field %{name} is already defined",
	"discriminator_missing": "discriminator %{key} is missing",
	"invalid_discriminator": "has unknown discriminator value %{value}",
	"custom":                "is invalid",
	"argument_error":        "invalid argument",
	"resource_limit":        "exceeds the %{limit} limit of %{max}",
}

func (dictTranslator) Message(code string, params map[string]any) string {
	tpl, ok := templates[code]
	if !ok {
		return code
	}
	return Interpolate(tpl, params)
}

// Interpolate substitutes %{name} placeholders in tpl from params. Unknown
// placeholders are left verbatim so missing parameters stay visible.
func Interpolate(tpl string, params map[string]any) string {
	if !strings.Contains(tpl, "%{") {
		return tpl
	}
	b := &strings.Builder{}
	for {
		i := strings.Index(tpl, "%{")
		if i < 0 {
			b.WriteString(tpl)
			break
		}
		j := strings.Index(tpl[i:], "}")
		if j < 0 {
			b.WriteString(tpl)
			break
		}
		b.WriteString(tpl[:i])
		name := tpl[i+2 : i+j]
		if v, ok := params[name]; ok {
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(tpl[i : i+j+1])
		}
		tpl = tpl[i+j+1:]
	}
	return b.String()
}

var currentTranslator Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation. Passing nil restores
// the built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, params map[string]any) string {
	return currentTranslator.Message(code, params)
}
