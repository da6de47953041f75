package types

import (
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	sieve "github.com/sievekit/sieve"
	js "github.com/sievekit/sieve/jsonschema"
)

// String returns the string handler. Strings pass through; finite numbers
// coerce to their decimal textual form.
func String() sieve.TypeHandler { return stringHandler{} }

type stringHandler struct{}

func (stringHandler) Name() string { return "string" }

func (stringHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, typeErr("string")
		}
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case json.Number:
		return t.String(), nil
	default:
		return nil, typeErr("string")
	}
}

func (stringHandler) Check(v any) error {
	if _, ok := v.(string); !ok {
		return typeErr("string")
	}
	return nil
}

func (stringHandler) JSONSchema() *js.Schema { return &js.Schema{Type: "string"} }

// Integer returns the integer handler. Accepts integers as-is; coerces from
// integral strings (including a zero fractional part, so "42.0" passes and
// "42.5" fails) and from floats whose fractional part is zero.
func Integer() sieve.TypeHandler { return integerHandler{} }

type integerHandler struct{}

func (integerHandler) Name() string { return "integer" }

func (integerHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		return intFromFloat(t)
	case json.Number:
		return intFromString(t.String())
	case string:
		return intFromString(strings.TrimSpace(t))
	default:
		return nil, typeErr("integer")
	}
}

func intFromString(s string) (any, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, typeErr("integer")
	}
	return intFromFloat(f)
}

func intFromFloat(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, typeErr("integer")
	}
	return int64(f), nil
}

func (integerHandler) Check(v any) error {
	switch v.(type) {
	case int, int64:
		return nil
	default:
		return typeErr("integer")
	}
}

func (integerHandler) JSONSchema() *js.Schema { return &js.Schema{Type: "integer"} }

// Float returns the float handler. Finite floats pass through; integers and
// parseable strings coerce.
func Float() sieve.TypeHandler { return floatHandler{} }

type floatHandler struct{}

func (floatHandler) Name() string { return "float" }

func (floatHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, typeErr("float")
		}
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		return floatFromString(t.String())
	case string:
		return floatFromString(strings.TrimSpace(t))
	default:
		return nil, typeErr("float")
	}
}

func floatFromString(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, typeErr("float")
	}
	return f, nil
}

func (floatHandler) Check(v any) error {
	if f, ok := v.(float64); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return nil
	}
	return typeErr("float")
}

func (floatHandler) JSONSchema() *js.Schema { return &js.Schema{Type: "number"} }

// Boolean returns the boolean handler. The string catalogue is closed and
// case-insensitive: true/false, yes/no, on/off, t/f, y/n, 1/0. Integers 1
// and 0 coerce; everything else fails.
func Boolean() sieve.TypeHandler { return booleanHandler{} }

type booleanHandler struct{}

var boolStrings = map[string]bool{
	"true": true, "false": false,
	"yes": true, "no": false,
	"on": true, "off": false,
	"t": true, "f": false,
	"y": true, "n": false,
	"1": true, "0": false,
}

func (booleanHandler) Name() string { return "boolean" }

func (booleanHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		if b, ok := boolStrings[strings.ToLower(t)]; ok {
			return b, nil
		}
		return nil, typeErr("boolean")
	case int:
		return boolFromInt(int64(t))
	case int64:
		return boolFromInt(t)
	case json.Number:
		if b, ok := boolStrings[t.String()]; ok {
			return b, nil
		}
		return nil, typeErr("boolean")
	default:
		return nil, typeErr("boolean")
	}
}

func boolFromInt(n int64) (any, error) {
	switch n {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return nil, typeErr("boolean")
	}
}

func (booleanHandler) Check(v any) error {
	if _, ok := v.(bool); !ok {
		return typeErr("boolean")
	}
	return nil
}

func (booleanHandler) JSONSchema() *js.Schema { return &js.Schema{Type: "boolean"} }
