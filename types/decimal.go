package types

import (
	"math"
	"strings"

	json "github.com/goccy/go-json"
	dec "github.com/shopspring/decimal"
	sieve "github.com/sievekit/sieve"
	js "github.com/sievekit/sieve/jsonschema"
)

// Decimal returns the exact-decimal handler backed by shopspring/decimal.
// Strings, integers and floats coerce; declared precision is preserved
// (coercion never rounds).
func Decimal() sieve.TypeHandler { return decimalHandler{} }

type decimalHandler struct{}

func (decimalHandler) Name() string { return "decimal" }

func (decimalHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	switch t := v.(type) {
	case dec.Decimal:
		return t, nil
	case string:
		d, err := dec.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return nil, typeErr("decimal")
		}
		return d, nil
	case int:
		return dec.NewFromInt(int64(t)), nil
	case int64:
		return dec.NewFromInt(t), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, typeErr("decimal")
		}
		return dec.NewFromFloat(t), nil
	case json.Number:
		d, err := dec.NewFromString(t.String())
		if err != nil {
			return nil, typeErr("decimal")
		}
		return d, nil
	default:
		return nil, typeErr("decimal")
	}
}

func (decimalHandler) Check(v any) error {
	if _, ok := v.(dec.Decimal); !ok {
		return typeErr("decimal")
	}
	return nil
}

func (decimalHandler) JSONSchema() *js.Schema {
	return &js.Schema{Type: "string", Format: "decimal"}
}
