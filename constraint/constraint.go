// Package constraint implements the named bounded predicates applied to
// coerced values: min, max, length, format and enum. Constraints are
// type-aware: min/max compare length for strings and sequences and numeric
// value for numbers.
package constraint

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	dec "github.com/shopspring/decimal"
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/i18n"
)

// numericValue extracts a float64 from the numeric shapes of the value
// model.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case dec.Decimal:
		f, _ := n.Float64()
		return f, true
	case json.Number:
		if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// measure returns the length of strings and sequences.
func measure(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		return len([]rune(t)), true
	case []any:
		return len(t), true
	}
	return 0, false
}

func mkErr(code string, params map[string]any) *sieve.Error {
	return &sieve.Error{Code: code, Message: i18n.T(code, params), Params: params}
}

// Min returns the min constraint: numeric floor for numbers, minimum length
// for strings and sequences.
func Min(n float64) sieve.Constraint { return minConstraint{n: n} }

type minConstraint struct{ n float64 }

func (minConstraint) Name() string { return "min" }

func (c minConstraint) Check(v any) *sieve.Error {
	if f, ok := numericValue(v); ok {
		if f < c.n {
			return mkErr(sieve.CodeMin, map[string]any{"min": trimFloat(c.n), "got": f})
		}
		return nil
	}
	if l, ok := measure(v); ok && float64(l) < c.n {
		return mkErr(sieve.CodeMin, map[string]any{"min": trimFloat(c.n), "got": l})
	}
	return nil
}

func (c minConstraint) Describe() map[string]any { return map[string]any{"min": c.n} }

// Max returns the max constraint: numeric ceiling for numbers, maximum
// length for strings and sequences.
func Max(n float64) sieve.Constraint { return maxConstraint{n: n} }

type maxConstraint struct{ n float64 }

func (maxConstraint) Name() string { return "max" }

func (c maxConstraint) Check(v any) *sieve.Error {
	if f, ok := numericValue(v); ok {
		if f > c.n {
			return mkErr(sieve.CodeMax, map[string]any{"max": trimFloat(c.n), "got": f})
		}
		return nil
	}
	if l, ok := measure(v); ok && float64(l) > c.n {
		return mkErr(sieve.CodeMax, map[string]any{"max": trimFloat(c.n), "got": l})
	}
	return nil
}

func (c maxConstraint) Describe() map[string]any { return map[string]any{"max": c.n} }

// trimFloat renders whole floats without a trailing ".0" so messages read
// "must be at least 1" rather than "must be at least 1.0".
func trimFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Length returns the exact-length constraint.
func Length(exact int) sieve.Constraint {
	return lengthConstraint{min: exact, max: exact, exact: true}
}

// LengthRange returns the inclusive-range length constraint.
func LengthRange(min, max int) sieve.Constraint {
	return lengthConstraint{min: min, max: max}
}

// LengthMin returns a lower-bound-only length constraint.
func LengthMin(min int) sieve.Constraint { return lengthConstraint{min: min, max: -1} }

// LengthMax returns an upper-bound-only length constraint.
func LengthMax(max int) sieve.Constraint { return lengthConstraint{min: -1, max: max} }

type lengthConstraint struct {
	min, max int
	exact    bool
}

func (lengthConstraint) Name() string { return "length" }

func (c lengthConstraint) expected() string {
	switch {
	case c.exact:
		return strconv.Itoa(c.min)
	case c.min < 0:
		return "at most " + strconv.Itoa(c.max)
	case c.max < 0:
		return "at least " + strconv.Itoa(c.min)
	default:
		return fmt.Sprintf("%d..%d", c.min, c.max)
	}
}

func (c lengthConstraint) Check(v any) *sieve.Error {
	l, ok := measure(v)
	if !ok {
		return nil
	}
	if (c.min >= 0 && l < c.min) || (c.max >= 0 && l > c.max) {
		return mkErr(sieve.CodeLength, map[string]any{"expected": c.expected(), "got": l})
	}
	return nil
}

func (c lengthConstraint) Describe() map[string]any {
	if c.exact {
		return map[string]any{"length": c.min}
	}
	out := map[string]any{}
	if c.min >= 0 {
		out["min"] = c.min
	}
	if c.max >= 0 {
		out["max"] = c.max
	}
	return out
}

// Enum returns the membership constraint. Comparison is structural identity
// over the value model.
func Enum(values ...any) sieve.Constraint {
	if len(values) == 0 {
		panic(sieve.NewArgumentError("enum requires at least one value"))
	}
	return enumConstraint{values: values}
}

type enumConstraint struct{ values []any }

func (enumConstraint) Name() string { return "enum" }

func (c enumConstraint) Check(v any) *sieve.Error {
	for _, want := range c.values {
		if sieve.DeepEqual(v, want) {
			return nil
		}
	}
	rendered := make([]string, 0, len(c.values))
	for _, want := range c.values {
		rendered = append(rendered, fmt.Sprint(want))
	}
	return mkErr(sieve.CodeEnum, map[string]any{"values": joinComma(rendered)})
}

func (c enumConstraint) Describe() map[string]any {
	return map[string]any{"values": append([]any(nil), c.values...)}
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
