package types_test

import (
	"testing"

	json "github.com/goccy/go-json"
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/types"
)

var bg = sieve.EmptyContext

// TestInteger_Coercion covers the integral-string rule: "42" and "42.0"
// coerce, "42.5" fails, and floats follow the same fractional-part check.
func TestInteger_Coercion(t *testing.T) {
	h := types.Integer()

	ok := []struct {
		in   any
		want int64
	}{
		{42, 42},
		{int64(-7), -7},
		{"42", 42},
		{" 42 ", 42},
		{"42.0", 42},
		{"-3", -3},
		{float64(10), 10},
		{json.Number("99"), 99},
		{json.Number("99.0"), 99},
	}
	for _, c := range ok {
		got, err := h.Coerce(bg, c.in)
		if err != nil {
			t.Fatalf("coerce(%v): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("coerce(%v): want %d, got %v (%T)", c.in, c.want, got, got)
		}
	}

	bad := []any{"42.5", "abc", 42.5, true, []any{1}, json.Number("1.25")}
	for _, in := range bad {
		if _, err := h.Coerce(bg, in); err == nil {
			t.Fatalf("coerce(%v): expected type_error", in)
		}
	}
}

// TestInteger_Check rejects untyped values when coercion is off.
func TestInteger_Check(t *testing.T) {
	h := types.Integer()
	if err := h.Check(int64(5)); err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
	if err := h.Check("5"); err == nil {
		t.Fatalf("string should not pass the integer check")
	}
}

// TestString_Coercion converts finite numbers to their decimal form and
// rejects everything else.
func TestString_Coercion(t *testing.T) {
	h := types.String()
	cases := []struct {
		in   any
		want string
	}{
		{"hello", "hello"},
		{42, "42"},
		{int64(-1), "-1"},
		{3.5, "3.5"},
		{json.Number("1.25"), "1.25"},
	}
	for _, c := range cases {
		got, err := h.Coerce(bg, c.in)
		if err != nil || got != c.want {
			t.Fatalf("coerce(%v): want %q, got %v err=%v", c.in, c.want, got, err)
		}
	}
	for _, in := range []any{true, []any{"x"}, map[string]any{}} {
		if _, err := h.Coerce(bg, in); err == nil {
			t.Fatalf("coerce(%v): expected type_error", in)
		}
	}
}

// TestBoolean_ClosedCatalog locks the accepted string forms: anything
// outside true/false, yes/no, on/off, t/f, y/n, 1/0 fails regardless of
// plausibility.
func TestBoolean_ClosedCatalog(t *testing.T) {
	h := types.Boolean()

	truthy := []any{true, "true", "TRUE", "Yes", "on", "T", "y", "1", 1, int64(1)}
	for _, in := range truthy {
		got, err := h.Coerce(bg, in)
		if err != nil || got != true {
			t.Fatalf("coerce(%v): want true, got %v err=%v", in, got, err)
		}
	}
	falsy := []any{false, "false", "No", "OFF", "f", "N", "0", 0, int64(0)}
	for _, in := range falsy {
		got, err := h.Coerce(bg, in)
		if err != nil || got != false {
			t.Fatalf("coerce(%v): want false, got %v err=%v", in, got, err)
		}
	}
	rejected := []any{"yeah", "nope", "2", "", 2, -1, 1.0}
	for _, in := range rejected {
		if _, err := h.Coerce(bg, in); err == nil {
			t.Fatalf("coerce(%v): expected type_error outside the catalog", in)
		}
	}
}

// TestFloat_Coercion parses numeric strings and rejects NaN and infinities.
func TestFloat_Coercion(t *testing.T) {
	h := types.Float()
	got, err := h.Coerce(bg, "2.5")
	if err != nil || got != 2.5 {
		t.Fatalf("coerce string: got %v err=%v", got, err)
	}
	if got, err := h.Coerce(bg, 7); err != nil || got != 7.0 {
		t.Fatalf("coerce int: got %v err=%v", got, err)
	}
	for _, in := range []any{"NaN", "Inf", "abc", true} {
		if _, err := h.Coerce(bg, in); err == nil {
			t.Fatalf("coerce(%v): expected type_error", in)
		}
	}
}

// TestTypeError_CarriesCodeAndParams confirms handler failures surface the
// closed type_error code with the handler name in params.
func TestTypeError_CarriesCodeAndParams(t *testing.T) {
	_, err := types.Integer().Coerce(bg, "abc")
	ec, ok := sieve.AsErrors(err)
	if !ok || ec.Len() != 1 {
		t.Fatalf("expected one collected error, got %v", err)
	}
	if ec[0].Code != sieve.CodeTypeError {
		t.Fatalf("unexpected code: %q", ec[0].Code)
	}
	if ec[0].Params["type"] != "integer" {
		t.Fatalf("expected handler name in params, got %v", ec[0].Params)
	}
}
