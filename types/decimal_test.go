package types_test

import (
	"testing"

	json "github.com/goccy/go-json"
	dec "github.com/shopspring/decimal"
	"github.com/sievekit/sieve/types"
)

// TestDecimal_PreservesDeclaredPrecision confirms string coercion keeps
// trailing zeros: "1.50" stays "1.50", not "1.5".
func TestDecimal_PreservesDeclaredPrecision(t *testing.T) {
	h := types.Decimal()
	got, err := h.Coerce(bg, "1.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, ok := got.(dec.Decimal)
	if !ok {
		t.Fatalf("expected decimal, got %T", got)
	}
	if d.String() != "1.50" {
		t.Fatalf("precision lost: %q", d.String())
	}
}

// TestDecimal_Coercion covers the accepted shapes and failures.
func TestDecimal_Coercion(t *testing.T) {
	h := types.Decimal()

	got, err := h.Coerce(bg, int64(42))
	if err != nil || got.(dec.Decimal).String() != "42" {
		t.Fatalf("int coercion: got %v err=%v", got, err)
	}
	got, err = h.Coerce(bg, json.Number("10.250"))
	if err != nil || got.(dec.Decimal).String() != "10.250" {
		t.Fatalf("json.Number coercion: got %v err=%v", got, err)
	}
	if _, err := h.Coerce(bg, 0.1); err != nil {
		t.Fatalf("float coercion should succeed: %v", err)
	}
	for _, in := range []any{"abc", true, []any{1}} {
		if _, err := h.Coerce(bg, in); err == nil {
			t.Fatalf("coerce(%v): expected type_error", in)
		}
	}
}

// TestDecimal_Check accepts only already-typed decimals.
func TestDecimal_Check(t *testing.T) {
	h := types.Decimal()
	if err := h.Check(dec.NewFromInt(1)); err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
	if err := h.Check("1.0"); err == nil {
		t.Fatalf("string should fail the decimal check")
	}
}
