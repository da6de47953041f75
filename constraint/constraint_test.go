package constraint_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/constraint"
)

// TestMinMax_TypeAware checks the dual interpretation: numeric comparison
// for numbers, length comparison for strings and sequences.
func TestMinMax_TypeAware(t *testing.T) {
	min3 := constraint.Min(3)

	if e := min3.Check(int64(5)); e != nil {
		t.Fatalf("5 >= 3 should pass: %v", e)
	}
	if e := min3.Check(int64(2)); e == nil || e.Code != sieve.CodeMin {
		t.Fatalf("2 < 3 should fail with min, got %v", e)
	}
	if e := min3.Check("abcd"); e != nil {
		t.Fatalf("len 4 >= 3 should pass: %v", e)
	}
	if e := min3.Check("ab"); e == nil {
		t.Fatalf("len 2 < 3 should fail")
	}
	if e := min3.Check([]any{1, 2}); e == nil {
		t.Fatalf("2 items < 3 should fail")
	}

	max2 := constraint.Max(2)
	if e := max2.Check(2.0); e != nil {
		t.Fatalf("2 <= 2 should pass: %v", e)
	}
	if e := max2.Check("abc"); e == nil || e.Code != sieve.CodeMax {
		t.Fatalf("len 3 > 2 should fail with max, got %v", e)
	}
}

// TestMinMax_Decimal compares decimals by numeric value.
func TestMinMax_Decimal(t *testing.T) {
	d, _ := dec.NewFromString("9.99")
	if e := constraint.Min(10).Check(d); e == nil {
		t.Fatalf("9.99 < 10 should fail")
	}
	if e := constraint.Max(10).Check(d); e != nil {
		t.Fatalf("9.99 <= 10 should pass: %v", e)
	}
}

// TestMin_MessageTrimsWholeFloats keeps messages free of a trailing ".0".
func TestMin_MessageTrimsWholeFloats(t *testing.T) {
	e := constraint.Min(1).Check(int64(0))
	if e == nil || e.Message != "must be at least 1" {
		t.Fatalf("unexpected message: %v", e)
	}
}

// TestLength_Variants covers exact, range and one-sided length bounds; the
// constraint ignores unmeasurable values.
func TestLength_Variants(t *testing.T) {
	if e := constraint.Length(3).Check("abc"); e != nil {
		t.Fatalf("exact length should pass: %v", e)
	}
	if e := constraint.Length(3).Check("ab"); e == nil || e.Code != sieve.CodeLength {
		t.Fatalf("expected length failure, got %v", e)
	}
	if e := constraint.LengthRange(2, 4).Check([]any{1, 2, 3}); e != nil {
		t.Fatalf("in-range sequence should pass: %v", e)
	}
	if e := constraint.LengthRange(2, 4).Check("abcde"); e == nil {
		t.Fatalf("over-range string should fail")
	}
	if e := constraint.LengthMin(2).Check("a"); e == nil {
		t.Fatalf("below lower bound should fail")
	}
	if e := constraint.LengthMax(2).Check("abc"); e == nil {
		t.Fatalf("above upper bound should fail")
	}
	if e := constraint.Length(3).Check(int64(42)); e != nil {
		t.Fatalf("numbers carry no length, expected pass: %v", e)
	}
}

// TestLength_CountsRunes measures strings in runes, not bytes.
func TestLength_CountsRunes(t *testing.T) {
	if e := constraint.Length(3).Check("日本語"); e != nil {
		t.Fatalf("3 runes should satisfy exact length 3: %v", e)
	}
}

// TestEnum_Membership compares by structural identity and lists the allowed
// set in the message.
func TestEnum_Membership(t *testing.T) {
	c := constraint.Enum("red", "green", "blue")
	if e := c.Check("green"); e != nil {
		t.Fatalf("member should pass: %v", e)
	}
	e := c.Check("yellow")
	if e == nil || e.Code != sieve.CodeEnum {
		t.Fatalf("non-member should fail with enum, got %v", e)
	}
	if e.Message != "must be one of: red, green, blue" {
		t.Fatalf("unexpected message: %q", e.Message)
	}
}

// TestEnum_IntegerWidths matches declared plain-int members against the
// int64 values coercion produces.
func TestEnum_IntegerWidths(t *testing.T) {
	c := constraint.Enum(1, 2, 3)
	if e := c.Check(int64(2)); e != nil {
		t.Fatalf("coerced int64 should match a declared int member: %v", e)
	}
	if e := c.Check(int64(4)); e == nil {
		t.Fatalf("non-member should still fail")
	}
}

// TestEnum_EmptyPanics rejects a configuration no value can satisfy.
func TestEnum_EmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*sieve.ArgumentError); !ok {
			t.Fatalf("expected ArgumentError panic, got %v", r)
		}
	}()
	constraint.Enum()
}

// TestDescribe_Introspection checks the configuration maps the JSON Schema
// projection consumes.
func TestDescribe_Introspection(t *testing.T) {
	if got := constraint.Min(5).Describe()["min"]; got != 5.0 {
		t.Fatalf("unexpected min description: %v", got)
	}
	if got := constraint.Length(2).Describe()["length"]; got != 2 {
		t.Fatalf("unexpected length description: %v", got)
	}
	d := constraint.LengthRange(1, 9).Describe()
	if d["min"] != 1 || d["max"] != 9 {
		t.Fatalf("unexpected range description: %v", d)
	}
}
