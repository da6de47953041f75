package dsl_test

import (
	"testing"

	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/dsl"
	"github.com/sievekit/sieve/types"
)

func accountSchema() *dsl.Schema {
	return dsl.New().
		Field("account_type").Of(types.String()).Enum("personal", "business").
		Field("company_name").Of(types.String()).Min(1).
		When(func(in *sieve.OrderedMap, ctx sieve.Context) bool {
			v, _ := in.Get("account_type")
			return v == "business"
		}).
		MustBuild()
}

// TestConditional_BusinessForm is the conditional-requirement scenario: the
// gated field is required only while its predicate holds.
func TestConditional_BusinessForm(t *testing.T) {
	s := accountSchema()

	out, err := s.Parse(bg, map[string]any{"account_type": "personal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Has("company_name") {
		t.Fatalf("skipped field must not appear in output: %v", out.Keys())
	}

	r := s.SafeParse(bg, map[string]any{"account_type": "business"})
	if r.IsSuccess() {
		t.Fatalf("expected required failure for company_name")
	}
	e := r.Errors()[0]
	if e.Code != sieve.CodeRequired || e.Path.String() != "company_name" {
		t.Fatalf("unexpected error: %+v", e)
	}

	out, err = s.Parse(bg, map[string]any{"account_type": "business", "company_name": "Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := out.Get("company_name"); v != "Acme" {
		t.Fatalf("unexpected company_name: %v", v)
	}
}

// TestConditional_SuppliedValueStillValidated normalizes an explicitly
// supplied value through the pipeline even when the gate is closed.
func TestConditional_SuppliedValueStillValidated(t *testing.T) {
	s := accountSchema()
	r := s.SafeParse(bg, map[string]any{"account_type": "personal", "company_name": ""})
	if r.IsSuccess() {
		t.Fatalf("supplied value should still hit the min constraint")
	}
	if r.Errors()[0].Code != sieve.CodeMin {
		t.Fatalf("unexpected code: %q", r.Errors()[0].Code)
	}

	out := s.MustParse(bg, map[string]any{"account_type": "personal", "company_name": "Side LLC"})
	if v, _ := out.Get("company_name"); v != "Side LLC" {
		t.Fatalf("valid supplied value should pass through: %v", v)
	}
}

// TestConditional_Unless gates with the negated predicate.
func TestConditional_Unless(t *testing.T) {
	s := dsl.New().
		Field("anonymous").Of(types.Boolean()).Default(false).
		Field("name").Of(types.String()).
		Unless(func(in *sieve.OrderedMap, ctx sieve.Context) bool {
			v, _ := in.Get("anonymous")
			return v == true
		}).
		MustBuild()

	if _, err := s.Parse(bg, map[string]any{"anonymous": true}); err != nil {
		t.Fatalf("unless-gated field should be skippable: %v", err)
	}
	r := s.SafeParse(bg, map[string]any{"anonymous": false})
	if r.IsSuccess() || r.Errors()[0].Code != sieve.CodeRequired {
		t.Fatalf("expected required when the gate is open, got %v", r.Errors())
	}
}

// TestConditional_PredicateSeesContext feeds the parse context into the
// gate.
func TestConditional_PredicateSeesContext(t *testing.T) {
	s := dsl.New().
		Field("audit_reason").Of(types.String()).
		When(func(in *sieve.OrderedMap, ctx sieve.Context) bool {
			return ctx.Fetch("audited", false) == true
		}).
		MustBuild()

	if _, err := s.Parse(bg, map[string]any{}); err != nil {
		t.Fatalf("closed gate should not require the field: %v", err)
	}
	r := s.SafeParse(sieve.NewContext(map[string]any{"audited": true}), map[string]any{})
	if r.IsSuccess() {
		t.Fatalf("open gate should require the field")
	}
}
