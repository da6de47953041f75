package dsl_test

import (
	"testing"

	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/dsl"
	"github.com/sievekit/sieve/types"
)

func personSchema() *dsl.Schema {
	return dsl.New().
		Field("name").Of(types.String()).Min(1).
		Field("email").Of(types.String()).Format("email").
		MustBuild()
}

// TestAlgebra_Extend appends new fields after the parent's and leaves the
// parent untouched.
func TestAlgebra_Extend(t *testing.T) {
	base := personSchema()
	extended := base.Extend(func(b *dsl.Builder) {
		b.Field("age").Of(types.Integer()).Min(0)
	})

	if got := extended.FieldNames(); len(got) != 3 || got[2] != "age" {
		t.Fatalf("unexpected field order: %v", got)
	}
	if len(base.FieldNames()) != 2 {
		t.Fatalf("extend mutated the parent: %v", base.FieldNames())
	}

	r := extended.SafeParse(bg, map[string]any{"name": "a", "email": "a@b.co", "age": -1})
	if r.IsSuccess() || r.Errors()[0].Path.String() != "age" {
		t.Fatalf("extended field not validated: %v", r.Errors())
	}
}

// TestAlgebra_ExtendDuplicatePanics surfaces a colliding name as the
// duplicate_field build error.
func TestAlgebra_ExtendDuplicatePanics(t *testing.T) {
	base := personSchema()
	defer func() {
		r := recover()
		ec, ok := sieve.AsErrors(r.(error))
		if !ok || ec[0].Code != sieve.CodeDuplicateField {
			t.Fatalf("expected duplicate_field panic, got %v", r)
		}
	}()
	base.Extend(func(b *dsl.Builder) {
		b.Field("name").Of(types.Integer())
	})
}

// TestAlgebra_PickAndOmit derive subset schemas; validators are dropped
// because they may reference omitted fields.
func TestAlgebra_PickAndOmit(t *testing.T) {
	b := dsl.New()
	b.Field("name").Of(types.String())
	b.Field("email").Of(types.String())
	b.Field("secret").Of(types.String())
	b.Validate("never", func(data *sieve.OrderedMap, errs *dsl.ValidatorErrors) {
		errs.AddBase("should not survive pick/omit")
	})
	full := b.MustBuild()

	picked := full.Pick("name")
	if got := picked.FieldNames(); len(got) != 1 || got[0] != "name" {
		t.Fatalf("unexpected pick result: %v", got)
	}
	if _, err := picked.Parse(bg, map[string]any{"name": "x"}); err != nil {
		t.Fatalf("picked schema should drop validators: %v", err)
	}

	omitted := full.Omit("secret")
	if got := omitted.FieldNames(); len(got) != 2 || got[0] != "name" || got[1] != "email" {
		t.Fatalf("unexpected omit result: %v", got)
	}
	if _, err := omitted.Parse(bg, map[string]any{"name": "x", "email": "y"}); err != nil {
		t.Fatalf("omitted schema should drop validators: %v", err)
	}
}

// TestAlgebra_Merge lets the right-hand schema win name collisions while
// keeping the receiver's field positions.
func TestAlgebra_Merge(t *testing.T) {
	left := dsl.New().
		Field("id").Of(types.String()).
		Field("status").Of(types.String()).
		MustBuild()
	right := dsl.New().
		Field("status").Of(types.Integer()). // overrides left's string status
		Field("note").Of(types.String()).Optional().
		MustBuild()

	merged := left.Merge(right)
	if got := merged.FieldNames(); len(got) != 3 || got[0] != "id" || got[1] != "status" || got[2] != "note" {
		t.Fatalf("unexpected merged order: %v", got)
	}

	out := merged.MustParse(bg, map[string]any{"id": "a", "status": "42"})
	if v, _ := out.Get("status"); v != int64(42) {
		t.Fatalf("right-hand field should win the collision: %v", v)
	}
}

// TestAlgebra_Partial clones with every field optional while keeping the
// rest of each pipeline intact.
func TestAlgebra_Partial(t *testing.T) {
	patch := personSchema().Partial()

	out, err := patch.Parse(bg, map[string]any{})
	if err != nil {
		t.Fatalf("all-optional parse failed: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("empty patch should produce empty output: %v", out.Keys())
	}

	r := patch.SafeParse(bg, map[string]any{"email": "still-checked"})
	if r.IsSuccess() || r.Errors()[0].Code != sieve.CodeFormat {
		t.Fatalf("supplied values keep their constraints: %v", r.Errors())
	}
}

// TestAlgebra_DerivedKeepsPolicy carries the unknown-key policy into derived
// schemas.
func TestAlgebra_DerivedKeepsPolicy(t *testing.T) {
	strict := dsl.New().Strict()
	strict.Field("a").Of(types.String())
	derived := strict.MustBuild().Partial()

	r := derived.SafeParse(bg, map[string]any{"zzz": 1})
	if r.IsSuccess() || r.Errors()[0].Code != sieve.CodeUnknownKey {
		t.Fatalf("derived schema lost the strict policy: %v", r.Errors())
	}
}
