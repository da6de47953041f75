package dsl_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	sieve "github.com/sievekit/sieve"
	"github.com/sievekit/sieve/dsl"
	"github.com/sievekit/sieve/types"
)

// TestDump_LowersTypedValues serializes decimals and temporals to their
// canonical string forms while leaving plain scalars alone.
func TestDump_LowersTypedValues(t *testing.T) {
	s := dsl.New().
		Field("price").Of(types.Decimal()).
		Field("day").Of(types.Date()).
		Field("at").Of(types.DateTime()).
		Field("qty").Of(types.Integer()).
		MustBuild()

	out, err := s.Dump(bg, map[string]any{
		"price": "19.90",
		"day":   "2024-03-01",
		"at":    "2024-03-01T10:00:00Z",
		"qty":   "2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := out.(*sieve.OrderedMap)
	if v, _ := m.Get("price"); v != "19.90" {
		t.Fatalf("decimal should lower to its exact string: %v", v)
	}
	if v, _ := m.Get("day"); v != "2024-03-01" {
		t.Fatalf("date should lower to ISO-8601: %v", v)
	}
	if v, _ := m.Get("at"); v != "2024-03-01T10:00:00Z" {
		t.Fatalf("datetime should lower to RFC3339: %v", v)
	}
	if v, _ := m.Get("qty"); v != int64(2) {
		t.Fatalf("integers stay numeric: %v", v)
	}
}

// TestSafeDump_ErrorReport produces the {"errors":[...]} shape with mixed
// string/integer path segments.
func TestSafeDump_ErrorReport(t *testing.T) {
	s := dsl.New().
		Field("items").Of(types.Array(types.Integer())).
		MustBuild()

	dumped := s.SafeDump(bg, map[string]any{"items": []any{1, "bad"}})
	b, err := json.Marshal(dumped)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var report struct {
		Errors []struct {
			Path    []any  `json:"path"`
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(b, &report); err != nil {
		t.Fatalf("report should decode: %v (%s)", err, b)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("unexpected report: %s", b)
	}
	e := report.Errors[0]
	if e.Code != "type_error" || len(e.Path) != 2 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Path[0] != "items" {
		t.Fatalf("key segment should be a string: %v", e.Path)
	}
	if n, ok := e.Path[1].(float64); !ok || n != 1 {
		t.Fatalf("index segment should be numeric: %v", e.Path)
	}
}

// TestParseJSON_PreservesIntegerPrecision decodes numbers as json.Number so
// large integers survive into coercion without float rounding.
func TestParseJSON_PreservesIntegerPrecision(t *testing.T) {
	s := dsl.New().
		Field("id").Of(types.Integer()).
		MustBuild()

	out, err := s.ParseJSON(bg, []byte(`{"id": 9007199254740993}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := out.Get("id"); v != int64(9007199254740993) {
		t.Fatalf("precision lost: %v", v)
	}
}

// TestSafeParseJSON_MalformedDocument surfaces a decode failure as a root
// type_error instead of panicking.
func TestSafeParseJSON_MalformedDocument(t *testing.T) {
	s := dsl.New().Field("a").Of(types.String()).MustBuild()
	r := s.SafeParseJSON(bg, []byte(`{"a": `))
	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	e := r.Errors()[0]
	if e.Code != sieve.CodeTypeError || !e.Path.IsRoot() {
		t.Fatalf("unexpected error: %+v", e)
	}
}

// TestParseYAML validates a YAML document end to end.
func TestParseYAML(t *testing.T) {
	s := dsl.New().
		Field("name").Of(types.String()).Min(1).
		Field("replicas").Of(types.Integer()).Min(0).
		Field("labels").Of(dsl.ObjectOf(dsl.New().
			Field("env").Of(types.String()).Enum("dev", "prod").
			MustBuild())).
		MustBuild()

	doc := strings.TrimSpace(`
name: web
replicas: "3"
labels:
  env: prod
`)
	out, err := s.ParseYAML(bg, []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := out.Get("replicas"); v != int64(3) {
		t.Fatalf("yaml value not coerced: %v", v)
	}
	labels, _ := out.Get("labels")
	if v, _ := labels.(*sieve.OrderedMap).Get("env"); v != "prod" {
		t.Fatalf("nested yaml lost: %v", v)
	}

	if _, err := s.ParseYAML(bg, []byte("name: web\nreplicas: many\nlabels: {env: prod}")); err == nil {
		t.Fatalf("expected coercion failure for replicas")
	}
}
