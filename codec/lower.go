// Package codec lowers typed values to primitive trees and moves them
// across the JSON and YAML boundaries. Lowering is pure: it never mutates
// its input and has no error outcomes for the supported value shapes.
package codec

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	dec "github.com/shopspring/decimal"
	sieve "github.com/sievekit/sieve"
)

// Mapper is the capability an opaque value may implement to lower itself to
// a mapping.
type Mapper interface {
	ToMap() map[string]any
}

// Lower converts a value to its primitive form: identity for null, bool,
// int, float and string; canonical full-precision strings for decimals;
// ISO-8601 strings for dates and datetimes; recursively lowered sequences
// and string-keyed mappings. Opaque values lower through ToMap when
// available, otherwise to their canonical string form. Lower is idempotent
// over its own output.
func Lower(v any) any {
	switch t := v.(type) {
	case nil, bool, string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case dec.Decimal:
		return t.String()
	case sieve.Date:
		return t.String()
	case time.Time:
		return t.Format(time.RFC3339)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Lower(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Lower(item)
		}
		return out
	case *sieve.OrderedMap:
		out := sieve.NewOrderedMap()
		t.Range(func(k string, item any) bool {
			out.Set(k, Lower(item))
			return true
		})
		return out
	case Mapper:
		return Lower(t.ToMap())
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// DumpResult lowers a Result: the primitive data tree on success, or the
// error report {"errors": […]} on failure.
func DumpResult(r sieve.Result) any {
	if r.IsSuccess() {
		return Lower(r.Data())
	}
	errs := make([]any, 0, r.Errors().Len())
	for _, e := range r.Errors() {
		segs := make([]any, 0, len(e.Path))
		for _, s := range e.Path {
			segs = append(segs, s.Value())
		}
		entry := sieve.NewOrderedMap()
		entry.Set("path", segs)
		entry.Set("message", e.Message)
		entry.Set("code", e.Code)
		errs = append(errs, entry)
	}
	out := sieve.NewOrderedMap()
	out.Set("errors", errs)
	return out
}
