package sieve

import (
	"bytes"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Date is a calendar date without a time-of-day component. The underlying
// instant is midnight UTC; the dedicated type keeps date values
// distinguishable from datetimes through serialization.
type Date time.Time

// DateOf truncates t to its date portion in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Time returns the underlying midnight-UTC instant.
func (d Date) Time() time.Time { return time.Time(d) }

// String renders the ISO-8601 date form.
func (d Date) String() string { return time.Time(d).Format("2006-01-02") }

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(o Date) bool { return time.Time(d).Equal(time.Time(o)) }

// OrderedMap is a string-keyed mapping that preserves insertion order. It is
// the canonical mapping shape for parsed output: deterministic iteration
// keeps error paths and serialized output stable.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: map[string]any{}}
}

// OrderedFromPairs builds an OrderedMap from alternating key/value pairs.
// Intended for tests and fixtures; odd trailing arguments are ignored.
func OrderedFromPairs(pairs ...any) *OrderedMap {
	m := NewOrderedMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			continue
		}
		m.Set(k, pairs[i+1])
	}
	return m
}

// Set stores v under k, appending k to the order on first insertion.
func (m *OrderedMap) Set(k string, v any) {
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get returns the value under k and whether it was present.
func (m *OrderedMap) Get(k string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present.
func (m *OrderedMap) Has(k string) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete removes k, preserving the relative order of remaining keys.
func (m *OrderedMap) Delete(k string) {
	if m == nil {
		return
	}
	if _, ok := m.values[k]; !ok {
		return
	}
	delete(m.values, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *OrderedMap) Range(fn func(k string, v any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// ToMap returns a plain map copy. Order is lost; values are not cloned.
func (m *OrderedMap) ToMap() map[string]any {
	out := make(map[string]any, m.Len())
	m.Range(func(k string, v any) bool {
		out[k] = v
		return true
	})
	return out
}

// Clone deep-clones the map, its nested maps and sequences.
func (m *OrderedMap) Clone() *OrderedMap {
	out := NewOrderedMap()
	m.Range(func(k string, v any) bool {
		out.Set(k, DeepClone(v))
		return true
	})
	return out
}

// Equal reports deep structural equality including key order.
func (m *OrderedMap) Equal(o *OrderedMap) bool {
	if m.Len() != o.Len() {
		return false
	}
	ak, bk := m.Keys(), o.Keys()
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
		av, _ := m.Get(ak[i])
		bv, _ := o.Get(bk[i])
		if !DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

// MarshalJSON emits a JSON object preserving insertion order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DeepClone copies nested maps and sequences; scalars pass through.
func DeepClone(v any) any {
	switch t := v.(type) {
	case *OrderedMap:
		return t.Clone()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = DeepClone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = DeepClone(val)
		}
		return out
	default:
		return v
	}
}

// DeepEqual reports structural equality over the value model: scalars,
// sequences, plain maps and ordered maps. Decimals compare by numeric value,
// times by instant.
func DeepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case *OrderedMap:
		if bv, ok := b.(*OrderedMap); ok {
			return av.Equal(bv)
		}
		return false
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !DeepEqual(v, bvv) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case int, int8, int16, int32, int64:
		bv, ok := asInt64(b)
		if !ok {
			return false
		}
		n, _ := asInt64(a)
		return n == bv
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		return ok && av.Equal(bv)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case Date:
		bv, ok := b.(Date)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}

// asInt64 widens the signed integer shapes of the value model, so identity
// comparisons are width-insensitive: a declared int matches coerced int64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
