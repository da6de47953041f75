package types

import (
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	sieve "github.com/sievekit/sieve"
	js "github.com/sievekit/sieve/jsonschema"
)

// Date returns the calendar-date handler. Coerces from ISO-8601 date or
// datetime strings (keeping the date portion), from datetime values, and
// from integer seconds since epoch.
func Date() sieve.TypeHandler { return dateHandler{} }

// DateTime returns the datetime handler. Coerces from ISO-8601 strings,
// dates (midnight), and integer or float seconds since epoch.
func DateTime() sieve.TypeHandler { return datetimeHandler{name: "datetime"} }

// Time returns the time handler. Instants carry no separate time-of-day
// shape here; the handler shares datetime coercion under its own name.
func Time() sieve.TypeHandler { return datetimeHandler{name: "time"} }

var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseDateTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

type dateHandler struct{}

func (dateHandler) Name() string { return "date" }

func (dateHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	switch t := v.(type) {
	case sieve.Date:
		return t, nil
	case time.Time:
		return sieve.DateOf(t), nil
	case string:
		if parsed, ok := parseDateTimeString(t); ok {
			return sieve.DateOf(parsed), nil
		}
		return nil, typeErr("date")
	case int:
		return sieve.DateOf(time.Unix(int64(t), 0).UTC()), nil
	case int64:
		return sieve.DateOf(time.Unix(t, 0).UTC()), nil
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return sieve.DateOf(time.Unix(n, 0).UTC()), nil
		}
		return nil, typeErr("date")
	default:
		return nil, typeErr("date")
	}
}

func (dateHandler) Check(v any) error {
	if _, ok := v.(sieve.Date); !ok {
		return typeErr("date")
	}
	return nil
}

func (dateHandler) JSONSchema() *js.Schema {
	return &js.Schema{Type: "string", Format: "date"}
}

type datetimeHandler struct{ name string }

func (h datetimeHandler) Name() string { return h.name }

func (h datetimeHandler) Coerce(ctx sieve.Context, v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case sieve.Date:
		return t.Time(), nil
	case string:
		if parsed, ok := parseDateTimeString(t); ok {
			return parsed, nil
		}
		return nil, typeErr(h.name)
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case float64:
		sec, frac := int64(t), t-float64(int64(t))
		return time.Unix(sec, int64(frac*1e9)).UTC(), nil
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return time.Unix(n, 0).UTC(), nil
		}
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			sec, frac := int64(f), f-float64(int64(f))
			return time.Unix(sec, int64(frac*1e9)).UTC(), nil
		}
		return nil, typeErr(h.name)
	default:
		return nil, typeErr(h.name)
	}
}

func (h datetimeHandler) Check(v any) error {
	if _, ok := v.(time.Time); !ok {
		return typeErr(h.name)
	}
	return nil
}

func (datetimeHandler) JSONSchema() *js.Schema {
	return &js.Schema{Type: "string", Format: "date-time"}
}
