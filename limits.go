package sieve

import "github.com/sievekit/sieve/i18n"

// ParseOpt bounds the work a single parse may perform. Parses never suspend
// and perform no I/O, so input shape is the only cost driver; the caps keep
// adversarially deep or wide inputs from exhausting the stack or the clock.
type ParseOpt struct {
	MaxDepth int // Maximum nesting depth of mappings and sequences.
	MaxItems int // Maximum length of any single sequence.
}

// DefaultParseOpt returns the default caps.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{MaxDepth: 64, MaxItems: 10_000}
}

// CheckLimits walks v and returns a resource_limit error for each location
// that exceeds the caps. Descent stops at the first violation on each
// branch.
func CheckLimits(v any, opt ParseOpt) ErrorCollection {
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultParseOpt().MaxDepth
	}
	if opt.MaxItems <= 0 {
		opt.MaxItems = DefaultParseOpt().MaxItems
	}
	var errs ErrorCollection
	checkLimitsAt(v, Path{}, 0, opt, &errs)
	return errs
}

func checkLimitsAt(v any, path Path, depth int, opt ParseOpt, errs *ErrorCollection) {
	if depth > opt.MaxDepth {
		errs.Push(Error{
			Path:    path,
			Code:    CodeResourceLimit,
			Message: i18n.T(CodeResourceLimit, map[string]any{"limit": "depth", "max": opt.MaxDepth}),
			Params:  map[string]any{"limit": "depth", "max": opt.MaxDepth},
		})
		return
	}
	switch t := v.(type) {
	case *OrderedMap:
		t.Range(func(k string, val any) bool {
			checkLimitsAt(val, path.Child(k), depth+1, opt, errs)
			return true
		})
	case map[string]any:
		for k, val := range t {
			checkLimitsAt(val, path.Child(k), depth+1, opt, errs)
		}
	case []any:
		if len(t) > opt.MaxItems {
			errs.Push(Error{
				Path:    path,
				Code:    CodeResourceLimit,
				Message: i18n.T(CodeResourceLimit, map[string]any{"limit": "items", "max": opt.MaxItems}),
				Params:  map[string]any{"limit": "items", "max": opt.MaxItems},
			})
			return
		}
		for i, val := range t {
			checkLimitsAt(val, path.ChildIndex(i), depth+1, opt, errs)
		}
	}
}
