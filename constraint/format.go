package constraint

import (
	"regexp"
	"sort"

	sieve "github.com/sievekit/sieve"
)

// The named format catalog is part of the public contract: implementations
// must produce identical accept/reject decisions, so the patterns below are
// fixed and golden-tested.
var namedFormats = map[string]*regexp.Regexp{
	"email":        regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`),
	"url":          regexp.MustCompile(`^https?://[^\s/$.?#][^\s]*$`),
	"uuid":         regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`),
	"phone":        regexp.MustCompile(`^\+?[0-9][0-9\-\s()]{6,19}$`),
	"alphanumeric": regexp.MustCompile(`^[A-Za-z0-9]+$`),
	"alpha":        regexp.MustCompile(`^[A-Za-z]+$`),
	"numeric":      regexp.MustCompile(`^[0-9]+$`),
	"hex":          regexp.MustCompile(`^[0-9a-fA-F]+$`),
	"slug":         regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`),
}

// FormatNames returns the catalog names in ascending order.
func FormatNames() []string {
	out := make([]string, 0, len(namedFormats))
	for k := range namedFormats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Format returns the constraint for a named format from the catalog. An
// unknown name panics with an ArgumentError; the catalog is closed.
func Format(name string) sieve.Constraint {
	re, ok := namedFormats[name]
	if !ok {
		panic(sieve.NewArgumentError("unknown format %q", name))
	}
	return formatConstraint{label: name, re: re}
}

// Pattern returns a format constraint backed by an arbitrary compiled
// regexp.
func Pattern(re *regexp.Regexp) sieve.Constraint {
	if re == nil {
		panic(sieve.NewArgumentError("pattern requires a compiled regexp"))
	}
	return formatConstraint{label: re.String(), re: re}
}

// PatternString compiles expr and returns its format constraint, panicking
// with an ArgumentError on a malformed expression.
func PatternString(expr string) sieve.Constraint {
	re, err := regexp.Compile(expr)
	if err != nil {
		panic(sieve.NewArgumentError("invalid pattern %q: %v", expr, err))
	}
	return Pattern(re)
}

type formatConstraint struct {
	label string
	re    *regexp.Regexp
}

func (formatConstraint) Name() string { return "format" }

func (c formatConstraint) Check(v any) *sieve.Error {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if !c.re.MatchString(s) {
		return mkErr(sieve.CodeFormat, map[string]any{"format": c.label})
	}
	return nil
}

func (c formatConstraint) Describe() map[string]any {
	if _, named := namedFormats[c.label]; named {
		return map[string]any{"format": c.label}
	}
	return map[string]any{"pattern": c.re.String()}
}

// PatternOf exposes the compiled pattern of a format constraint for JSON
// Schema export; ok is false for non-format constraints.
func PatternOf(c sieve.Constraint) (string, bool) {
	fc, ok := c.(formatConstraint)
	if !ok {
		return "", false
	}
	return fc.re.String(), true
}
