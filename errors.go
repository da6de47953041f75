package sieve

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Error codes (exported consts for IDE completion and type safety by
// convention). The set is closed: every diagnostic the engine emits carries
// exactly one of these codes.
const (
	CodeRequired             = "required"
	CodeTypeError            = "type_error"
	CodePreprocessError      = "preprocess_error"
	CodeTransformError       = "transform_error"
	CodeMin                  = "min"
	CodeMax                  = "max"
	CodeLength               = "length"
	CodeFormat               = "format"
	CodeEnum                 = "enum"
	CodeRefinement           = "refinement"
	CodeUnionTypeError       = "union_type_error"
	CodeLiteralMismatch      = "literal_mismatch"
	CodeUnknownKey           = "unknown_key"
	CodeDuplicateField       = "duplicate_field"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeInvalidDiscriminator = "invalid_discriminator"
	CodeCustom               = "custom"
	CodeArgumentError        = "argument_error"
	CodeResourceLimit        = "resource_limit"
)

// Error is a single validation diagnostic. Errors are immutable once
// constructed.
type Error struct {
	Path    Path
	Code    string
	Message string
	// Params carries structured parameters (e.g., {"min":1, "max":10}) for
	// message templating and introspection.
	Params map[string]any
}

// NewError constructs an Error. It is total: any combination of arguments
// yields a usable value.
func NewError(path Path, code, message string) Error {
	return Error{Path: path, Code: code, Message: message}
}

// String renders the canonical form "<dotted path>: <message>", or just the
// message when the path is empty.
func (e Error) String() string {
	if e.Path.IsRoot() {
		return e.Message
	}
	return e.Path.String() + ": " + e.Message
}

// Equal reports structural equality of path, code and message. Params are
// intentionally excluded; they are presentation metadata.
func (e Error) Equal(o Error) bool {
	return e.Code == o.Code && e.Message == o.Message && e.Path.Equal(o.Path)
}

// Rebase returns a copy of the error with prefix prepended to its path.
func (e Error) Rebase(prefix Path) Error {
	e.Path = prefix.Join(e.Path)
	return e
}

// MarshalJSON emits the error-report form used by Failure dumps:
// {"path":[seg…],"message":…,"code":…} where segments are strings (keys) or
// integers (indices).
func (e Error) MarshalJSON() ([]byte, error) {
	segs := make([]any, 0, len(e.Path))
	for _, s := range e.Path {
		segs = append(segs, s.Value())
	}
	return json.Marshal(map[string]any{
		"path":    segs,
		"message": e.Message,
		"code":    e.Code,
	})
}

// ErrorCollection is an ordered sequence of Errors that implements error.
type ErrorCollection []Error

// AppendErrors appends errors to the destination, initializing the slice
// when needed.
func AppendErrors(dst ErrorCollection, more ...Error) ErrorCollection {
	if dst == nil {
		dst = ErrorCollection{}
	}
	return append(dst, more...)
}

// Push appends a single error.
func (ec *ErrorCollection) Push(e Error) { *ec = append(*ec, e) }

// Extend appends every error of other, preserving order.
func (ec *ErrorCollection) Extend(other ErrorCollection) { *ec = append(*ec, other...) }

// IsEmpty reports whether the collection holds no errors.
func (ec ErrorCollection) IsEmpty() bool { return len(ec) == 0 }

// Len returns the number of errors.
func (ec ErrorCollection) Len() int { return len(ec) }

// Error summarizes the collection, one canonical line per entry joined by
// "; ".
func (ec ErrorCollection) Error() string {
	if len(ec) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ec))
	for _, e := range ec {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}

// Rebase returns a new collection with prefix prepended to every path.
func (ec ErrorCollection) Rebase(prefix Path) ErrorCollection {
	if prefix.IsRoot() || len(ec) == 0 {
		return ec
	}
	out := make(ErrorCollection, 0, len(ec))
	for _, e := range ec {
		out = append(out, e.Rebase(prefix))
	}
	return out
}

// GroupByPath maps each distinct rendered path to the messages recorded
// under it, in first-seen order of insertion within each group.
func (ec ErrorCollection) GroupByPath() map[string][]string {
	out := make(map[string][]string, len(ec))
	for _, e := range ec {
		k := e.Path.String()
		out[k] = append(out[k], e.Message)
	}
	return out
}

// FilterByPrefix returns the subsequence of errors whose path starts with
// prefix.
func (ec ErrorCollection) FilterByPrefix(prefix Path) ErrorCollection {
	var out ErrorCollection
	for _, e := range ec {
		if e.Path.HasPrefix(prefix) {
			out = append(out, e)
		}
	}
	return out
}

// AsErrors extracts an ErrorCollection from an error using errors.As.
func AsErrors(err error) (ErrorCollection, bool) {
	if err == nil {
		return nil, false
	}
	var ec ErrorCollection
	if errors.As(err, &ec) {
		return ec, true
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Errors, true
	}
	return nil, false
}

// ValidationError is the aggregate failure returned by Schema.Parse when the
// underlying SafeParse produces a Failure.
type ValidationError struct {
	Errors ErrorCollection
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Errors.Error())
}

// ArgumentError signals caller misuse: non-mapping input, an invalid context
// value, a duplicate field name at build time, or an unknown type or format
// name. It is raised through panics, mirroring the fatal-error channel, and
// is distinct from validation outcomes which are always collected.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return "argument_error: " + e.Message }

// NewArgumentError builds an ArgumentError with a formatted message.
func NewArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Message: fmt.Sprintf(format, args...)}
}
