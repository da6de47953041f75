package sieve

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// PathSegment is one step of a Path: either a mapping key or a sequence
// index.
type PathSegment struct {
	key     string
	index   int
	isIndex bool
}

// Key builds a key segment.
func Key(name string) PathSegment { return PathSegment{key: name} }

// Index builds an index segment.
func Index(i int) PathSegment { return PathSegment{index: i, isIndex: true} }

// IsIndex reports whether the segment addresses a sequence element.
func (s PathSegment) IsIndex() bool { return s.isIndex }

// KeyName returns the mapping key; empty for index segments.
func (s PathSegment) KeyName() string { return s.key }

// IndexValue returns the sequence index; zero for key segments.
func (s PathSegment) IndexValue() int { return s.index }

// Value returns the segment as a primitive: string for keys, int for
// indices. This is the form used by error-report dumps.
func (s PathSegment) Value() any {
	if s.isIndex {
		return s.index
	}
	return s.key
}

// MarshalJSON emits the primitive form of the segment.
func (s PathSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value())
}

// Path addresses a location in a nested input: an ordered sequence of key
// and index segments. The zero value addresses the root.
type Path []PathSegment

// Child returns a new Path extended by a key segment. The receiver is not
// modified; the returned path owns its own backing array so sibling
// extensions never alias.
func (p Path) Child(name string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = Key(name)
	return out
}

// ChildIndex returns a new Path extended by an index segment.
func (p Path) ChildIndex(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = Index(i)
	return out
}

// Join returns a new Path that is p followed by all segments of q.
func (p Path) Join(q Path) Path {
	if len(q) == 0 {
		return p
	}
	out := make(Path, 0, len(p)+len(q))
	out = append(out, p...)
	out = append(out, q...)
	return out
}

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool { return len(p) == 0 }

// String renders the path in diagnostic form: dotted keys with bracketed
// indices, e.g. "user.addresses[2].zip". The root path renders empty.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, seg := range p {
		if seg.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.key)
	}
	return b.String()
}

// Equal reports structural equality of two paths.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p starts with all segments of prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}
