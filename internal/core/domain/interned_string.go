package domain

import "unique"

// InternedString holds a workspace package name (or other repeated
// identifier) as a unique.Handle[string] rather than a plain string. A
// package name is read from its manifest once but referenced from the
// dependency graph, the cache manifest, and every FileIndex entry for that
// package; interning collapses all of those copies onto one backing string
// and makes equality between two InternedStrings an O(1) handle compare
// instead of a byte-by-byte one.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// NewInternedStrings interns every element of ss, preserving order.
func NewInternedStrings(ss []string) []InternedString {
	out := make([]InternedString, len(ss))
	for i, s := range ss {
		out[i] = NewInternedString(s)
	}
	return out
}

// String returns the interned string, or "" for the zero InternedString
// (e.g. an unset struct field never passed through NewInternedString).
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// Equal reports whether is and other were interned from equal strings,
// without touching either backing string.
func (is InternedString) Equal(other InternedString) bool {
	return is.h == other.h
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}

// MarshalText implements encoding.TextMarshaler, writing the interned
// string's bytes (package names round-trip through cache.json this way).
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.h.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, interning the decoded
// text under a fresh handle.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
