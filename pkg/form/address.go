package form

import "strings"

// Address is the path of a field inside the form tree, including layout
// (void) nodes such as tab panes.
type Address []string

// ParseAddress splits a dotted address. The empty string is the root.
func ParseAddress(s string) Address {
	if s == "" {
		return nil
	}
	return Address(strings.Split(s, "."))
}

// Concat returns a new address with segs appended.
func (a Address) Concat(segs ...string) Address {
	out := make(Address, 0, len(a)+len(segs))
	out = append(out, a...)
	return append(out, segs...)
}

func (a Address) String() string {
	return strings.Join(a, ".")
}

// Equal reports whether a and b have the same segments.
func (a Address) Equal(b Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p is a (non-strict) prefix of a.
func (a Address) HasPrefix(p Address) bool {
	return len(p) <= len(a) && a[:len(p)].Equal(p)
}

// Match reports whether a matches a dotted pattern. A "*" segment matches
// exactly one segment, except as the final segment where it matches one or
// more trailing segments, so "tabs.account.*" covers every descendant of
// "tabs.account" but not the pane itself.
func (a Address) Match(pattern string) bool {
	pat := ParseAddress(pattern)
	for i, seg := range pat {
		last := i == len(pat)-1
		if i >= len(a) {
			return false
		}
		if seg == "*" {
			if last {
				return true
			}
			continue
		}
		if seg != a[i] {
			return false
		}
	}
	return len(a) == len(pat)
}
