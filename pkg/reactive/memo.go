package reactive

import "reflect"

// Scope is the hook storage of one mounted component. Memo calls are matched
// to their slot by call order, so a component must make the same Memo calls
// in the same order on every render, starting each render with Begin.
type Scope struct {
	slots []slot
	pos   int
}

type slot struct {
	deps  []any
	value any
}

// Begin rewinds the scope before a render.
func (s *Scope) Begin() {
	s.pos = 0
}

// Memo returns the value cached in the next slot of s when deps are shallowly
// equal to the deps it was built with; otherwise it calls build, caches the
// result and returns it.
func Memo[T any](s *Scope, build func() T, deps ...any) T {
	i := s.pos
	s.pos++
	if i < len(s.slots) {
		sl := &s.slots[i]
		if v, ok := sl.value.(T); ok && DepsEqual(sl.deps, deps) {
			return v
		}
		v := build()
		sl.deps = append([]any(nil), deps...)
		sl.value = v
		return v
	}
	v := build()
	s.slots = append(s.slots, slot{deps: append([]any(nil), deps...), value: v})
	return v
}

// DepsEqual compares two dependency lists element by element with ==.
// Elements of uncomparable types never compare equal.
func DepsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !shallowEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func shallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
