// Package reactive provides the small observable primitives the form tab
// controller is built on: a Cell that notifies subscribers synchronously on
// write, and a hook Scope that memoises values against a dependency list.
//
// Nothing here is safe for concurrent use. Cells live on the UI goroutine.
package reactive

// Cell is an observable value.
type Cell[T comparable] struct {
	value T
	subs  []subscriber[T]
	next  int
}

type subscriber[T comparable] struct {
	id int
	fn func(T)
}

// NewCell returns a cell holding v.
func NewCell[T comparable](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores v and, if it differs from the current value, calls every
// subscriber in subscription order before returning.
func (c *Cell[T]) Set(v T) {
	if c.value == v {
		return
	}
	c.value = v
	subs := append([]subscriber[T](nil), c.subs...)
	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribe registers fn and returns a func that removes it.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.next++
	id := c.next
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
