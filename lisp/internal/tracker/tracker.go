// Package tracker provides an append-only sequence whose elements are handed
// to a cleanup function when the sequence is cleared.
package tracker

// List is a growable sequence of tracked elements.  The zero value is usable
// and performs no cleanup.
type List[T any] struct {
	items   []T
	cleanup func(T)
}

// New returns a List that calls cleanup on every element during Clear.
func New[T any](cleanup func(T)) *List[T] {
	return &List[T]{cleanup: cleanup}
}

// Append adds x to the end of l.
func (l *List[T]) Append(x T) {
	l.items = append(l.items, x)
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Clear runs the cleanup function on every element in insertion order and
// then empties l.  The backing storage is retained for reuse.
func (l *List[T]) Clear() {
	if l.cleanup != nil {
		for _, x := range l.items {
			l.cleanup(x)
		}
	}
	var zero T
	for i := range l.items {
		l.items[i] = zero
	}
	l.items = l.items[:0]
}
