package lisp

import "github.com/bmatsuo/minilisp/lisp/internal/tracker"

// releaser is a node owned by a Memory arena.
type releaser interface {
	release()
}

// Memory tracks the values allocated while evaluating one top-level
// expression and releases all of them at once.  Memory performs no
// reachability analysis.  Anything that must outlive the current evaluation
// has to be copied out of the arena before ReleaseAll is called, which is what
// set, lambda and closure application do.
type Memory struct {
	nodes *tracker.List[releaser]
	gen   uint64
}

// NewMemory returns an empty arena.
func NewMemory() *Memory {
	return &Memory{
		nodes: tracker.New(func(n releaser) { n.release() }),
	}
}

// Generation returns the number of times the arena has been released.
func (m *Memory) Generation() uint64 {
	return m.gen
}

// Len returns the number of nodes currently tracked.
func (m *Memory) Len() int {
	return m.nodes.Len()
}

// Track registers the single node v.
func (m *Memory) Track(v *Value) *Value {
	if v != nil {
		m.nodes.Append(v)
	}
	return v
}

// TrackRecursive registers v and every value reachable from it, including the
// parameters, body and captured bindings of closures.
func (m *Memory) TrackRecursive(root *Value) *Value {
	for v := root; v != nil; v = v.Cdr {
		m.nodes.Append(v)
		if v.Closure != nil {
			m.TrackRecursive(v.Closure.Params)
			m.TrackRecursive(v.Closure.Body)
			for b := v.Closure.Captured.Front(); b != nil; b = b.next {
				m.trackBinding(b)
				m.TrackRecursive(b.Name)
				m.TrackRecursive(b.Value)
			}
		}
		m.TrackRecursive(v.Car)
	}
	return root
}

// TrackBindings registers the bindings starting at from and ending before
// stop.  The bound values are not registered.
func (m *Memory) TrackBindings(from, stop *Binding) {
	for b := from; b != nil && b != stop; b = b.next {
		m.trackBinding(b)
	}
}

func (m *Memory) trackBinding(b *Binding) {
	m.nodes.Append(b)
}

// ReleaseAll releases every tracked node in registration order and empties
// the arena.  Values returned by evaluation must not be used after
// ReleaseAll.
func (m *Memory) ReleaseAll() int {
	n := m.nodes.Len()
	m.nodes.Clear()
	m.gen++
	return n
}

// Truth allocates a tracked truth atom.
func (m *Memory) Truth() *Value {
	return m.Track(Truth())
}

// Nil allocates a tracked empty list.
func (m *Memory) Nil() *Value {
	return m.Track(Nil())
}

// Cons allocates a tracked pair.  Only the new pair is tracked.
func (m *Memory) Cons(car, cdr *Value) *Value {
	return m.Track(Cons(car, cdr))
}

// Int allocates a tracked integer.
func (m *Memory) Int(x int32) *Value {
	return m.Track(Int(x))
}

// Float allocates a tracked float.
func (m *Memory) Float(x float32) *Value {
	return m.Track(Float(x))
}

// Bool returns a tracked truth atom if ok is true and a tracked nil otherwise.
func (m *Memory) Bool(ok bool) *Value {
	if ok {
		return m.Truth()
	}
	return m.Nil()
}

// release frees the structure of v.  Referenced values are released only if
// they were tracked themselves.
func (v *Value) release() {
	v.released = true
	v.Car = nil
	v.Cdr = nil
	v.Closure = nil
	v.Prim = nil
}

func (b *Binding) release() {
	b.released = true
	b.Name = nil
	b.Value = nil
	b.next = nil
}
