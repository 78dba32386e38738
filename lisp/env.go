package lisp

import "bytes"

// Binding associates an atom with a value in an Env.
type Binding struct {
	Name  *Value
	Value *Value

	next     *Binding
	released bool
}

// Next returns the binding following b or nil if b is the last binding in its
// environment.
func (b *Binding) Next() *Binding {
	return b.next
}

// Released returns true if b has been released by a Memory arena.
func (b *Binding) Released() bool {
	return b.released
}

// Env is a lisp environment, an ordered association list of bindings.
// Lookup finds the first binding of a name, so prepending a binding shadows
// any existing binding of the same name.  The zero Env is empty.
type Env struct {
	head *Binding
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{}
}

// Front returns the first binding in env or nil if env is empty.
func (env *Env) Front() *Binding {
	if env == nil {
		return nil
	}
	return env.head
}

// Len returns the number of bindings in env, including shadowed bindings.
func (env *Env) Len() int {
	n := 0
	for b := env.Front(); b != nil; b = b.next {
		n++
	}
	return n
}

// Lookup returns the value of the first binding of name in env.
func (env *Env) Lookup(name string) (*Value, bool) {
	b := env.LookupBinding(name)
	if b == nil {
		return nil, false
	}
	return b.Value, true
}

// LookupBinding returns the first binding of name in env, or nil.  The
// returned binding may be modified in place.
func (env *Env) LookupBinding(name string) *Binding {
	for b := env.Front(); b != nil; b = b.next {
		if b.Name != nil && b.Name.Name == name {
			return b
		}
	}
	return nil
}

// Put prepends a binding of name to v.  Put does not copy its arguments; the
// caller must transfer ownership of both values to env.
func (env *Env) Put(name, v *Value) *Binding {
	env.head = &Binding{
		Name:  name,
		Value: v,
		next:  env.head,
	}
	return env.head
}

// Copy returns a deep copy of env.  Every binding and every bound value is
// cloned.
func (env *Env) Copy() Env {
	var cp Env
	var last *Binding
	for b := env.Front(); b != nil; b = b.next {
		c := &Binding{
			Name:  b.Name.Copy(),
			Value: b.Value.Copy(),
		}
		if last == nil {
			cp.head = c
		} else {
			last.next = c
		}
		last = c
	}
	return cp
}

// Bind zips names with values and returns a new environment with the
// resulting frame prepended to base.  The names and values are not copied.
// Bind returns an error when the lists differ in length.
func Bind(names, values *Value, base *Env) (*Env, error) {
	nameCells, ok := names.Slice()
	if !ok {
		return nil, Errorf(ErrType, "parameters are not a list: %v", names)
	}
	valueCells, ok := values.Slice()
	if !ok {
		return nil, Errorf(ErrType, "arguments are not a list: %v", values)
	}
	if len(nameCells) != len(valueCells) {
		return nil, Errorf(ErrArity, "expected %s (got %d)",
			nargs(len(nameCells)), len(valueCells))
	}
	return bindSlice(nameCells, valueCells, base), nil
}

// Join splices back onto the end of front and returns front.  Join modifies
// the last binding of front so the bindings of front must not be shared with
// any other live environment.
func Join(front, back *Env) *Env {
	if front.Front() == nil {
		return &Env{head: back.Front()}
	}
	last := front.head
	for last.next != nil {
		last = last.next
	}
	last.next = back.Front()
	return front
}

func (env *Env) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for b := env.Front(); b != nil; b = b.next {
		if b != env.head {
			buf.WriteString(" ")
		}
		buf.WriteString("(")
		b.Name.write(&buf)
		buf.WriteString(" . ")
		b.Value.write(&buf)
		buf.WriteString(")")
	}
	buf.WriteString(")")
	return buf.String()
}
