package lisp

import (
	"bytes"
	"strconv"
	"strings"
)

// Type is the type of a Value
type Type uint

// Possible Type values
const (
	TypeInvalid Type = iota
	TypeAtom
	TypePair
	TypePrimitive
	TypeClosure
	TypeInt
	TypeFloat
)

var typeStrings = []string{
	TypeInvalid:   "INVALID",
	TypeAtom:      "atom",
	TypePair:      "pair",
	TypePrimitive: "primitive",
	TypeClosure:   "closure",
	TypeInt:       "integer",
	TypeFloat:     "float",
}

func (t Type) String() string {
	if int(t) >= len(typeStrings) {
		return typeStrings[TypeInvalid]
	}
	return typeStrings[t]
}

// PrimitiveFunc performs a built-in operation.  It receives the unevaluated
// argument list and the environment of the call and is responsible for
// evaluating (or not evaluating) its own arguments.
type PrimitiveFunc func(in *Interpreter, env *Env, args *Value) (*Value, error)

// Primitive is a named built-in operation.  Primitive values compare equal
// only when they reference the same Primitive.
type Primitive struct {
	Name string
	Fn   PrimitiveFunc
}

// Closure is a procedure created by lambda.  Captured holds copies of the
// free variables of Body which were bound when the closure was created.
type Closure struct {
	Params   *Value
	Body     *Value
	Captured Env
}

// Value is a lisp value
type Value struct {
	Type Type

	// Atom name
	Name string

	// Pair fields.  A pair with both fields absent is the empty list.
	Car *Value
	Cdr *Value

	Int   int32
	Float float32

	Prim    *Primitive
	Closure *Closure

	released bool
}

// Atom returns a Value representing the symbol name.
func Atom(name string) *Value {
	return &Value{
		Type: TypeAtom,
		Name: name,
	}
}

// Truth returns the atom t.
func Truth() *Value {
	return Atom(TruthSymbol)
}

// Nil returns a Value representing nil, the empty list.
func Nil() *Value {
	return &Value{Type: TypePair}
}

// Cons returns a new pair with the given car and cdr.
func Cons(car, cdr *Value) *Value {
	return &Value{
		Type: TypePair,
		Car:  car,
		Cdr:  cdr,
	}
}

// List returns a proper list containing the values in v.
func List(v ...*Value) *Value {
	lis := Nil()
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// Int returns a Value representing the integer x.
func Int(x int32) *Value {
	return &Value{
		Type: TypeInt,
		Int:  x,
	}
}

// Float returns a Value representing the float x.
func Float(x float32) *Value {
	return &Value{
		Type:  TypeFloat,
		Float: x,
	}
}

// Prim returns a Value referencing the primitive p.
func Prim(p *Primitive) *Value {
	return &Value{
		Type: TypePrimitive,
		Prim: p,
	}
}

// IsNil returns true if v is the empty list.  A nil pointer is also treated as
// the empty list.
func (v *Value) IsNil() bool {
	return v == nil || (v.Type == TypePair && v.Car == nil && v.Cdr == nil)
}

// IsTruth returns true if v is the truth atom.
func (v *Value) IsTruth() bool {
	return v != nil && v.Type == TypeAtom && v.Name == TruthSymbol
}

// IsNumeric returns true if v is an integer or a float.
func (v *Value) IsNumeric() bool {
	return v != nil && (v.Type == TypeInt || v.Type == TypeFloat)
}

// IsList returns true if v is a pair or nil.
func (v *Value) IsList() bool {
	return v == nil || v.Type == TypePair
}

// Released returns true if v has been released by a Memory arena.  A released
// value must never be reachable from a live environment.
func (v *Value) Released() bool {
	return v != nil && v.released
}

// Slice returns the elements of the proper list v.  Slice returns false if v
// is not a proper list.
func (v *Value) Slice() ([]*Value, bool) {
	var cells []*Value
	for !v.IsNil() {
		if v.Type != TypePair {
			return nil, false
		}
		cells = append(cells, v.Car)
		v = v.Cdr
	}
	return cells, true
}

// Copy creates a deep copy of the receiver.  Atoms, pairs and closures are
// cloned recursively.  The copy shares only Primitive references.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	cp := &Value{}
	*cp = *v // shallow copy of all fields
	cp.Car = v.Car.Copy()
	cp.Cdr = v.Cdr.Copy()
	if v.Closure != nil {
		cp.Closure = v.Closure.Copy()
	}
	return cp
}

// Copy creates a deep copy of c.
func (c *Closure) Copy() *Closure {
	return &Closure{
		Params:   c.Params.Copy(),
		Body:     c.Body.Copy(),
		Captured: c.Captured.Copy(),
	}
}

// Compare reports whether a and b are equal.  Numbers compare by value, with
// floats used when either operand is a float.  Pairs compare by the identity
// of their car and cdr fields and not by their contents.  Closures never
// compare equal.
func Compare(a, b *Value) bool {
	if a.IsNil() || b.IsNil() {
		return a.IsNil() && b.IsNil()
	}
	if a.IsNumeric() && b.IsNumeric() {
		if a.Type == TypeFloat || b.Type == TypeFloat {
			return toFloat(a) == toFloat(b)
		}
		return a.Int == b.Int
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TypeAtom:
		return a.Name == b.Name
	case TypePair:
		return a.Car == b.Car && a.Cdr == b.Cdr
	case TypePrimitive:
		return a.Prim == b.Prim
	default:
		return false
	}
}

func (v *Value) String() string {
	var buf bytes.Buffer
	v.write(&buf)
	return buf.String()
}

func (v *Value) write(buf *bytes.Buffer) {
	if v.Released() {
		buf.WriteString("<released>")
		return
	}
	if v.IsNil() {
		buf.WriteString("()")
		return
	}
	switch v.Type {
	case TypeAtom:
		buf.WriteString(v.Name)
	case TypeInt:
		buf.WriteString(strconv.FormatInt(int64(v.Int), 10))
	case TypeFloat:
		buf.WriteString(formatFloat(v.Float))
	case TypePrimitive:
		buf.WriteString("<primitive ")
		buf.WriteString(v.Prim.Name)
		buf.WriteString(">")
	case TypeClosure:
		buf.WriteString("(lambda ")
		v.Closure.Params.write(buf)
		buf.WriteString(" ")
		v.Closure.Body.write(buf)
		buf.WriteString(")")
	case TypePair:
		buf.WriteString("(")
		v.Car.write(buf)
		for tail := v.Cdr; !tail.IsNil(); tail = tail.Cdr {
			if tail.Type != TypePair || tail.Released() {
				buf.WriteString(" . ")
				tail.write(buf)
				break
			}
			buf.WriteString(" ")
			tail.Car.write(buf)
		}
		buf.WriteString(")")
	default:
		buf.WriteString("<invalid>")
	}
}

// formatFloat always includes a decimal point or an exponent so that floats
// are read back as floats.
func formatFloat(x float32) string {
	s := strconv.FormatFloat(float64(x), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func toFloat(v *Value) float64 {
	if v.Type == TypeFloat {
		return float64(v.Float)
	}
	return float64(v.Int)
}
