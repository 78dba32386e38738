package lisp

type langPrimitive struct {
	name string
	fun  PrimitiveFunc
}

var userPrimitives []*langPrimitive
var langPrimitives = []*langPrimitive{
	{"quote", opQuote},
	{"atom", builtinAtom},
	{"eq", builtinEq},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"cons", builtinCons},
	{"cond", opCond},
	{"set", builtinSet},
	{"env", builtinEnv},
	{"lambda", opLambda},
	{"defmacro", opDefmacro},
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"%", builtinMod},
	{"mod", builtinMod},
	{"=", builtinEqNum},
	{">", builtinGT},
	{">=", builtinGEq},
	{"<", builtinLT},
	{"<=", builtinLEq},
}

// RegisterDefaultPrimitive adds the given function to the list returned by
// DefaultPrimitives.
func RegisterDefaultPrimitive(name string, fn PrimitiveFunc) {
	userPrimitives = append(userPrimitives, &langPrimitive{name, fn})
}

// DefaultPrimitives returns the primitives bound in the root environment of a
// new Interpreter.  Each call returns new Primitive values.
func DefaultPrimitives() []*Primitive {
	prims := make([]*Primitive, 0, len(langPrimitives)+len(userPrimitives))
	for _, p := range langPrimitives {
		prims = append(prims, &Primitive{Name: p.name, Fn: p.fun})
	}
	for _, p := range userPrimitives {
		prims = append(prims, &Primitive{Name: p.name, Fn: p.fun})
	}
	return prims
}

func builtinAtom(in *Interpreter, env *Env, args *Value) (*Value, error) {
	cells, err := in.evalArgs(env, "atom", args, 1)
	if err != nil {
		return nil, err
	}
	v := cells[0]
	return in.Memory.Bool(v.IsNil() || v.Type == TypeAtom || v.IsNumeric()), nil
}

// builtinEq compares lists by the identity of their cells, so two lists with
// equal contents built separately are not eq.
func builtinEq(in *Interpreter, env *Env, args *Value) (*Value, error) {
	cells, err := in.evalArgs(env, "eq", args, 2)
	if err != nil {
		return nil, err
	}
	return in.Memory.Bool(Compare(cells[0], cells[1])), nil
}

func builtinCAR(in *Interpreter, env *Env, args *Value) (*Value, error) {
	cells, err := in.evalArgs(env, "car", args, 1)
	if err != nil {
		return nil, err
	}
	lis := cells[0]
	if !lis.IsList() {
		return nil, berrf("car", ErrType, "argument is not a list: %v", lis.Type)
	}
	if lis.IsNil() || lis.Car == nil {
		return in.Memory.Nil(), nil
	}
	return lis.Car, nil
}

func builtinCDR(in *Interpreter, env *Env, args *Value) (*Value, error) {
	cells, err := in.evalArgs(env, "cdr", args, 1)
	if err != nil {
		return nil, err
	}
	lis := cells[0]
	if !lis.IsList() {
		return nil, berrf("cdr", ErrType, "argument is not a list: %v", lis.Type)
	}
	if lis.IsNil() || lis.Cdr == nil {
		return in.Memory.Nil(), nil
	}
	return lis.Cdr, nil
}

func builtinCons(in *Interpreter, env *Env, args *Value) (*Value, error) {
	cells, err := in.evalArgs(env, "cons", args, 2)
	if err != nil {
		return nil, err
	}
	if !cells[1].IsList() {
		return nil, berrf("cons", ErrType, "second argument is not a list: %v", cells[1].Type)
	}
	return in.Memory.Cons(cells[0], cells[1]), nil
}

// builtinSet binds a copy of the value to the name.  An existing binding is
// overwritten in place and the value it held is handed to the arena, which
// keeps it valid until the end of the turn.  This is what allows a variable
// to be replaced with a function of itself.
func builtinSet(in *Interpreter, env *Env, args *Value) (*Value, error) {
	cells, err := in.evalArgs(env, "set", args, 2)
	if err != nil {
		return nil, err
	}
	sym := cells[0]
	if sym.IsNil() || sym.Type != TypeAtom {
		return nil, berrf("set", ErrType, "first argument is not an atom: %v", sym)
	}
	if sym.IsTruth() {
		return nil, berrf("set", ErrType, "cannot rebind constant: %v", sym)
	}
	v := cells[1].Copy()
	if b := env.LookupBinding(sym.Name); b != nil {
		old := b.Value
		b.Value = v
		in.Memory.TrackRecursive(old)
		return v, nil
	}
	env.Put(Atom(sym.Name), v)
	return v, nil
}

// builtinEnv returns the current environment as an association list.
func builtinEnv(in *Interpreter, env *Env, args *Value) (*Value, error) {
	_, err := argSlice("env", args, 0)
	if err != nil {
		return nil, err
	}
	var pairs []*Value
	for b := env.Front(); b != nil; b = b.next {
		pairs = append(pairs, in.Memory.Cons(b.Name, b.Value))
	}
	lis := in.Memory.Nil()
	for i := len(pairs) - 1; i >= 0; i-- {
		lis = in.Memory.Cons(pairs[i], lis)
	}
	return lis, nil
}
