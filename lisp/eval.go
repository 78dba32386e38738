package lisp

import "fmt"

// eval evaluates v in the context (scope) of env and returns the resulting
// value.
func (in *Interpreter) eval(env *Env, v *Value) (*Value, error) {
	if v == nil {
		return in.Memory.Nil(), nil
	}
	if v.released {
		return nil, Errorf(ErrReleased, "released value used as expression")
	}
	switch v.Type {
	case TypeInt, TypeFloat, TypePrimitive, TypeClosure:
		return v, nil
	case TypeAtom:
		if v.IsTruth() {
			return v, nil
		}
		val, ok := env.Lookup(v.Name)
		if !ok {
			return nil, Errorf(ErrVariableNotFound, "unbound symbol: %s", v.Name)
		}
		return val, nil
	case TypePair:
		if v.IsNil() {
			return v, nil
		}
		op, err := in.eval(env, v.Car)
		if err != nil {
			return nil, err
		}
		return in.apply(env, op, v.Cdr)
	default:
		return nil, Errorf(ErrInternal, "cannot evaluate value of type %v", v.Type)
	}
}

// apply invokes op with the unevaluated argument list args.
func (in *Interpreter) apply(env *Env, op *Value, args *Value) (*Value, error) {
	if op == nil {
		return nil, Errorf(ErrNotApplicable, "value is not applicable: ()")
	}
	switch op.Type {
	case TypePrimitive:
		return op.Prim.Fn(in, env, args)
	case TypeClosure:
		return in.applyClosure(env, op.Closure, args)
	default:
		return nil, Errorf(ErrNotApplicable, "value is not applicable: %v", op)
	}
}

// evalArgs checks that args is a list of n expressions and evaluates each of
// them in env.
func (in *Interpreter) evalArgs(env *Env, op string, args *Value, n int) ([]*Value, error) {
	cells, err := argSlice(op, args, n)
	if err != nil {
		return nil, err
	}
	for i := range cells {
		cells[i], err = in.eval(env, cells[i])
		if err != nil {
			return nil, err
		}
	}
	return cells, nil
}

// argSlice checks that args is a proper list of n expressions and returns
// them.
func argSlice(op string, args *Value, n int) ([]*Value, error) {
	cells, ok := args.Slice()
	if !ok {
		return nil, berrf(op, ErrType, "argument list is not a proper list: %v", args)
	}
	if len(cells) != n {
		return nil, berrf(op, ErrArity, "expected %s (got %d)", nargs(n), len(cells))
	}
	return cells, nil
}

func nargs(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", n)
}
