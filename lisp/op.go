package lisp

// Special operators receive their arguments unevaluated and decide for
// themselves what to evaluate.

func opQuote(in *Interpreter, env *Env, args *Value) (*Value, error) {
	cells, err := argSlice(QuoteSymbol, args, 1)
	if err != nil {
		return nil, err
	}
	return cells[0], nil
}

// opCond evaluates the value expression of the first clause whose predicate
// is not nil.  Clauses following that one are not inspected.
func opCond(in *Interpreter, env *Env, args *Value) (*Value, error) {
	pos := 1
	for c := args; !c.IsNil(); c = c.Cdr {
		if c.Type != TypePair {
			return nil, berrf("cond", ErrType, "argument list is not a proper list: %v", args)
		}
		clause, ok := c.Car.Slice()
		if !ok || len(clause) != 2 {
			return nil, berrf("cond", ErrType, "clause %d is not a (predicate value) pair: %v", pos, c.Car)
		}
		p, err := in.eval(env, clause[0])
		if err != nil {
			return nil, err
		}
		if !p.IsNil() {
			return in.eval(env, clause[1])
		}
		pos++
	}
	return in.Memory.Nil(), nil
}

func opLambda(in *Interpreter, env *Env, args *Value) (*Value, error) {
	cells, err := argSlice("lambda", args, 2)
	if err != nil {
		return nil, err
	}
	return in.makeClosure(env, cells[0], cells[1])
}

func opDefmacro(in *Interpreter, env *Env, args *Value) (*Value, error) {
	return nil, berrf("defmacro", ErrUnsupported, "macros are not supported")
}
