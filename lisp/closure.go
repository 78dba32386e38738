package lisp

// makeClosure creates a closure with copies of params and body.  Every free
// variable of body that is bound in env is copied into the closure, so later
// changes to env are not visible to the closure.
func (in *Interpreter) makeClosure(env *Env, params, body *Value) (*Value, error) {
	err := checkParams(params)
	if err != nil {
		return nil, err
	}
	c := &Closure{
		Params: params.Copy(),
		Body:   body.Copy(),
	}
	captureVariables(&c.Captured, c.Body, c.Params, env)
	return in.Memory.TrackRecursive(&Value{Type: TypeClosure, Closure: c}), nil
}

func checkParams(params *Value) error {
	if !params.IsList() {
		return berrf("lambda", ErrInvalidParameter, "parameters are not a list: %v", params)
	}
	pos := 1
	for p := params; !p.IsNil(); p = p.Cdr {
		if p.Type != TypePair {
			return berrf("lambda", ErrInvalidParameter, "parameters are not a proper list: %v", params)
		}
		x := p.Car
		switch {
		case x.IsNil():
			return berrf("lambda", ErrInvalidParameter, "parameter %d is nil", pos)
		case x.Type != TypeAtom:
			return berrf("lambda", ErrInvalidParameter, "parameter %d is not an atom: %v", pos, x)
		case x.IsTruth():
			return berrf("lambda", ErrInvalidParameter, "parameter %d is the constant %s", pos, x)
		}
		pos++
	}
	return nil
}

// captureVariables walks v depth-first and copies the binding of every atom
// that is not a parameter and is bound in ambient into captured.
func captureVariables(captured *Env, v, params *Value, ambient *Env) {
	if v == nil {
		return
	}
	switch v.Type {
	case TypeAtom:
		if isParam(params, v.Name) || captured.LookupBinding(v.Name) != nil {
			return
		}
		b := ambient.LookupBinding(v.Name)
		if b == nil {
			return
		}
		captured.Put(b.Name.Copy(), b.Value.Copy())
	case TypePair:
		captureVariables(captured, v.Car, params, ambient)
		captureVariables(captured, v.Cdr, params, ambient)
	}
}

func isParam(params *Value, name string) bool {
	for p := params; !p.IsNil(); p = p.Cdr {
		if p.Car.Name == name {
			return true
		}
	}
	return false
}

// applyClosure evaluates args in env and calls c.  When fewer arguments than
// parameters are given the result is a new closure awaiting the remaining
// parameters.
func (in *Interpreter) applyClosure(env *Env, c *Closure, args *Value) (*Value, error) {
	argCells, ok := args.Slice()
	if !ok {
		return nil, Errorf(ErrType, "argument list is not a proper list: %v", args)
	}
	params, _ := c.Params.Slice()
	if len(argCells) > len(params) {
		return nil, Errorf(ErrArity, "closure expects %s (got %d)",
			nargs(len(params)), len(argCells))
	}
	values := make([]*Value, len(argCells))
	for i, arg := range argCells {
		v, err := in.eval(env, arg)
		if err != nil {
			return nil, err
		}
		values[i] = in.Memory.TrackRecursive(v.Copy())
	}
	if len(values) < len(params) {
		return in.partial(c, params, values), nil
	}

	// The call environment is the closure's captured bindings, then the
	// parameter bindings, then the caller's environment.  All of the call's
	// own bindings are copies released with the current turn and env is
	// left untouched.
	captured := c.Captured.Copy()
	for b := captured.Front(); b != nil; b = b.next {
		in.Memory.TrackRecursive(b.Name)
		in.Memory.TrackRecursive(b.Value)
	}
	local, err := Bind(c.Params, List(values...), env)
	if err != nil {
		return nil, err
	}
	call := Join(&captured, local)
	in.Memory.TrackBindings(call.Front(), env.Front())
	return in.eval(call, c.Body)
}

// partial returns a closure over the unconsumed parameters of c with the
// given values bound to the consumed ones.  The values must already be copies
// owned by the caller.
func (in *Interpreter) partial(c *Closure, params, values []*Value) *Value {
	rest := make([]*Value, len(params)-len(values))
	for i := range rest {
		rest[i] = params[len(values)+i].Copy()
	}
	p := &Closure{
		Params:   List(rest...),
		Body:     c.Body.Copy(),
		Captured: c.Captured.Copy(),
	}
	for i, v := range values {
		p.Captured.Put(params[i].Copy(), v)
	}
	in.Logger.Debug("partial application",
		"bound", len(values),
		"remaining", len(rest))
	return in.Memory.TrackRecursive(&Value{Type: TypeClosure, Closure: p})
}

func bindSlice(names, values []*Value, base *Env) *Env {
	env := &Env{head: base.Front()}
	for i := len(names) - 1; i >= 0; i-- {
		env.Put(names[i], values[i])
	}
	return env
}
