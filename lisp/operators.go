package lisp

import "math"

var (
	builtinAdd = arithmetic("+",
		func(a, b int32) (int32, error) { return a + b, nil },
		func(a, b float32) float32 { return a + b })
	builtinSub = arithmetic("-",
		func(a, b int32) (int32, error) { return a - b, nil },
		func(a, b float32) float32 { return a - b })
	builtinMul = arithmetic("*",
		func(a, b int32) (int32, error) { return a * b, nil },
		func(a, b float32) float32 { return a * b })
	builtinDiv = arithmetic("/", intDiv,
		func(a, b float32) float32 { return a / b })
	builtinMod = arithmetic("%", intMod,
		func(a, b float32) float32 {
			return float32(math.Abs(math.Mod(float64(a), float64(b))))
		})

	builtinEqNum = comparison("=",
		func(a, b int32) bool { return a == b },
		func(a, b float64) bool { return a == b })
	builtinGT = comparison(">",
		func(a, b int32) bool { return a > b },
		func(a, b float64) bool { return a > b })
	builtinGEq = comparison(">=",
		func(a, b int32) bool { return a >= b },
		func(a, b float64) bool { return a >= b })
	builtinLT = comparison("<",
		func(a, b int32) bool { return a < b },
		func(a, b float64) bool { return a < b })
	builtinLEq = comparison("<=",
		func(a, b int32) bool { return a <= b },
		func(a, b float64) bool { return a <= b })
)

// intDiv truncates toward zero.
func intDiv(a, b int32) (int32, error) {
	if b == 0 {
		return 0, Errorf(ErrDivideByZero, "division by zero")
	}
	return a / b, nil
}

// intMod returns the magnitude of the truncated remainder, it is never
// negative.
func intMod(a, b int32) (int32, error) {
	if b == 0 {
		return 0, Errorf(ErrDivideByZero, "division by zero")
	}
	r := a % b
	if r < 0 {
		r = -r
	}
	return r, nil
}

// numArgs evaluates exactly two numeric arguments.
func (in *Interpreter) numArgs(env *Env, op string, args *Value) (a, b *Value, err error) {
	cells, err := in.evalArgs(env, op, args, 2)
	if err != nil {
		return nil, nil, err
	}
	for i, v := range cells {
		if !v.IsNumeric() {
			return nil, nil, berrf(op, ErrType, "argument %d is not a number: %v", i+1, v)
		}
	}
	return cells[0], cells[1], nil
}

func arithmetic(op string, ifn func(a, b int32) (int32, error), ffn func(a, b float32) float32) PrimitiveFunc {
	return func(in *Interpreter, env *Env, args *Value) (*Value, error) {
		a, b, err := in.numArgs(env, op, args)
		if err != nil {
			return nil, err
		}
		if a.Type == TypeFloat || b.Type == TypeFloat {
			return in.Memory.Float(ffn(float32(toFloat(a)), float32(toFloat(b)))), nil
		}
		x, err := ifn(a.Int, b.Int)
		if err != nil {
			err.(*Error).Op = op
			return nil, err
		}
		return in.Memory.Int(x), nil
	}
}

func comparison(op string, ifn func(a, b int32) bool, ffn func(a, b float64) bool) PrimitiveFunc {
	return func(in *Interpreter, env *Env, args *Value) (*Value, error) {
		a, b, err := in.numArgs(env, op, args)
		if err != nil {
			return nil, err
		}
		if a.Type == TypeFloat || b.Type == TypeFloat {
			return in.Memory.Bool(ffn(toFloat(a), toFloat(b))), nil
		}
		return in.Memory.Bool(ifn(a.Int, b.Int)), nil
	}
}
