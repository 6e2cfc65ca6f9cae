package eval

import (
	"math"

	"github.com/katalvlaran/odefield/expr"
)

// Evaluate — expression evaluation at a point
//
// Description:
//
//	Evaluate walks the immutable tree bottom-up, substituting x and y and
//	applying each operator's real-valued semantics. The outcome is always
//	explicit: a finite value with nil error, or zero with a sentinel
//	domain reason (see types.go). Overflow is checked after every
//	arithmetic node so a non-finite intermediate can never masquerade as
//	a finite final value.
//
// Determinism & sharing:
//
//	The result is purely a function of (tree, x, y); there is no hidden
//	state and no allocation, so one tree may serve concurrent samplers
//	and tracers.
//
// Complexity:
//
//	Time:   O(nodes)
//	Memory: O(depth) call stack only.
func Evaluate(tree *expr.Tree, x, y float64) (float64, error) {
	if tree == nil || tree.Root == nil {
		return 0, ErrNilTree
	}

	return walk(tree.Root, x, y)
}

// walk evaluates one node. Children are evaluated first so any domain
// failure short-circuits upward unchanged.
func walk(n expr.Node, x, y float64) (float64, error) {
	switch v := n.(type) {
	case expr.Num:
		return v.Value, nil

	case expr.Variable:
		if v.Name == expr.VarX {
			return x, nil
		}

		return y, nil

	case expr.Constant:
		if v.Name == expr.ConstPi {
			return math.Pi, nil
		}

		return math.E, nil

	case expr.Neg:
		operand, err := walk(v.Operand, x, y)
		if err != nil {
			return 0, err
		}

		return -operand, nil

	case expr.Binary:
		left, err := walk(v.Left, x, y)
		if err != nil {
			return 0, err
		}
		right, err := walk(v.Right, x, y)
		if err != nil {
			return 0, err
		}

		return binary(v.Op, left, right)

	case expr.Apply:
		arg, err := walk(v.Arg, x, y)
		if err != nil {
			return 0, err
		}

		return apply(v.Fn, arg)

	default:
		return 0, ErrNilTree
	}
}

// binary applies a binary operator with its domain policy.
func binary(op expr.Op, a, b float64) (float64, error) {
	var r float64
	switch op {
	case expr.OpAdd:
		r = a + b
	case expr.OpSub:
		r = a - b
	case expr.OpMul:
		r = a * b
	case expr.OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		r = a / b
	case expr.OpPow:
		return power(a, b)
	}

	return finite(r)
}

// power implements real exponentiation: a negative base demands an
// integer exponent, and a zero base a non-negative one.
func power(base, exp float64) (float64, error) {
	if base < 0 && exp != math.Trunc(exp) {
		return 0, ErrNonReal
	}
	if base == 0 && exp < 0 {
		return 0, ErrDivisionByZero
	}

	return finite(math.Pow(base, exp))
}

// apply dispatches over the closed function whitelist. Each case carries
// its own domain-validity predicate; the switch is exhaustive so adding a
// Func without an evaluation rule fails loudly at the default branch.
func apply(fn expr.Func, a float64) (float64, error) {
	switch fn {
	case expr.FuncSin:
		return math.Sin(a), nil
	case expr.FuncCos:
		return math.Cos(a), nil
	case expr.FuncTan:
		return finite(math.Tan(a))
	case expr.FuncCot:
		s := math.Sin(a)
		if s == 0 {
			return 0, ErrDivisionByZero
		}

		return finite(math.Cos(a) / s)
	case expr.FuncSec:
		c := math.Cos(a)
		if c == 0 {
			return 0, ErrDivisionByZero
		}

		return finite(1 / c)
	case expr.FuncCsc:
		s := math.Sin(a)
		if s == 0 {
			return 0, ErrDivisionByZero
		}

		return finite(1 / s)

	case expr.FuncAsin:
		if a < -1 || a > 1 {
			return 0, ErrInverseTrigDomain
		}

		return math.Asin(a), nil
	case expr.FuncAcos:
		if a < -1 || a > 1 {
			return 0, ErrInverseTrigDomain
		}

		return math.Acos(a), nil
	case expr.FuncAtan:
		return math.Atan(a), nil
	case expr.FuncAcot:
		return math.Pi/2 - math.Atan(a), nil
	case expr.FuncAsec:
		if a == 0 {
			return 0, ErrDivisionByZero
		}
		if a > -1 && a < 1 {
			return 0, ErrInverseTrigDomain
		}

		return math.Acos(1 / a), nil
	case expr.FuncAcsc:
		if a == 0 {
			return 0, ErrDivisionByZero
		}
		if a > -1 && a < 1 {
			return 0, ErrInverseTrigDomain
		}

		return math.Asin(1 / a), nil

	case expr.FuncSinh:
		return finite(math.Sinh(a))
	case expr.FuncCosh:
		return finite(math.Cosh(a))
	case expr.FuncTanh:
		return math.Tanh(a), nil
	case expr.FuncAsinh:
		return math.Asinh(a), nil
	case expr.FuncAcosh:
		if a < 1 {
			return 0, ErrInverseTrigDomain
		}

		return math.Acosh(a), nil
	case expr.FuncAtanh:
		if a <= -1 || a >= 1 {
			return 0, ErrInverseTrigDomain
		}

		return math.Atanh(a), nil

	case expr.FuncExp:
		return finite(math.Exp(a))
	case expr.FuncLn:
		if a <= 0 {
			return 0, ErrLogDomain
		}

		return math.Log(a), nil
	case expr.FuncLog2:
		if a <= 0 {
			return 0, ErrLogDomain
		}

		return math.Log2(a), nil
	case expr.FuncLog10:
		if a <= 0 {
			return 0, ErrLogDomain
		}

		return math.Log10(a), nil
	case expr.FuncSqrt:
		if a < 0 {
			return 0, ErrNegativeRoot
		}

		return math.Sqrt(a), nil

	case expr.FuncAbs:
		return math.Abs(a), nil
	case expr.FuncSign:
		switch {
		case a > 0:
			return 1, nil
		case a < 0:
			return -1, nil
		default:
			return 0, nil
		}
	case expr.FuncFloor:
		return math.Floor(a), nil
	case expr.FuncCeil:
		return math.Ceil(a), nil

	default:
		return 0, ErrNonReal
	}
}

// finite maps a non-finite arithmetic result to ErrOverflow.
func finite(r float64) (float64, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrOverflow
	}

	return r, nil
}
