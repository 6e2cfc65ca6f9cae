package expr

import "math"

// fold constant-folds pure-literal subtrees bottom-up. Folding is purely
// an optimization: any combination whose result would be non-finite, or
// whose operator could raise a domain error (division by a zero literal,
// fractional power of a negative literal), is left unfolded so the
// evaluator reports the failure through its normal outcome channel.
// Function applications are never folded for the same reason.
func fold(n Node) Node {
	switch v := n.(type) {
	case Neg:
		operand := fold(v.Operand)
		if num, ok := operand.(Num); ok {
			return Num{Value: -num.Value}
		}

		return Neg{Operand: operand}

	case Binary:
		left, right := fold(v.Left), fold(v.Right)
		ln, lok := left.(Num)
		rn, rok := right.(Num)
		if lok && rok {
			if folded, ok := foldBinary(v.Op, ln.Value, rn.Value); ok {
				return Num{Value: folded}
			}
		}

		return Binary{Op: v.Op, Left: left, Right: right}

	case Apply:
		return Apply{Fn: v.Fn, Arg: fold(v.Arg)}

	default:
		return n
	}
}

// foldBinary applies op to two literals. ok is false whenever the result
// must instead surface as an evaluation outcome.
func foldBinary(op Op, a, b float64) (result float64, ok bool) {
	switch op {
	case OpAdd:
		result = a + b
	case OpSub:
		result = a - b
	case OpMul:
		result = a * b
	case OpDiv:
		if b == 0 {
			return 0, false
		}
		result = a / b
	case OpPow:
		result = math.Pow(a, b)
	default:
		return 0, false
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, false
	}

	return result, true
}
