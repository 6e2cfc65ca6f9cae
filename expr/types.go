// Package expr defines the expression tree node kinds, the function and
// constant whitelist, and the structured SyntaxError returned by Parse.
package expr

import (
	"errors"
	"fmt"
)

// Sentinel parse-failure reasons. Every error returned by Parse wraps
// exactly one of these inside a *SyntaxError, so callers can match with
// errors.Is while still reading the offending position.
var (
	// ErrEmptyInput indicates the equation text was empty or all blank.
	ErrEmptyInput = errors.New("expr: empty input")

	// ErrUnbalancedParen indicates a missing or extra parenthesis.
	ErrUnbalancedParen = errors.New("expr: unbalanced parenthesis")

	// ErrUnknownIdent indicates an identifier outside the whitelist
	// (variables x, y; constants pi, e; whitelisted functions).
	ErrUnknownIdent = errors.New("expr: unknown identifier")

	// ErrBadNumber indicates a malformed numeric literal.
	ErrBadNumber = errors.New("expr: malformed numeric literal")

	// ErrUnexpectedToken indicates a token that no grammar rule accepts
	// at its position, including implicit multiplication such as "2x".
	ErrUnexpectedToken = errors.New("expr: unexpected token")
)

// SyntaxError reports why and where Parse rejected the input.
// Pos is a rune offset into the original text, suitable for caret
// placement in an input field.
type SyntaxError struct {
	Reason error  // one of the sentinel reasons above
	Pos    int    // rune offset of the offending token
	Token  string // offending token text, "" at end of input
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at position %d", e.Reason, e.Pos)
	}

	return fmt.Sprintf("%v %q at position %d", e.Reason, e.Token, e.Pos)
}

// Unwrap exposes the sentinel reason for errors.Is matching.
func (e *SyntaxError) Unwrap() error { return e.Reason }

// Var identifies one of the two bound variables.
type Var int

const (
	// VarX is the independent variable x.
	VarX Var = iota
	// VarY is the dependent variable y.
	VarY
)

// Const identifies a named mathematical constant.
type Const int

const (
	// ConstPi is π.
	ConstPi Const = iota
	// ConstE is Euler's number e.
	ConstE
)

// Func identifies a whitelisted single-argument function. The set is
// closed: the evaluator dispatches over these values with an exhaustive
// switch, so there is no open-ended name lookup at evaluation time.
type Func int

const (
	FuncSin Func = iota
	FuncCos
	FuncTan
	FuncCot
	FuncSec
	FuncCsc
	FuncAsin
	FuncAcos
	FuncAtan
	FuncAcot
	FuncAsec
	FuncAcsc
	FuncSinh
	FuncCosh
	FuncTanh
	FuncAsinh
	FuncAcosh
	FuncAtanh
	FuncExp
	FuncLn
	FuncLog2
	FuncLog10
	FuncSqrt
	FuncAbs
	FuncSign
	FuncFloor
	FuncCeil
)

// funcNames maps source-text identifiers to Func values. "log" is an
// alias of "ln", matching the natural-log convention of the input syntax.
var funcNames = map[string]Func{
	"sin":   FuncSin,
	"cos":   FuncCos,
	"tan":   FuncTan,
	"cot":   FuncCot,
	"sec":   FuncSec,
	"csc":   FuncCsc,
	"asin":  FuncAsin,
	"acos":  FuncAcos,
	"atan":  FuncAtan,
	"acot":  FuncAcot,
	"asec":  FuncAsec,
	"acsc":  FuncAcsc,
	"sinh":  FuncSinh,
	"cosh":  FuncCosh,
	"tanh":  FuncTanh,
	"asinh": FuncAsinh,
	"acosh": FuncAcosh,
	"atanh": FuncAtanh,
	"exp":   FuncExp,
	"ln":    FuncLn,
	"log":   FuncLn,
	"log2":  FuncLog2,
	"log10": FuncLog10,
	"sqrt":  FuncSqrt,
	"abs":   FuncAbs,
	"sign":  FuncSign,
	"floor": FuncFloor,
	"ceil":  FuncCeil,
}

// constNames maps source-text identifiers to Const values.
var constNames = map[string]Const{
	"pi": ConstPi,
	"e":  ConstE,
}

// Op identifies a binary operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Node is one node of an expression tree. The set of implementations is
// closed: Num, Variable, Constant, Neg, Apply and Binary.
type Node interface {
	// node seals the interface to this package's kinds.
	node()
}

// Num is a numeric literal.
type Num struct {
	Value float64
}

// Variable references x or y.
type Variable struct {
	Name Var
}

// Constant references a named constant (pi or e).
type Constant struct {
	Name Const
}

// Neg is unary negation.
type Neg struct {
	Operand Node
}

// Apply is a whitelisted function applied to one argument.
type Apply struct {
	Fn  Func
	Arg Node
}

// Binary is a binary operator application.
type Binary struct {
	Op          Op
	Left, Right Node
}

func (Num) node()      {}
func (Variable) node() {}
func (Constant) node() {}
func (Neg) node()      {}
func (Apply) node()    {}
func (Binary) node()   {}

// Tree is a validated, immutable expression tree. It is created once per
// graphing action and shared read-only by every evaluation; never mutate
// Root after Parse returns.
type Tree struct {
	// Root is the top node of the expression.
	Root Node
}
