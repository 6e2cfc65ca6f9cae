package expr_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/odefield/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Accepts verifies that well-formed equations parse cleanly.
func TestParse_Accepts(t *testing.T) {
	for _, text := range []string{
		"2*x",
		"x+y",
		"sin(x)+y**2",
		"-x/y",
		"1/x",
		"sqrt(x*x + y*y)",
		"e**x - pi",
		"2**-3",
		"-x**2",
		"log10(abs(y) + 1)",
		"  x \t* y ",
		"1.5e-3*x",
	} {
		_, err := expr.Parse(text)
		assert.NoError(t, err, "Parse(%q)", text)
	}
}

// TestParse_RejectsJuxtaposition ensures "2x" is never read as "2*x".
func TestParse_RejectsJuxtaposition(t *testing.T) {
	_, err := expr.Parse("2x")
	require.Error(t, err)
	assert.ErrorIs(t, err, expr.ErrUnexpectedToken)

	var serr *expr.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 1, serr.Pos, "error must point at the x")
	assert.Equal(t, "x", serr.Token)
}

// TestParse_EmptyInput covers blank equations.
func TestParse_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := expr.Parse(text)
		assert.ErrorIs(t, err, expr.ErrEmptyInput, "Parse(%q)", text)
	}
}

// TestParse_UnknownIdent covers identifiers outside the whitelist.
func TestParse_UnknownIdent(t *testing.T) {
	_, err := expr.Parse("sinsin(x)")
	require.Error(t, err)
	assert.ErrorIs(t, err, expr.ErrUnknownIdent)

	var serr *expr.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, serr.Pos)
	assert.Equal(t, "sinsin", serr.Token)

	// Identifiers are matched exactly; no case folding.
	_, err = expr.Parse("SIN(x)")
	assert.ErrorIs(t, err, expr.ErrUnknownIdent)

	_, err = expr.Parse("z+1")
	assert.ErrorIs(t, err, expr.ErrUnknownIdent)
}

// TestParse_UnbalancedParens covers missing and stray parentheses.
func TestParse_UnbalancedParens(t *testing.T) {
	for _, text := range []string{"(x", "sin(x", "x)", "(x+y))", "sin(x))"} {
		_, err := expr.Parse(text)
		assert.ErrorIs(t, err, expr.ErrUnbalancedParen, "Parse(%q)", text)
	}
}

// TestParse_BadNumber covers malformed numeric literals.
func TestParse_BadNumber(t *testing.T) {
	_, err := expr.Parse("1.2.3")
	require.Error(t, err)
	assert.ErrorIs(t, err, expr.ErrBadNumber)

	var serr *expr.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "1.2.3", serr.Token)
}

// TestParse_UnexpectedToken covers operator misuse and foreign characters.
func TestParse_UnexpectedToken(t *testing.T) {
	for _, text := range []string{"*x", "x+*y", "x?", "sin+1", "x//y"} {
		_, err := expr.Parse(text)
		require.Error(t, err, "Parse(%q)", text)
		assert.ErrorIs(t, err, expr.ErrUnexpectedToken, "Parse(%q)", text)
	}
}

// TestParse_Precedence checks the resolved tree shapes for the
// load-bearing precedence rules.
func TestParse_Precedence(t *testing.T) {
	// -x**2 must parse as -(x**2).
	tree, err := expr.Parse("-x**2")
	require.NoError(t, err)
	neg, ok := tree.Root.(expr.Neg)
	require.True(t, ok, "top node must be negation")
	pow, ok := neg.Operand.(expr.Binary)
	require.True(t, ok)
	assert.Equal(t, expr.OpPow, pow.Op)

	// x+y*2 must parse as x+(y*2).
	tree, err = expr.Parse("x+y*2")
	require.NoError(t, err)
	add, ok := tree.Root.(expr.Binary)
	require.True(t, ok)
	require.Equal(t, expr.OpAdd, add.Op)
	mul, ok := add.Right.(expr.Binary)
	require.True(t, ok)
	assert.Equal(t, expr.OpMul, mul.Op)

	// 2**3**2 must associate right: 2**(3**2) folds to 512.
	tree, err = expr.Parse("2**3**2")
	require.NoError(t, err)
	num, ok := tree.Root.(expr.Num)
	require.True(t, ok, "pure-literal power chain must fold")
	assert.Equal(t, 512.0, num.Value)
}

// TestParse_ConstantFolding checks that literal subtrees fold while
// domain-sensitive ones survive for the evaluator.
func TestParse_ConstantFolding(t *testing.T) {
	tree, err := expr.Parse("1+2*3")
	require.NoError(t, err)
	num, ok := tree.Root.(expr.Num)
	require.True(t, ok)
	assert.Equal(t, 7.0, num.Value)

	// Division by a literal zero must stay a division node.
	tree, err = expr.Parse("1/0")
	require.NoError(t, err, "1/0 is syntactically valid")
	bin, ok := tree.Root.(expr.Binary)
	require.True(t, ok, "1/0 must not fold away")
	assert.Equal(t, expr.OpDiv, bin.Op)

	// Function applications never fold.
	tree, err = expr.Parse("sqrt(4)")
	require.NoError(t, err)
	_, ok = tree.Root.(expr.Apply)
	assert.True(t, ok, "sqrt(4) must remain an application")
}

// TestSyntaxError_Message checks the rendered error text carries
// the position for caret placement.
func TestSyntaxError_Message(t *testing.T) {
	_, err := expr.Parse("x + $")
	require.Error(t, err)

	var serr *expr.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 4, serr.Pos)
	assert.Contains(t, serr.Error(), "position 4")
}
