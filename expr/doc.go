// Package expr parses textual slope equations f(x, y) into immutable
// expression trees.
//
// 🚀 What does expr accept?
//
//	A bivariate real expression over the variables x and y, the constants
//	pi and e, and a fixed whitelist of single-argument functions:
//
//	  sin cos tan cot sec csc
//	  asin acos atan acot asec acsc
//	  sinh cosh tanh asinh acosh atanh
//	  exp ln log log2 log10 sqrt
//	  abs sign floor ceil
//
//	Multiplication is always explicit (`2*x`, never `2x`), `**` denotes
//	exponentiation (right-associative, binds tightest; unary minus binds
//	tighter than `*` and `/`).
//
// ✨ Guarantees:
//   - Parse never guesses intent: malformed input fails with a *SyntaxError
//     carrying a reason sentinel and the offending rune position.
//   - A returned Tree references only whitelisted names; evaluation can
//     dispatch over a closed set of node kinds with no name lookups.
//   - Trees are immutable after Parse and safe to share across goroutines.
//
// ⚙️ Usage:
//
//	tree, err := expr.Parse("sin(x) + y**2")
//	if err != nil {
//	    var serr *expr.SyntaxError
//	    errors.As(err, &serr) // serr.Pos points at the offending rune
//	}
//
// Pure-literal subtrees are folded at parse time; folding is skipped
// whenever it would hide a domain error (for example 1/0 stays a division
// node so the evaluator reports it per point).
package expr
