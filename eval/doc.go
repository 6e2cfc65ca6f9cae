// Package eval evaluates parsed slope expressions at concrete (x, y)
// coordinates, classifying every outcome explicitly.
//
// 🚀 Outcome model
//
//	Evaluate returns (value, nil) for a finite real result, or (0, err)
//	where err wraps one of the sentinel domain reasons:
//
//	  ErrDivisionByZero     — x/0, cot/sec/csc at a zero denominator, 0**-n
//	  ErrNegativeRoot       — sqrt of a negative argument
//	  ErrLogDomain          — ln/log/log2/log10 of a non-positive argument
//	  ErrInverseTrigDomain  — asin/acos outside [-1,1], acosh below 1,
//	                          atanh outside (-1,1), asec/acsc inside (-1,1)
//	  ErrNonReal            — negative base raised to a fractional power
//	  ErrOverflow           — any non-finite result or intermediate
//
//	Nothing here ever panics on numeric input: a domain failure is data
//	for the caller (the sampler marks a cell undefined, the tracer ends a
//	branch), never an exception.
//
// ✨ Performance
//
//	Evaluation is a plain recursive walk over the immutable tree with no
//	per-call heap allocation; it is safe to invoke thousands of times per
//	redraw and concurrently from multiple goroutines against one tree.
//
// ⚙️ Usage:
//
//	tree, _ := expr.Parse("1/x")
//	v, err := eval.Evaluate(tree, 0, 0)
//	if eval.IsDomainError(err) {
//	    // the field is undefined at this point
//	}
package eval
