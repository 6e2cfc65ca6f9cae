// Package eval defines the sentinel domain-error taxonomy for expression
// evaluation.
package eval

import "errors"

// Sentinel evaluation-failure reasons. Exactly one is wrapped into every
// non-nil error returned by Evaluate, so callers can match with errors.Is.
var (
	// ErrNilTree indicates a nil tree was passed to Evaluate.
	ErrNilTree = errors.New("eval: tree is nil")

	// ErrDivisionByZero indicates a zero denominator, including the
	// implicit denominators of cot, sec, csc, asec, acsc and 0**-n.
	ErrDivisionByZero = errors.New("eval: division by zero")

	// ErrNegativeRoot indicates sqrt of a negative argument.
	ErrNegativeRoot = errors.New("eval: even root of negative value")

	// ErrLogDomain indicates a logarithm of a non-positive argument.
	ErrLogDomain = errors.New("eval: logarithm of non-positive value")

	// ErrInverseTrigDomain indicates an inverse trigonometric or
	// hyperbolic argument outside the function's real domain.
	ErrInverseTrigDomain = errors.New("eval: inverse trig argument out of range")

	// ErrNonReal indicates a result that is not a real number, such as a
	// negative base raised to a fractional exponent.
	ErrNonReal = errors.New("eval: non-real result")

	// ErrOverflow indicates a result or intermediate outside the
	// representable range. For rendering purposes callers treat it like
	// any other domain error: the point is left undefined.
	ErrOverflow = errors.New("eval: numeric overflow")
)

// IsDomainError reports whether err is one of the per-point evaluation
// failures (everything except ErrNilTree). Domain errors are expected
// data during sampling and tracing, not faults.
func IsDomainError(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrDivisionByZero),
		errors.Is(err, ErrNegativeRoot),
		errors.Is(err, ErrLogDomain),
		errors.Is(err, ErrInverseTrigDomain),
		errors.Is(err, ErrNonReal),
		errors.Is(err, ErrOverflow):
		return true
	default:
		return false
	}
}
