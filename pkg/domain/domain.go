// Package domain defines the numeric domains expressions are evaluated
// over.
//
// A Domain bundles the arithmetic, the transcendental functions and the
// textual conventions of one scalar type. Two instantiations are
// provided: Real (float64) and Complex (complex128, using the standard
// analytic continuations from math/cmplx).
//
// Domains are stateless values; the zero value of each is ready to use
// and safe for concurrent use.
package domain

// Domain describes the operations a scalar type must support to back an
// expression tree.
//
// Division by zero and 0^0 are intentionally not guarded: both fall
// through to the native semantics of the underlying type (infinities and
// NaNs for Real, the math/cmplx conventions for Complex).
type Domain[T any] interface {
	// Name identifies the domain in logs and error messages.
	Name() string

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Pow(a, b T) T

	Sin(a T) T
	Cos(a T) T
	Ln(a T) T
	Exp(a T) T

	// IsZero and IsOne report equality with the additive and
	// multiplicative identities. They drive peephole simplification.
	IsZero(a T) bool
	IsOne(a T) bool

	// FromFloat converts a real constant into the domain. It is how the
	// tree machinery obtains the constants -1, 0 and 1.
	FromFloat(f float64) T

	// ParseLiteral converts a numeric literal token into a value.
	// The token is a digit run with at most one '.', optionally followed
	// by 'i'; domains that have no imaginary unit must reject the 'i'
	// form.
	ParseLiteral(s string) (T, error)

	// Format renders a value in the domain's canonical decimal text
	// form. The result must re-parse to an equal value, so scientific
	// notation is never produced.
	Format(a T) string
}
