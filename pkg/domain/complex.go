package domain

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// Complex is the complex128 numeric domain. Its transcendental functions
// are the principal-branch analytic continuations from math/cmplx.
type Complex struct{}

// Name implements Domain.
func (Complex) Name() string { return "complex" }

// Add implements Domain.
func (Complex) Add(a, b complex128) complex128 { return a + b }

// Sub implements Domain.
func (Complex) Sub(a, b complex128) complex128 { return a - b }

// Mul implements Domain.
func (Complex) Mul(a, b complex128) complex128 { return a * b }

// Div implements Domain.
func (Complex) Div(a, b complex128) complex128 { return a / b }

// Pow implements Domain via cmplx.Pow, i.e. exp(b*log(a)) on the
// principal branch, with cmplx.Pow(0, 0) == 1.
func (Complex) Pow(a, b complex128) complex128 { return cmplx.Pow(a, b) }

// Sin implements Domain.
func (Complex) Sin(a complex128) complex128 { return cmplx.Sin(a) }

// Cos implements Domain.
func (Complex) Cos(a complex128) complex128 { return cmplx.Cos(a) }

// Ln implements Domain (principal branch).
func (Complex) Ln(a complex128) complex128 { return cmplx.Log(a) }

// Exp implements Domain.
func (Complex) Exp(a complex128) complex128 { return cmplx.Exp(a) }

// IsZero implements Domain.
func (Complex) IsZero(a complex128) bool { return a == 0 }

// IsOne implements Domain.
func (Complex) IsOne(a complex128) bool { return a == 1 }

// FromFloat implements Domain.
func (Complex) FromFloat(f float64) complex128 { return complex(f, 0) }

// ParseLiteral implements Domain. A trailing 'i' marks a pure imaginary
// literal ("2i", "0.5i"); anything else is a real literal.
func (Complex) ParseLiteral(s string) (complex128, error) {
	if rest, ok := strings.CutSuffix(s, "i"); ok {
		im, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid imaginary literal %q", s)
		}
		return complex(0, im), nil
	}
	re, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric literal %q", s)
	}
	return complex(re, 0), nil
}

// Format implements Domain. Pure reals render as plain decimals, pure
// imaginaries as "bi", and mixed values as "(a+bi)" or "(a-bi)". The
// mixed form carries its own parentheses so rendered expressions stay
// unambiguous when re-parsed.
func (Complex) Format(a complex128) string {
	re, im := real(a), imag(a)
	fmtF := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	switch {
	case im == 0:
		return fmtF(re)
	case re == 0:
		return fmtF(im) + "i"
	case im < 0:
		return "(" + fmtF(re) + fmtF(im) + "i)"
	default:
		return "(" + fmtF(re) + "+" + fmtF(im) + "i)"
	}
}

// LooksComplex reports whether the expression text contains an imaginary
// literal, i.e. a digit or '.' immediately followed by a bare 'i'. It is
// the heuristic the CLI uses to pick the complex domain when the caller
// does not choose one explicitly.
func LooksComplex(input string) bool {
	s := strings.ToLower(input)
	for k := 1; k < len(s); k++ {
		if s[k] != 'i' {
			continue
		}
		prev := s[k-1]
		if !(prev >= '0' && prev <= '9') && prev != '.' {
			continue
		}
		// The 'i' must end the literal, not start an identifier.
		if k+1 < len(s) {
			next := s[k+1]
			if next == '_' || (next >= 'a' && next <= 'z') || (next >= '0' && next <= '9') {
				continue
			}
		}
		return true
	}
	return false
}
