package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Real is the float64 numeric domain.
type Real struct{}

// Name implements Domain.
func (Real) Name() string { return "real" }

// Add implements Domain.
func (Real) Add(a, b float64) float64 { return a + b }

// Sub implements Domain.
func (Real) Sub(a, b float64) float64 { return a - b }

// Mul implements Domain.
func (Real) Mul(a, b float64) float64 { return a * b }

// Div implements Domain. Division by zero yields ±Inf or NaN per IEEE 754.
func (Real) Div(a, b float64) float64 { return a / b }

// Pow implements Domain via math.Pow, including math.Pow(0, 0) == 1.
func (Real) Pow(a, b float64) float64 { return math.Pow(a, b) }

// Sin implements Domain.
func (Real) Sin(a float64) float64 { return math.Sin(a) }

// Cos implements Domain.
func (Real) Cos(a float64) float64 { return math.Cos(a) }

// Ln implements Domain. Non-positive arguments yield -Inf or NaN.
func (Real) Ln(a float64) float64 { return math.Log(a) }

// Exp implements Domain.
func (Real) Exp(a float64) float64 { return math.Exp(a) }

// IsZero implements Domain.
func (Real) IsZero(a float64) bool { return a == 0 }

// IsOne implements Domain.
func (Real) IsOne(a float64) bool { return a == 1 }

// FromFloat implements Domain.
func (Real) FromFloat(f float64) float64 { return f }

// ParseLiteral implements Domain. Imaginary literals (trailing 'i') are
// rejected: the real domain has no imaginary unit.
func (Real) ParseLiteral(s string) (float64, error) {
	if strings.HasSuffix(s, "i") {
		return 0, fmt.Errorf("imaginary literal %q in real domain", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric literal %q", s)
	}
	return v, nil
}

// Format implements Domain. Plain decimal notation is used so that the
// output of the renderer always re-parses.
func (Real) Format(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
