package domain_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asevik/symexpr/pkg/domain"
)

func TestRealArithmetic(t *testing.T) {
	d := domain.Real{}

	assert.Equal(t, 5.0, d.Add(2, 3))
	assert.Equal(t, -1.0, d.Sub(2, 3))
	assert.Equal(t, 6.0, d.Mul(2, 3))
	assert.Equal(t, 2.5, d.Div(5, 2))
	assert.Equal(t, 9.0, d.Pow(3, 2))

	// Unguarded boundary conditions defer to IEEE 754 / math.Pow.
	assert.True(t, math.IsInf(d.Div(1, 0), 1))
	assert.True(t, math.IsNaN(d.Div(0, 0)))
	assert.Equal(t, 1.0, d.Pow(0, 0))

	assert.True(t, d.IsZero(0))
	assert.False(t, d.IsZero(0.1))
	assert.True(t, d.IsOne(1))
	assert.False(t, d.IsOne(-1))
}

func TestRealTranscendentals(t *testing.T) {
	d := domain.Real{}

	assert.InDelta(t, 0, d.Sin(0), 1e-15)
	assert.InDelta(t, 1, d.Cos(0), 1e-15)
	assert.InDelta(t, 1, d.Exp(0), 1e-15)
	assert.InDelta(t, 0, d.Ln(1), 1e-15)
	assert.InDelta(t, 1, d.Ln(math.E), 1e-15)
	assert.True(t, math.IsInf(d.Ln(0), -1))
}

func TestRealParseLiteral(t *testing.T) {
	d := domain.Real{}

	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: "3.14", want: 3.14},
		{in: "0.5", want: 0.5},
		{in: "2i", wantErr: true}, // no imaginary unit in the real domain
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := d.ParseLiteral(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRealFormatRoundTrip(t *testing.T) {
	d := domain.Real{}

	for _, v := range []float64{0, 1, -1, 3.14, 0.000001, 1000000, -42.5} {
		s := d.Format(v)
		got, err := d.ParseLiteral(s)
		if v < 0 {
			// Negative constants re-enter through the parser's unary
			// minus, not through ParseLiteral; strip the sign here.
			got, err = d.ParseLiteral(s[1:])
			got = -got
		}
		require.NoError(t, err, "format %q", s)
		assert.Equal(t, v, got, "round-trip of %v via %q", v, s)
	}
}

func TestComplexArithmetic(t *testing.T) {
	d := domain.Complex{}

	assert.Equal(t, complex(4, 6), d.Add(complex(1, 2), complex(3, 4)))
	assert.Equal(t, complex(-2, -2), d.Sub(complex(1, 2), complex(3, 4)))
	assert.Equal(t, complex(-5, 10), d.Mul(complex(1, 2), complex(3, 4)))
	assert.Equal(t, complex(0, 1), d.Div(complex(-1, 0), complex(0, 1)))

	// i^2 == -1 up to rounding in cmplx.Pow.
	sq := d.Pow(complex(0, 1), complex(2, 0))
	assert.InDelta(t, -1, real(sq), 1e-12)
	assert.InDelta(t, 0, imag(sq), 1e-12)

	assert.True(t, d.IsZero(0))
	assert.True(t, d.IsOne(1))
	assert.False(t, d.IsOne(complex(1, 1)))
}

func TestComplexTranscendentals(t *testing.T) {
	d := domain.Complex{}

	// Euler: exp(i*pi) == -1.
	v := d.Exp(complex(0, math.Pi))
	assert.InDelta(t, -1, real(v), 1e-12)
	assert.InDelta(t, 0, imag(v), 1e-12)

	// Principal branch: ln(-1) == i*pi.
	l := d.Ln(complex(-1, 0))
	assert.InDelta(t, 0, real(l), 1e-12)
	assert.InDelta(t, math.Pi, imag(l), 1e-12)

	assert.InDelta(t, 0, cmplx.Abs(d.Sin(0)), 1e-15)
	assert.InDelta(t, 1, cmplx.Abs(d.Cos(0)), 1e-15)
}

func TestComplexParseLiteral(t *testing.T) {
	d := domain.Complex{}

	tests := []struct {
		in      string
		want    complex128
		wantErr bool
	}{
		{in: "42", want: complex(42, 0)},
		{in: "2i", want: complex(0, 2)},
		{in: "0.5i", want: complex(0, 0.5)},
		{in: "i", wantErr: true}, // bare i is a variable name, not a literal
		{in: "xi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := d.ParseLiteral(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplexFormat(t *testing.T) {
	d := domain.Complex{}

	tests := []struct {
		in   complex128
		want string
	}{
		{complex(5, 0), "5"},
		{complex(-2.5, 0), "-2.5"},
		{complex(0, 2), "2i"},
		{complex(0, -0.5), "-0.5i"},
		{complex(3, 2), "(3+2i)"},
		{complex(3, -2), "(3-2i)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Format(tt.in))
		})
	}
}

func TestLooksComplex(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2i", true},
		{"x + 2i", true},
		{"3.5i*x", true},
		{"2I", true}, // case-normalized
		{"x + 2", false},
		{"sin(x)", false},
		{"i", false},     // bare variable
		{"2in", false},   // identifier continues
		{"pi", false},    // no digit before i
		{"x*2i + 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.LooksComplex(tt.in))
		})
	}
}
