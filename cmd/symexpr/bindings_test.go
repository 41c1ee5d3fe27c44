package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asevik/symexpr/pkg/domain"
)

func TestCollectBindingsArgs(t *testing.T) {
	d := domain.Real{}

	vars, err := collectBindings(d, "", []string{"x=2", "Y=-3", "k=2^10"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 2, "y": -3, "k": 1024}, vars)
}

func TestCollectBindingsErrors(t *testing.T) {
	d := domain.Real{}

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing equals", args: []string{"x2"}},
		{name: "empty name", args: []string{"=2"}},
		{name: "unparsable value", args: []string{"x=2+"}},
		{name: "free variable in value", args: []string{"x=y+1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collectBindings(d, "", tt.args)
			assert.Error(t, err)
		})
	}
}

func TestCollectBindingsFile(t *testing.T) {
	d := domain.Real{}

	path := filepath.Join(t.TempDir(), "vars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1.5\nB: 2\nk: \"2^3\"\n"), 0o644))

	vars, err := collectBindings(d, path, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 1.5, "b": 2, "k": 8}, vars)
}

func TestCollectBindingsArgsOverrideFile(t *testing.T) {
	d := domain.Real{}

	path := filepath.Join(t.TempDir(), "vars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x: 1\ny: 2\n"), 0o644))

	vars, err := collectBindings(d, path, []string{"x=10"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 10, "y": 2}, vars)
}

func TestCollectBindingsFileMissing(t *testing.T) {
	_, err := collectBindings(domain.Real{}, filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestCollectBindingsComplex(t *testing.T) {
	d := domain.Complex{}

	vars, err := collectBindings(d, "", []string{"z=1+2i", "w=-3i"})
	require.NoError(t, err)
	assert.Equal(t, map[string]complex128{
		"z": complex(1, 2),
		"w": complex(0, -3),
	}, vars)
}

func TestBindingValueExpressions(t *testing.T) {
	d := domain.Real{}

	tests := []struct {
		in   string
		want float64
	}{
		{in: "2", want: 2},
		{in: "-2", want: -2},
		{in: " 3.5 ", want: 3.5},
		{in: "2^10", want: 1024},
		{in: "1/4", want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := bindingValue(d, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissingBindings(t *testing.T) {
	missing := missingBindings([]string{"a", "b", "c"}, map[string]float64{"b": 1})
	assert.Equal(t, []string{"a", "c"}, missing)

	assert.Empty(t, missingBindings([]string{"a"}, map[string]float64{"a": 1}))
}

func TestUseComplex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		binds []string
		flag  bool
		want  bool
	}{
		{name: "plain real", input: "x+1", want: false},
		{name: "imaginary literal", input: "x+2i", want: true},
		{name: "flag forces", input: "x+1", flag: true, want: true},
		{name: "imaginary binding", input: "exp(x)", binds: []string{"x=3.14i"}, want: true},
		{name: "variable i alone", input: "i+1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagComplex = tt.flag
			defer func() { flagComplex = false }()
			assert.Equal(t, tt.want, useComplex(tt.input, tt.binds))
		})
	}
}
