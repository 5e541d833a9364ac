package coxeter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func s3Matrix(t *testing.T) *Matrix {
	t.Helper()
	mx, err := NewMatrix([][]int{
		{1, 3},
		{3, 1},
	})
	require.NoError(t, err)
	return mx
}

func TestScalarProductMatrix(t *testing.T) {
	mx := s3Matrix(t)
	sys := newKernel(mx, DefaultEpsilon)
	require.InDelta(t, 1.0, sys.ScalarProduct(0, 0), 1e-9)
	require.InDelta(t, 1.0, sys.ScalarProduct(1, 1), 1e-9)
	require.InDelta(t, -math.Cos(math.Pi/3), sys.ScalarProduct(0, 1), 1e-9)
	require.InDelta(t, -0.5, sys.ScalarProduct(0, 1), 1e-9)
}

func TestScalarProductInfinity(t *testing.T) {
	mx, err := NewMatrix([][]int{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)
	sys := newKernel(mx, DefaultEpsilon)
	require.InDelta(t, -1.0, sys.ScalarProduct(0, 1), 1e-9)
}

// TestReflectionInvolution checks property I3/S4: s_a · (s_a · r) = r.
func TestReflectionInvolution(t *testing.T) {
	mx := s3Matrix(t)
	sys, err := NewSystem(mx)
	require.NoError(t, err)

	for _, r := range sys.Registry.Iter() {
		for a := 0; a < mx.N(); a++ {
			once := sys.reflect(a, r.Coeffs())
			twice := sys.reflect(a, once)
			for i := range twice {
				require.InDelta(t, r.Coeffs()[i], twice[i], 1e-9)
			}
		}
	}
}

// TestReflectionInvolutionOnSimple is S4 verbatim: apply s_0 twice to
// simple_roots[1], expect simple_roots[1] back.
func TestReflectionInvolutionOnSimple(t *testing.T) {
	mx := s3Matrix(t)
	sys, err := NewSystem(mx)
	require.NoError(t, err)

	b := sys.Simple[1]
	once := sys.reflect(0, b.Coeffs())
	twice := sys.reflect(0, once)
	for i := range twice {
		require.InDelta(t, b.Coeffs()[i], twice[i], 1e-9)
	}
}
