package closedform_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for comparing computed roots.
const tol = 1e-9

// evalComplex evaluates the polynomial c (leading coefficient first) at z.
func evalComplex(c []float64, z complex128) complex128 {
	var acc complex128
	for _, ci := range c {
		acc = acc*z + complex(ci, 0)
	}

	return acc
}

// requireRootsMatch asserts got and want are equal as multisets within tol.
func requireRootsMatch(t *testing.T, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want), "root count")

	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !used[i] && cmplx.Abs(g-w) <= tol {
				used[i] = true
				found = true
				break
			}
		}
		require.True(t, found, "expected root %v not in %v", w, got)
	}
}

// requireResiduals asserts |P(root)| ≤ tol·scale for every root.
func requireResiduals(t *testing.T, c []float64, roots []complex128, scale float64) {
	t.Helper()
	for _, z := range roots {
		require.LessOrEqual(t, cmplx.Abs(evalComplex(c, z)), tol*scale, "P(%v)", z)
	}
}
