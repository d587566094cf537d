package closedform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyroots/closedform"
)

// TestClassify tags by coefficient count and copies the input.
func TestClassify(t *testing.T) {
	in := []float64{0, 1, 2}
	eq, err := closedform.Classify(in)
	require.NoError(t, err)
	assert.Equal(t, closedform.Quadratic, eq.Degree)
	eq.Coeffs[1] = 42
	assert.Equal(t, 1.0, in[1], "Classify must copy")
}

// TestReduce re-tags explicitly and stops at Constant.
func TestReduce(t *testing.T) {
	eq := closedform.Equation{Degree: closedform.Quartic, Coeffs: []float64{0, 0, 3, 1, 2}}
	red := eq.Reduce()
	assert.Equal(t, closedform.Quadratic, red.Degree)
	assert.Equal(t, []float64{3, 1, 2}, red.Coeffs)
	assert.Equal(t, 3.0, red.Leading())
	assert.Equal(t, closedform.Quartic, eq.Degree, "receiver is unchanged")

	zero := closedform.Equation{Degree: closedform.Linear, Coeffs: []float64{0, 0}}
	assert.Equal(t, closedform.Constant, zero.Reduce().Degree)
	assert.Equal(t, []float64{0}, zero.Reduce().Coeffs)
}

// TestDegreeString keeps tag names stable.
func TestDegreeString(t *testing.T) {
	assert.Equal(t, "cubic", closedform.Cubic.String())
	assert.Equal(t, "constant", closedform.Constant.String())
	assert.Equal(t, "Degree(9)", closedform.Degree(9).String())
	assert.Equal(t, closedform.Quartic, closedform.MaxDegree)
}
