package rational_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyroots/poly"
	"github.com/katalvlaran/polyroots/rational"
)

// TestSearch_Known covers integer, fractional and root-free polynomials.
func TestSearch_Known(t *testing.T) {
	cases := []struct {
		name   string
		coeffs []int64
		want   []float64
	}{
		{"x^2-5x+6", []int64{1, -5, 6}, []float64{2, 3}},
		{"3x^2+4x-1 has no rational roots", []int64{3, 4, -1}, []float64{}},
		{"2x^2-3x+1", []int64{2, -3, 1}, []float64{0.5, 1}},
		{"negative leading", []int64{-1, 5, -6}, []float64{2, 3}},
		{"double root reported once", []int64{1, -2, 1}, []float64{1}},
		{"x^2+1", []int64{1, 0, 1}, []float64{}},
		{"(x+1)(x-2)(x+3)(x-4)", []int64{1, -2, -13, 14, 24}, []float64{-3, -1, 2, 4}},
		{"linear 4x+2", []int64{4, 2}, []float64{-0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := rational.Search(tc.coeffs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Roots)
			assert.Equal(t, len(tc.want), res.Count)
			assert.Equal(t, 2*res.Candidates, res.Tested, "every candidate is tested with both signs")
		})
	}
}

// TestSearch_RootsEvaluateToZero is the core soundness property: every
// returned root makes P exactly zero, and 0 never leaks into the result.
func TestSearch_RootsEvaluateToZero(t *testing.T) {
	polys := [][]int64{
		{1, -5, 6},
		{2, -3, 1},
		{1, -2, -13, 14, 24},
		{4, 0, -1},
		{8, -12, 6, -1},
		{1, 0, 0, 0, -16},
	}
	for _, c := range polys {
		for _, ev := range []rational.Evaluator{rational.EvalPower, rational.EvalHorner} {
			res, err := rational.Search(c, rational.WithEvaluator(ev))
			require.NoError(t, err)
			for _, r := range res.Roots {
				require.NotZero(t, r)
				require.Equal(t, 0.0, poly.Evaluate(r, c), "P(%v) for %v", r, c)
			}
		}
	}
}

// TestSearch_ExactVerification finds thirds that float equality may miss.
func TestSearch_ExactVerification(t *testing.T) {
	res, err := rational.Search([]int64{3, -4, 1}, rational.WithVerification(rational.VerifyExact))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0 / 3, 1}, res.Roots)

	// (2x-1)(3x+2)
	res, err = rational.Search([]int64{6, 1, -2}, rational.WithVerification(rational.VerifyExact))
	require.NoError(t, err)
	assert.Equal(t, []float64{-2.0 / 3, 0.5}, res.Roots)
	assert.Equal(t, 2, res.Count)
}

// TestSearch_Hooks verifies hook invocation counts and root test order.
func TestSearch_Hooks(t *testing.T) {
	var (
		evaluated []float64
		found     []float64
	)
	res, err := rational.Search([]int64{1, -5, 6},
		rational.WithOnCandidate(func(x, _ float64) { evaluated = append(evaluated, x) }),
		rational.WithOnRoot(func(x float64) { found = append(found, x) }),
		rational.WithOnRoot(nil), // ignored
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1, -2, 2, -3, 3, -6, 6}, evaluated)
	assert.Equal(t, []float64{2, 3}, found)
	assert.Equal(t, len(evaluated), res.Tested)
}

// TestSearch_InvalidPolynomial surfaces poly sentinels through the wrapper.
func TestSearch_InvalidPolynomial(t *testing.T) {
	cases := []struct {
		name   string
		coeffs []int64
		want   error
	}{
		{"empty", nil, poly.ErrEmpty},
		{"constant", []int64{3}, poly.ErrConstantOnly},
		{"zero leading", []int64{0, 1, 1}, poly.ErrZeroLeading},
		{"zero constant", []int64{1, 1, 0}, poly.ErrZeroConstant},
		{"min int64 constant", []int64{1, math.MinInt64}, rational.ErrMagnitudeTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rational.Search(tc.coeffs)
			require.ErrorIs(t, err, tc.want)

			roots, n, err := rational.FindRationalRoots(tc.coeffs)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, roots)
			assert.Zero(t, n)
		})
	}
}

// TestSearch_MaxMagnitude turns the O(n) cliff into an error on request.
func TestSearch_MaxMagnitude(t *testing.T) {
	_, err := rational.Search([]int64{1, 0, -1000}, rational.WithMaxMagnitude(100))
	require.ErrorIs(t, err, rational.ErrMagnitudeTooLarge)

	_, err = rational.Search([]int64{1000, 1}, rational.WithMaxMagnitude(100))
	require.ErrorIs(t, err, rational.ErrMagnitudeTooLarge)

	res, err := rational.Search([]int64{1, 0, -100}, rational.WithMaxMagnitude(100))
	require.NoError(t, err)
	assert.Equal(t, []float64{-10, 10}, res.Roots)
}

// TestSearch_OptionViolation rejects nonsensical option values.
func TestSearch_OptionViolation(t *testing.T) {
	bad := []rational.Option{
		rational.WithMaxMagnitude(-1),
		rational.WithVerification(rational.Verification(9)),
		rational.WithEvaluator(rational.Evaluator(7)),
	}
	for _, opt := range bad {
		_, err := rational.Search([]int64{1, -1}, opt)
		require.ErrorIs(t, err, rational.ErrOptionViolation)
	}
}

// TestFindRationalRoots mirrors the default Search.
func TestFindRationalRoots(t *testing.T) {
	roots, n, err := rational.FindRationalRoots([]int64{1, -5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, roots)
	assert.Equal(t, 2, n)
}

// TestSearch_Stringers keeps mode names stable.
func TestSearch_Stringers(t *testing.T) {
	assert.Equal(t, "exact", rational.VerifyExact.String())
	assert.Equal(t, "horner", rational.EvalHorner.String())
	assert.Equal(t, "Evaluator(7)", rational.Evaluator(7).String())
}
