package poly

import "math/big"

// Number is the set of coefficient element types accepted by the evaluators.
type Number interface {
	~int64 | ~float64
}

// Degree returns len(c)-1, or -1 for an empty coefficient slice.
func Degree[T Number](c []T) int {
	return len(c) - 1
}

// Clone returns an owned copy of c (nil stays nil).
func Clone[T Number](c []T) []T {
	if c == nil {
		return nil
	}
	out := make([]T, len(c))
	copy(out, c)

	return out
}

// IntPow raises base to an integer power by repeated multiplication.
// A negative power collapses to a positive one over the reciprocal base,
// so IntPow(2, -2) == 0.25.
//
// Complexity: O(|power|).
func IntPow(base float64, power int) float64 {
	if power < 0 {
		power = -power
		base = 1 / base
	}
	answer := 1.0
	for ; power > 0; power-- {
		answer *= base
	}

	return answer
}

// Evaluate computes P(x) = Σ c[i]·x^(deg-i) term by term using IntPow.
// x == 0 short-circuits to the constant term. An empty c evaluates to 0.
//
// Complexity: O(deg²) multiplications.
func Evaluate[T Number](x float64, c []T) float64 {
	n := len(c)
	if n == 0 {
		return 0
	}
	if x == 0 {
		return float64(c[n-1])
	}
	deg := n - 1

	var (
		result float64
		i      int
	)
	for i = 0; i < n; i++ {
		result += float64(c[i]) * IntPow(x, deg-i)
	}

	return result
}

// Horner computes P(x) by synthetic division: ((c0·x + c1)·x + c2)…
// It agrees with Evaluate whenever every intermediate value is exactly
// representable, and costs only deg multiplications.
func Horner[T Number](x float64, c []T) float64 {
	n := len(c)
	if n == 0 {
		return 0
	}
	if x == 0 {
		return float64(c[n-1])
	}

	result := float64(c[0])
	for i := 1; i < n; i++ {
		result = result*x + float64(c[i])
	}

	return result
}

// EvaluateRat computes P(x) exactly over the rationals. x is not modified.
func EvaluateRat(x *big.Rat, c []int64) *big.Rat {
	result := new(big.Rat)
	if len(c) == 0 {
		return result
	}

	term := new(big.Rat)
	for _, ci := range c {
		// Horner step: result = result*x + ci
		result.Mul(result, x)
		term.SetInt64(ci)
		result.Add(result, term)
	}

	return result
}
