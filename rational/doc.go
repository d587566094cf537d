// Package rational finds every rational root of an integer-coefficient
// polynomial by exhaustive search over the rational root theorem.
//
// 🚀 What is the rational root theorem?
//
//	If P(x) = aₙxⁿ + … + a₀ has integer coefficients and a₀, aₙ ≠ 0, every
//	rational root p/q (in lowest terms) has p dividing a₀ and q dividing aₙ.
//	The candidate set is therefore finite, and each candidate can simply be
//	evaluated.
//
// Pipeline:
//  1. Divisors      — positive divisors of |a₀| and |aₙ| by trial division.
//  2. Candidates    — every ratio p/q, duplicates replaced by the sentinel 0.
//  3. Search        — test −c and +c for every surviving candidate c and keep
//     those where P evaluates to exactly zero.
//
// ⚙️ Usage:
//
//	res, err := rational.Search([]int64{1, -5, 6})
//	// res.Roots == []float64{2, 3}
//
//	res, err = rational.Search([]int64{3, -4, 1},
//	    rational.WithVerification(rational.VerifyExact))
//	// res.Roots == []float64{0.3333333333333333, 1}
//
// Limits:
//
//   - Divisor enumeration is O(|n|) in the coefficient magnitude; very large
//     leading or constant coefficients make the search slow, not wrong.
//     WithMaxMagnitude turns that cliff into ErrMagnitudeTooLarge.
//   - Only rational roots are found. Fewer roots than the degree says nothing
//     about irrational or complex roots.
//   - VerifyFloat trusts exact float equality, which is reliable for ratios
//     with power-of-two denominators. VerifyExact uses math/big and has no
//     such boundary.
package rational
