// Package poly holds the primitives shared by every root finder in polyroots:
// evaluation of a polynomial given as a coefficient slice, integer powers,
// exact rational evaluation and the validation boundary for input polynomials.
//
// Coefficient layout:
//
//	c[0]        — leading coefficient (highest power)
//	c[len(c)-1] — constant term
//	degree      = len(c) - 1
//
// Example:
//
//	P(x) = x^2 + 3x + 9  ⇒  c = []int64{1, 3, 9}
//	poly.Evaluate(2, c) == 19
//
// All functions are pure: no hidden state, no logging, inputs are never
// mutated. Functions returning slices always return freshly owned memory.
package poly
