// Package polyroots is your toolbox for finding the roots of single-variable
// polynomials with real coefficients — exactly where algebra allows it,
// exhaustively where the rational root theorem does.
//
// 🚀 What is polyroots?
//
//	A small, deterministic, zero-runtime-dependency library that brings together:
//		• Rational-root search: every p/q root of an integer polynomial of any degree
//		• Closed-form solving: linear, quadratic, Cardano cubic, Ferrari quartic
//		• Shared primitives: power-sum and Horner evaluation, exact big.Rat evaluation
//
// ✨ Why choose polyroots?
//
//   - Exact where it matters – optional math/big verification of rational roots
//   - Typed outcomes – sentinel errors for unsupported degree, degenerate input
//   - Pure Go – no cgo, no hidden state, safe for concurrent use
//   - Observable – OnCandidate/OnRoot hooks instead of logging
//
// Under the hood, everything is organized under three subpackages:
//
//	poly/       — evaluation, validation and normalisation of coefficient slices
//	rational/   — divisors, candidate ratios and the rational root search
//	closedform/ — degree-tagged closed-form solver returning complex roots
//
// Quick example:
//
//	x² − 5x + 6 = 0
//
//	rational.FindRationalRoots([]int64{1, -5, 6})    → [2 3]
//	closedform.Solve([]float64{1, -5, 6})            → [(2+0i) (3+0i)]
//
//	go get github.com/katalvlaran/polyroots
package polyroots
