// Package closedform solves polynomial equations of degree 1 through 4 with
// real coefficients by their algebraic formulas, returning complex roots.
//
// 🚀 How it works
//
//	Solve classifies the coefficient slice into a degree-tagged Equation
//	(Constant, Linear, Quadratic, Cubic, Quartic), re-tags it downward while
//	its leading coefficient is zero, and dispatches on the final tag:
//
//	  Quartic   — Ferrari: depress, solve the resolvent cubic, split into
//	              two quadratics (biquadratic shortcut when no linear term).
//	  Cubic     — Cardano on the depressed cubic t³ + pt + q, branching on
//	              D = Q³ + R² (Q = p/3, R = −q/2):
//	                D < 0  three distinct real roots (trigonometric form)
//	                D = 0  repeated real roots
//	                D > 0  one real root and a conjugate pair
//	  Quadratic — (−b ± √Δ)/2a, complex conjugates when Δ < 0.
//	  Linear    — −b/a.
//	  Constant  — no roots; reported as ErrDegenerate.
//
// ⚙️ Usage:
//
//	res, err := closedform.Solve([]float64{1, -6, 11, -6})
//	// res.Roots ≈ [3 1 2] (imaginary parts 0)
//
// Precision:
//
//	Exact float comparison is used only to classify discriminant signs.
//	Roots are never filtered by equality; expect the usual rounding noise
//	(≈1e-15 relative) in returned values.
//
// Every call is stateless: equal input produces identical output.
package closedform
