package closedform

// Solve finds all roots of the polynomial coeffs (leading coefficient first,
// at most five coefficients).
//
// Contracts:
//   - Zero leading coefficients are a degree reduction, not an error.
//   - len(Result.Roots) == int(Result.Effective).
//   - A constant equation yields empty Roots and ErrDegenerate.
//
// Errors: poly.ErrEmpty, poly.ErrNonFinite, ErrUnsupportedDegree,
// ErrDegenerate; all wrapped with the method name.
func Solve(coeffs []float64) (Result, error) {
	eq, err := Classify(coeffs)
	if err != nil {
		return Result{}, err
	}

	return SolveEquation(eq)
}

// SolveEquation solves an already classified Equation.
//
// The state machine runs top-down:
//
//	Quartic ─a=0→ Cubic ─a=0→ Quadratic ─a=0→ Linear ─a=0→ Constant
//
// Each arrow is an explicit re-tag performed by Equation.Reduce; the
// formula for the final tag runs on a non-zero leading coefficient.
func SolveEquation(eq Equation) (Result, error) {
	if !eq.valid() {
		return Result{}, solveErrorf(methodSolve, ErrMalformedEquation)
	}

	red := eq.Reduce()
	res := Result{Declared: eq.Degree, Effective: red.Degree}
	c := red.Coeffs

	switch red.Degree {
	case Linear:
		res.Roots = linearRoots(c[0], c[1])
	case Quadratic:
		res.Roots = quadraticRoots(c[0], c[1], c[2])
	case Cubic:
		res.Roots = cubicRoots(c[0], c[1], c[2], c[3])
	case Quartic:
		res.Roots = quarticRoots(c[0], c[1], c[2], c[3], c[4])
	default:
		res.Roots = []complex128{}

		return res, solveErrorf(methodSolve, ErrDegenerate)
	}

	return res, nil
}

// SolveLinear solves ax + b = 0.
func SolveLinear(a, b float64) (Result, error) {
	return Solve([]float64{a, b})
}

// SolveQuadratic solves ax² + bx + c = 0.
func SolveQuadratic(a, b, c float64) (Result, error) {
	return Solve([]float64{a, b, c})
}

// SolveCubic solves ax³ + bx² + cx + d = 0.
func SolveCubic(a, b, c, d float64) (Result, error) {
	return Solve([]float64{a, b, c, d})
}

// SolveQuartic solves ax⁴ + bx³ + cx² + dx + e = 0.
func SolveQuartic(a, b, c, d, e float64) (Result, error) {
	return Solve([]float64{a, b, c, d, e})
}
