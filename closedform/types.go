package closedform

import (
	"fmt"

	"github.com/katalvlaran/polyroots/poly"
)

// Degree tags an Equation with the power of its leading term.
type Degree int

const (
	// Constant: a = 0.
	Constant Degree = iota
	// Linear: ax + b = 0.
	Linear
	// Quadratic: ax² + bx + c = 0.
	Quadratic
	// Cubic: ax³ + bx² + cx + d = 0.
	Cubic
	// Quartic: ax⁴ + bx³ + cx² + dx + e = 0.
	Quartic
)

// MaxDegree is the highest degree with a closed-form solution.
const MaxDegree = Quartic

// String implements fmt.Stringer.
func (d Degree) String() string {
	switch d {
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	case Quartic:
		return "quartic"
	default:
		return fmt.Sprintf("Degree(%d)", int(d))
	}
}

// Equation is a polynomial tagged with its degree.
// Invariant: len(Coeffs) == int(Degree)+1, leading coefficient first.
type Equation struct {
	Degree Degree
	Coeffs []float64
}

// Classify tags coeffs by length. The slice is copied; the caller keeps
// ownership of its input.
//
// Errors:
//   - poly.ErrEmpty, poly.ErrNonFinite — wrapped.
//   - ErrUnsupportedDegree — more than MaxDegree+1 coefficients.
func Classify(coeffs []float64) (Equation, error) {
	if err := poly.ValidateFinite(coeffs); err != nil {
		return Equation{}, solveErrorf(methodClassify, err)
	}
	deg := poly.Degree(coeffs)
	if deg > int(MaxDegree) {
		return Equation{}, solveErrorf(methodClassify, ErrUnsupportedDegree)
	}

	return Equation{Degree: Degree(deg), Coeffs: poly.Clone(coeffs)}, nil
}

// Leading returns the coefficient of the highest power.
func (e Equation) Leading() float64 {
	return e.Coeffs[0]
}

// Reduce re-tags e downward while its leading coefficient is zero:
// 0·x⁴ + bx³ + … is a cubic, and so on down to Constant. The returned
// Equation shares no memory with e.
func (e Equation) Reduce() Equation {
	c := e.Coeffs
	d := e.Degree
	for d > Constant && c[0] == 0 {
		c = c[1:]
		d--
	}

	return Equation{Degree: d, Coeffs: poly.Clone(c)}
}

// valid reports whether the invariant between Degree and Coeffs holds.
func (e Equation) valid() bool {
	return e.Degree >= Constant && e.Degree <= MaxDegree && len(e.Coeffs) == int(e.Degree)+1
}

// Result holds the outcome of a closed-form solve.
//   - Declared:  degree implied by the number of coefficients.
//   - Effective: degree after removing zero leading coefficients.
//   - Roots:     exactly int(Effective) complex roots, repeated roots included.
type Result struct {
	Declared  Degree
	Effective Degree
	Roots     []complex128
}
