package closedform

import "math"

// cubicRoots solves ax³ + bx² + cx + d = 0 by Cardano's method. Requires a ≠ 0.
//
// Stage 1 — normalise to x³ + px² + qx + r and depress with x = t − p/3:
//
//	t³ + e·t + f = 0,  e = (3q − p²)/3,  f = (2p³ − 9pq + 27r)/27
//
// Stage 2 — classify with Q = e/3, R = −f/2, D = Q³ + R²:
//
//	D < 0: t_k = 2√(−Q)·cos(θ/3 + 2πk/3), θ = arccos(R/√(−Q³)), k = 0,1,2
//	D = 0: t = 2∛R, −∛R, −∛R
//	D > 0: A = ∛(R+√D), B = ∛(R−√D);
//	       t = A+B, −(A+B)/2 ± i·√3(A−B)/2
//
// Stage 3 — shift every root back by −p/3.
//
// The D = 0 branch uses ∛R rather than √(−Q): both have the same magnitude
// when D = 0, but only ∛R carries the sign of R. For x³ − 3x + 2 = (x−1)²(x+2)
// R = −1, and √(−Q) = 1 would produce the wrong roots {2, −1, −1}.
func cubicRoots(a, b, c, d float64) []complex128 {
	p := b / a
	q := c / a
	r := d / a

	e := (3*q - p*p) / 3
	f := (2*p*p*p - 9*p*q + 27*r) / 27
	shift := p / 3

	Q := e / 3
	R := -f / 2
	disc := Q*Q*Q + R*R

	roots := make([]complex128, 3)
	switch {
	case disc < 0:
		// three distinct real roots; Q < 0 here
		cosTheta := R / math.Sqrt(-Q*Q*Q)
		cosTheta = math.Max(-1, math.Min(1, cosTheta))
		theta := math.Acos(cosTheta)
		m := 2 * math.Sqrt(-Q)
		for k := 0; k < 3; k++ {
			t := m * math.Cos(theta/3+2*math.Pi*float64(k)/3)
			roots[k] = complex(t-shift, 0)
		}

	case disc == 0:
		// three real roots, at least two equal; all equal when R = 0
		u := math.Cbrt(R)
		roots[0] = complex(2*u-shift, 0)
		roots[1] = complex(-u-shift, 0)
		roots[2] = complex(-u-shift, 0)

	default:
		// one real root and a conjugate pair
		sd := math.Sqrt(disc)
		A := math.Cbrt(R + sd)
		B := math.Cbrt(R - sd)
		re := -(A+B)/2 - shift
		im := math.Sqrt(3) * (A - B) / 2
		roots[0] = complex(A+B-shift, 0)
		roots[1] = complex(re, im)
		roots[2] = complex(re, -im)
	}

	return roots
}
