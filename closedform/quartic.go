package closedform

import (
	"math"
	"math/cmplx"
)

// quarticRoots solves ax⁴ + bx³ + cx² + dx + e = 0 by Ferrari's method.
// Requires a ≠ 0.
//
// Normalise and depress with x = y − B/4 (B = b/a):
//
//	y⁴ + p·y² + q·y + r = 0
//
// If q = 0 the quartic is biquadratic: solve z² + pz + r = 0, then y = ±√z.
//
// Otherwise pick m > 0 solving the resolvent cubic
//
//	8m³ + 8pm² + (2p² − 8r)m − q² = 0
//
// so that the quartic splits, with s = √(2m), into
//
//	y² − s·y + (p/2 + m + q/2s) = 0
//	y² + s·y + (p/2 + m − q/2s) = 0
//
// The resolvent is negative at m = 0 and grows without bound, so a positive
// real root exists whenever q ≠ 0.
func quarticRoots(a, b, c, d, e float64) []complex128 {
	B := b / a
	C := c / a
	D := d / a
	E := e / a

	shift := B / 4
	p := C - 3*B*B/8
	q := D - B*C/2 + B*B*B/8
	r := E - B*D/4 + B*B*C/16 - 3*B*B*B*B/256

	ys := make([]complex128, 0, 4)
	m := 0.0
	if q != 0 {
		m = resolventRoot(p, q, r)
	}

	if m <= 0 {
		// biquadratic: no linear term left after depression
		for _, z := range quadraticRoots(1, p, r) {
			s := cmplx.Sqrt(z)
			ys = append(ys, s, -s)
		}
	} else {
		s := math.Sqrt(2 * m)
		plus := cmplx.Sqrt(complex(-2*p-2*m-2*q/s, 0))
		minus := cmplx.Sqrt(complex(-2*p-2*m+2*q/s, 0))
		sc := complex(s, 0)
		ys = append(ys,
			(sc+plus)/2,
			(sc-plus)/2,
			(-sc+minus)/2,
			(-sc-minus)/2,
		)
	}

	roots := make([]complex128, len(ys))
	for i, y := range ys {
		roots[i] = y - complex(shift, 0)
	}

	return roots
}

// resolventRoot returns the largest real root of the Ferrari resolvent cubic.
// cubicRoots reports real roots with an imaginary part of exactly zero.
func resolventRoot(p, q, r float64) float64 {
	best := math.Inf(-1)
	for _, z := range cubicRoots(8, 8*p, 2*p*p-8*r, -q*q) {
		if imag(z) == 0 && real(z) > best {
			best = real(z)
		}
	}

	return best
}
