package closedform

import "math"

// quadraticRoots applies the quadratic formula. Requires a ≠ 0.
// Real roots are returned as (−b − √Δ)/2a, (−b + √Δ)/2a; equal when Δ = 0.
// For Δ < 0 the conjugate pair is returned with the negative imaginary part first.
func quadraticRoots(a, b, c float64) []complex128 {
	disc := b*b - 4*a*c
	twoA := 2 * a

	if disc < 0 {
		re := -b / twoA
		im := math.Sqrt(-disc) / twoA

		return []complex128{complex(re, -im), complex(re, im)}
	}

	sq := math.Sqrt(disc)

	return []complex128{
		complex((-b-sq)/twoA, 0),
		complex((-b+sq)/twoA, 0),
	}
}
