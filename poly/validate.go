package poly

import "math"

// ValidateStandard checks that c is a standard integer polynomial as the
// rational root search requires it:
//   - at least one coefficient (ErrEmpty),
//   - degree ≥ 1 (ErrConstantOnly),
//   - non-zero leading coefficient (ErrZeroLeading),
//   - non-zero constant term (ErrZeroConstant).
//
// Checks run in that order; the first failure is returned.
func ValidateStandard(c []int64) error {
	switch {
	case len(c) == 0:
		return ErrEmpty
	case len(c) == 1:
		return ErrConstantOnly
	case c[0] == 0:
		return ErrZeroLeading
	case c[len(c)-1] == 0:
		return ErrZeroConstant
	}

	return nil
}

// ValidateFinite rejects an empty slice and any NaN or ±Inf coefficient.
func ValidateFinite(c []float64) error {
	if len(c) == 0 {
		return ErrEmpty
	}
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

// Normalize returns a copy of c whose leading coefficient is non-negative,
// flipping every sign when c[0] < 0. P and -P share the same roots, and a
// positive leading coefficient keeps negative ratios written with a negative
// numerator.
func Normalize(c []int64) []int64 {
	out := Clone(c)
	if len(out) == 0 || out[0] >= 0 {
		return out
	}
	for i := range out {
		out[i] = -out[i]
	}

	return out
}
