package rational

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/polyroots/poly"
)

// Search returns every rational root of the integer polynomial coeffs
// (leading coefficient first).
//
// Algorithm:
//  1. Validate: degree ≥ 1, leading and constant coefficients non-zero.
//  2. Enumerate divisors of |constant| and |leading|.
//  3. Generate p/q candidates with duplicates marked by the sentinel 0.
//  4. For each surviving candidate c, test −c then +c. Every ratio has a
//     negated counterpart because a product can be split into two positive
//     or two negative factors.
//  5. Collect verified roots and sort them ascending.
//
// Errors:
//   - poly.ErrEmpty, poly.ErrConstantOnly, poly.ErrZeroLeading,
//     poly.ErrZeroConstant — invalid polynomial.
//   - ErrMagnitudeTooLarge — coefficient beyond MaxMagnitude or |MinInt64|.
//   - ErrOptionViolation   — invalid Option.
//
// Complexity: O(|a₀| + |aₙ|) for divisors, O(K²) for deduplication and
// O(K·deg²) for evaluation, where K = d(a₀)·d(aₙ).
func Search(coeffs []int64, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, rationalErrorf(methodSearch, o.err)
	}

	if err := poly.ValidateStandard(coeffs); err != nil {
		return Result{}, rationalErrorf(methodSearch, err)
	}
	leading := coeffs[0]
	constant := coeffs[len(coeffs)-1]
	if err := checkMagnitude(leading, o.MaxMagnitude); err != nil {
		return Result{}, rationalErrorf(methodSearch, err)
	}
	if err := checkMagnitude(constant, o.MaxMagnitude); err != nil {
		return Result{}, rationalErrorf(methodSearch, err)
	}

	num, err := Divisors(constant)
	if err != nil {
		return Result{}, rationalErrorf(methodSearch, err)
	}
	den, err := Divisors(leading)
	if err != nil {
		return Result{}, rationalErrorf(methodSearch, err)
	}
	set := Candidates(num, den)

	var (
		roots  = make([]float64, 0, len(coeffs)-1)
		tested int
		k      int
		r      Ratio
	)
	for k = 0; k < len(set.Values); k++ {
		if set.Values[k] == 0 {
			continue
		}
		r = set.Ratios[k]
		for _, sign := range [2]int64{-1, 1} {
			x := float64(sign) * set.Values[k]
			ok, value := verify(coeffs, x, Ratio{Num: sign * r.Num, Den: r.Den}, &o)
			tested++
			o.OnCandidate(x, value)
			if ok {
				roots = append(roots, x)
				o.OnRoot(x)
			}
		}
	}
	sort.Float64s(roots)

	return Result{
		Roots:      roots,
		Count:      len(roots),
		Candidates: set.Distinct,
		Tested:     tested,
	}, nil
}

// FindRationalRoots is Search with default options, returning the verified
// roots and their count.
func FindRationalRoots(coeffs []int64) ([]float64, int, error) {
	res, err := Search(coeffs)
	if err != nil {
		return nil, 0, err
	}

	return res.Roots, res.Count, nil
}

// checkMagnitude enforces the optional coefficient bound.
func checkMagnitude(c int64, limit int64) error {
	m, err := absMagnitude(c)
	if err != nil {
		return err
	}
	if limit > 0 && m > limit {
		return ErrMagnitudeTooLarge
	}

	return nil
}

// verify evaluates one signed candidate and reports whether it is a root
// together with the evaluated value.
func verify(coeffs []int64, x float64, r Ratio, o *Options) (bool, float64) {
	if x == 0 {
		// 0 is never a root when the constant term is non-zero.
		return false, float64(coeffs[len(coeffs)-1])
	}

	if o.Verification == VerifyExact {
		v := poly.EvaluateRat(big.NewRat(r.Num, r.Den), coeffs)
		f, _ := v.Float64()

		return v.Sign() == 0, f
	}

	var value float64
	if o.Evaluator == EvalHorner {
		value = poly.Horner(x, coeffs)
	} else {
		value = poly.Evaluate(x, coeffs)
	}

	return value == 0, value
}
