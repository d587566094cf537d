package poly

import "errors"

var (
	// ErrEmpty indicates that no coefficients were supplied.
	ErrEmpty = errors.New("poly: polynomial has no coefficients")

	// ErrConstantOnly indicates a degree-0 polynomial; there is nothing to solve for.
	ErrConstantOnly = errors.New("poly: constant polynomial is not solvable")

	// ErrZeroLeading indicates a zero leading coefficient. The polynomial is
	// really of lower degree and must be re-entered without that term.
	ErrZeroLeading = errors.New("poly: leading coefficient must be non-zero")

	// ErrZeroConstant indicates a zero constant term, which violates the
	// premise of the rational root theorem.
	ErrZeroConstant = errors.New("poly: constant term must be non-zero")

	// ErrNonFinite indicates a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("poly: coefficients must be finite")
)
