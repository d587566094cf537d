package closedform

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDegree indicates more than five coefficients (degree > 4);
	// no general closed form exists beyond the quartic.
	ErrUnsupportedDegree = errors.New("closedform: unsupported polynomial degree")

	// ErrDegenerate indicates the equation reduced to a constant, which has
	// no roots to report. The accompanying Result carries an empty root set.
	ErrDegenerate = errors.New("closedform: degenerate equation has no roots")

	// ErrMalformedEquation indicates an Equation whose coefficient count does
	// not match its degree tag.
	ErrMalformedEquation = errors.New("closedform: coefficient count does not match degree")
)

// Method tags used as error prefixes.
const (
	methodClassify = "Classify"
	methodSolve    = "Solve"
)

// solveErrorf prefixes err with the method tag, keeping it matchable via errors.Is.
func solveErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
