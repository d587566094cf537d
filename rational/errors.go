package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroValue indicates a divisor enumeration was requested for 0,
	// which every positive integer divides.
	ErrZeroValue = errors.New("rational: cannot enumerate divisors of zero")

	// ErrMagnitudeTooLarge indicates a coefficient whose magnitude is not
	// representable (math.MinInt64) or exceeds the configured MaxMagnitude.
	ErrMagnitudeTooLarge = errors.New("rational: coefficient magnitude too large")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rational: invalid option supplied")
)

// Method tags used as error prefixes.
const (
	methodDivisors = "Divisors"
	methodSearch   = "Search"
)

// rationalErrorf prefixes err with the method tag, keeping it matchable via errors.Is.
func rationalErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
