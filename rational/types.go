package rational

import "fmt"

// Verification selects how a candidate is accepted as a root.
type Verification int

const (
	// VerifyFloat accepts a candidate iff the float64 evaluation is exactly 0.
	VerifyFloat Verification = iota

	// VerifyExact accepts a candidate iff P(p/q) == 0 over math/big rationals.
	VerifyExact
)

// String implements fmt.Stringer.
func (v Verification) String() string {
	switch v {
	case VerifyFloat:
		return "float"
	case VerifyExact:
		return "exact"
	default:
		return fmt.Sprintf("Verification(%d)", int(v))
	}
}

// Evaluator selects the float64 evaluation strategy used by VerifyFloat.
type Evaluator int

const (
	// EvalPower sums c[i]·x^(deg-i) term by term (poly.Evaluate).
	EvalPower Evaluator = iota

	// EvalHorner uses synthetic division (poly.Horner).
	EvalHorner
)

// String implements fmt.Stringer.
func (e Evaluator) String() string {
	switch e {
	case EvalPower:
		return "power"
	case EvalHorner:
		return "horner"
	default:
		return fmt.Sprintf("Evaluator(%d)", int(e))
	}
}

// Defaults for Options.
const (
	DefaultVerification = VerifyFloat
	DefaultEvaluator    = EvalPower

	// DefaultMaxMagnitude of 0 disables the coefficient magnitude guard.
	DefaultMaxMagnitude int64 = 0
)

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of one Search call.
type Options struct {
	// Verification selects float or exact root acceptance.
	Verification Verification

	// Evaluator selects the float evaluation strategy (VerifyFloat only).
	Evaluator Evaluator

	// MaxMagnitude, if > 0, rejects a leading coefficient or constant term
	// whose magnitude exceeds it.
	MaxMagnitude int64

	// OnCandidate is called for every evaluated candidate with P(x).
	OnCandidate func(x, value float64)

	// OnRoot is called for every verified root, in test order.
	OnRoot func(x float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with float verification, the power-sum
// evaluator, no magnitude limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Verification: DefaultVerification,
		Evaluator:    DefaultEvaluator,
		MaxMagnitude: DefaultMaxMagnitude,
		OnCandidate:  func(float64, float64) {},
		OnRoot:       func(float64) {},
	}
}

// WithVerification sets the root acceptance mode.
func WithVerification(v Verification) Option {
	return func(o *Options) {
		switch v {
		case VerifyFloat, VerifyExact:
			o.Verification = v
		default:
			o.err = fmt.Errorf("%w: unknown verification %v", ErrOptionViolation, v)
		}
	}
}

// WithEvaluator sets the float evaluation strategy.
func WithEvaluator(e Evaluator) Option {
	return func(o *Options) {
		switch e {
		case EvalPower, EvalHorner:
			o.Evaluator = e
		default:
			o.err = fmt.Errorf("%w: unknown evaluator %v", ErrOptionViolation, e)
		}
	}
}

// WithMaxMagnitude bounds |leading| and |constant|.
//
//	m > 0: reject larger coefficients with ErrMagnitudeTooLarge
//	m == 0: no limit
//	m < 0: invalid option → ErrOptionViolation
func WithMaxMagnitude(m int64) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: MaxMagnitude cannot be negative (%d)", ErrOptionViolation, m)
			return
		}
		o.MaxMagnitude = m
	}
}

// WithOnCandidate registers a callback run after each candidate evaluation.
func WithOnCandidate(fn func(x, value float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// WithOnRoot registers a callback run for each verified root.
func WithOnRoot(fn func(x float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRoot = fn
		}
	}
}

// Result holds the outcome of a Search:
//   - Roots: verified rational roots, ascending, never containing 0.
//   - Count: len(Roots).
//   - Candidates: distinct positive candidates generated (each is tested
//     with both signs).
//   - Tested: number of polynomial evaluations performed.
type Result struct {
	Roots      []float64
	Count      int
	Candidates int
	Tested     int
}
