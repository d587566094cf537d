package rational

import "math"

// absMagnitude returns |n|, rejecting 0 and the unrepresentable |MinInt64|.
func absMagnitude(n int64) (int64, error) {
	switch {
	case n == 0:
		return 0, ErrZeroValue
	case n == math.MinInt64:
		return 0, ErrMagnitudeTooLarge
	case n < 0:
		return -n, nil
	}

	return n, nil
}

// CountDivisors returns how many positive integers divide |n|.
//
// Complexity: O(|n|).
func CountDivisors(n int64) (int, error) {
	m, err := absMagnitude(n)
	if err != nil {
		return 0, rationalErrorf(methodDivisors, err)
	}

	count := 0
	for d := int64(1); ; d++ {
		if m%d == 0 {
			count++
		}
		if d == m {
			break
		}
	}

	return count, nil
}

// Divisors lists the positive divisors of |n| in ascending order, including
// 1 and |n| itself. The sign of n is ignored.
//
// Example:
//
//	Divisors(-12) → [1 2 3 4 6 12]
//
// Errors:
//   - ErrZeroValue         — n == 0.
//   - ErrMagnitudeTooLarge — n == math.MinInt64.
//
// Complexity: O(|n|) time by plain trial division; the result slice is
// allocated once, sized by a preceding CountDivisors pass.
func Divisors(n int64) ([]int64, error) {
	count, err := CountDivisors(n)
	if err != nil {
		return nil, err
	}
	m, _ := absMagnitude(n)

	out := make([]int64, 0, count)
	for d := int64(1); ; d++ {
		if m%d == 0 {
			out = append(out, d)
		}
		if d == m {
			break
		}
	}

	return out, nil
}
