package core

import "math"

const defaultEpsilon = 1e-12

// ZeroCenteredArray returns n increasing integers with zero at the center.
// For even n the extra element goes to the negative side, matching the
// convention -(n-1)/2 .. (n-1)/2 with integer floor division.
func ZeroCenteredArray(n int) []int {
	if n <= 0 {
		return nil
	}

	out := make([]int, n)
	start := floorDiv(-(n - 1), 2)
	for i := range out {
		out[i] = start + i
	}

	return out
}

// ArrayCenter returns the longer of x and y, and the shorter zero-padded on
// both ends so it matches the longer array's length. The shorter sequence is
// placed at the center of the padded slice.
func ArrayCenter(x, y []float64) (longer, padded []float64) {
	if len(x) < len(y) {
		x, y = y, x
	}

	padded = make([]float64, len(x))
	offset := (len(x) - len(y)) / 2
	copy(padded[offset:], y)

	return x, padded
}

// Wrap returns the smallest difference between t and a multiple of 2*a.
// The result lies in [-a, a) and may be negative.
func Wrap(t, a float64) float64 {
	m := math.Mod(t+a, 2*a)
	if m < 0 {
		m += 2 * a
	}

	return m - a
}

// ValleyFill returns a copy of x where every local valley is raised to the
// level of the next peak to its right. With flip set, the fill runs in the
// opposite direction (the input is reversed, filled, and reversed back).
func ValleyFill(x []float64, flip bool) []float64 {
	if flip {
		return reversed(ValleyFill(reversed(x), false))
	}

	out := make([]float64, len(x))
	copy(out, x)
	for i := len(out) - 2; i >= 0; i-- {
		if out[i] < out[i+1] {
			out[i] = out[i+1]
		}
	}

	return out
}

// NearlyEqual reports whether a and b are equal within eps, using a relative
// comparison for large magnitudes.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

func reversed(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}

	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
