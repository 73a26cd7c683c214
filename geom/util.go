package geom

import "math"

const Tolerance = 1e-6

// Coordinates arrive from pointer events and get pushed through reflections
// and rescaling, so equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// The vertex sequence is a circular buffer. This gives the modular index given
// length n, but unlike the raw modulo operator, it only gives positive values.
// n must be positive.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
