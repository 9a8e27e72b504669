package common

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Cyclic arithmetic shared by the chromatic, selector and axis packages

// Mod returns a modulo n folded into [0, n), so negative offsets wrap around
// the cycle instead of producing negative indices. n must be positive.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// WrapDegrees folds an angle into [0, period)
func WrapDegrees(deg, period float64) float64 {
	r := math.Mod(deg, period)
	if r < 0 {
		r += period
	}
	// -0 and values that round up to period both collapse to 0
	if r == 0 || scalar.EqualWithinAbs(r, period, 1e-12) {
		return 0
	}
	return r
}

// DegreesToRadians converts degrees to radians
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// AlmostEqual compares two floats with an absolute tolerance
func AlmostEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}
