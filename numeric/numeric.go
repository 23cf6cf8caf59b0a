// Package numeric provides epsilon-aware helpers for floating-point comparison.
//
// Direct equality checks on floating-point numbers are unreliable: rounding in
// intermediate computations produces values that are "equal" geometrically but not
// bitwise. These helpers take the tolerance as an argument; callers in the library
// pass the module tolerance (graphical.Epsilon) explicitly.
package numeric

import "math"

// FloatEquals returns true if a and b are equal within epsilon.
func FloatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// FloatGreaterThan checks if 'a' is significantly greater than 'b'.
func FloatGreaterThan(a, b, epsilon float64) bool {
	return a > b && !FloatEquals(a, b, epsilon)
}

// FloatGreaterThanOrEqualTo checks if 'a' is greater than or equal to 'b'.
func FloatGreaterThanOrEqualTo(a, b, epsilon float64) bool {
	return a > b || FloatEquals(a, b, epsilon)
}

// FloatLessThan checks if 'a' is significantly less than 'b'.
func FloatLessThan(a, b, epsilon float64) bool {
	return a < b && !FloatEquals(a, b, epsilon)
}

// FloatLessThanOrEqualTo checks if 'a' is less than or equal to 'b'.
func FloatLessThanOrEqualTo(a, b, epsilon float64) bool {
	return a < b || FloatEquals(a, b, epsilon)
}

// SnapToEpsilon adjusts a floating-point value to eliminate small numerical
// imprecisions by snapping it to the nearest whole number if the difference is
// within epsilon. Values farther than epsilon from a whole number are returned
// unchanged.
func SnapToEpsilon(value, epsilon float64) float64 {
	rounded := math.Round(value)
	if math.Abs(value-rounded) < epsilon {
		return rounded
	}
	return value
}
