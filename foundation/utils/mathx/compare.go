// File: compare.go
// Title: Float Comparison Functions
// Description: Implements epsilon-based equality for 64-bit floating-point
//              values. Expression evaluation represents every value as a
//              float64, so equality checks must tolerate representation error
//              while the ordering comparisons stay exact.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial implementation with epsilon equality

package mathx

import (
	"math"
)

// DefaultEpsilon is the machine epsilon for float64 (2^-52), the difference
// between 1.0 and the next representable value.
const DefaultEpsilon = 2.220446049250313e-16

// Equal reports whether a and b differ by less than the machine epsilon.
// The comparison is absolute, not relative: 0.1+0.2 equals 0.3, while values
// that drifted apart over many operations do not. NaN never equals anything,
// including itself.
func Equal(a, b float64) bool {
	return EqualWithin(a, b, DefaultEpsilon)
}

// EqualWithin reports whether a and b differ by less than the given epsilon.
// Identical infinities compare equal even though their difference is NaN.
func EqualWithin(a, b, epsilon float64) bool {
	if a == b {
		// Covers identical infinities and exact matches
		return true
	}
	return math.Abs(a-b) < epsilon
}

// IsFinite reports whether f is neither infinite nor NaN
func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// RoundTo rounds f to the given number of decimal places using half-away-
// from-zero rounding. Negative places round to tens, hundreds, and so on.
// Infinities and NaN pass through unchanged.
func RoundTo(f float64, places int) float64 {
	if !IsFinite(f) {
		return f
	}
	// Scale by an exactly representable positive power of ten in both
	// directions, 0.1 and friends are not exact in binary.
	if places >= 0 {
		shift := math.Pow(10, float64(places))
		return math.Round(f*shift) / shift
	}
	shift := math.Pow(10, float64(-places))
	return math.Round(f/shift) * shift
}
