// File: format.go
// Title: Float Formatting Functions
// Description: Implements display formatting for 64-bit floating-point values
//              used by the CLI, REPL, and server responses. The default format
//              is the shortest decimal representation that round-trips.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial implementation with shortest round-trip format

package mathx

import (
	"math"
	"strconv"
)

// FormatValue formats f as the shortest decimal string that parses back to
// the same float64. Whole values render without a fraction part (5, not 5.0),
// infinities render as +Inf and -Inf.
func FormatValue(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatFixed formats f with a fixed number of decimal places.
// Infinities and NaN fall back to FormatValue since a fixed-point rendering
// of them would be misleading.
func FormatFixed(f float64, places int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return FormatValue(f)
	}
	if places < 0 {
		return FormatValue(f)
	}
	return strconv.FormatFloat(f, 'f', places, 64)
}
