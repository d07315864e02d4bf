// File: doc.go
// Title: Math Utilities Package Documentation
// Description: Package mathx provides floating-point helpers for expression
//              evaluation including epsilon-based equality, rounding, and
//              display formatting.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial implementation

/*
Package mathx provides floating-point helpers for mRW expression evaluation.

Every mRW value is a float64, including the 1.0/0.0 results of comparisons.
Working in binary floating point means textbook identities do not hold
exactly: 0.1 + 0.2 is not 0.3 bit-for-bit. The equality helpers in this
package absorb that representation error with the machine epsilon while
leaving the ordering comparisons exact, matching the evaluation semantics
of the engine.

Equality:

	mathx.Equal(0.1+0.2, 0.3)        // true
	mathx.Equal(1.0, 1.0000001)      // false, beyond epsilon
	mathx.EqualWithin(1.0, 1.1, 0.2) // true, custom tolerance

Formatting for display:

	mathx.FormatValue(5.0)        // "5"
	mathx.FormatValue(22.0 / 7.0) // "3.142857142857143"
	mathx.FormatValue(math.Inf(1)) // "+Inf"
	mathx.FormatFixed(22.0/7.0, 2) // "3.14"

Division by zero is not an error in mRW, it yields an IEEE infinity. IsFinite
lets callers detect that before formatting or storing a result:

	if !mathx.IsFinite(result) {
		// overflow or division by zero
	}
*/
package mathx
