// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the mRW platform,
//              offering Unicode-safe string manipulation, performance optimizations,
//              and commonly needed utilities that extend Go's standard library.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial implementation with core string utilities

// Package stringx provides extended string operations for the mRW platform.
//
// Package: stringx
// Title: Extended String Operations for mRW Foundation
// Description: This package provides essential string utilities that extend
//              the Go standard library with commonly needed operations.
//              Focus on Unicode safety, performance, and developer ergonomics
//              for production-ready string manipulation.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// # Overview
//
// The stringx package extends Go's standard strings package with utilities
// the mRW platform needs across its input validation, terminal rendering,
// and configuration layers. All operations are Unicode-aware: lengths count
// runes, truncation never splits multi-byte characters, and padding handles
// wide pad runes correctly.
//
// Key capabilities include:
//   - Empty and blank checking for input validation
//   - Unicode-safe truncation with ellipsis
//   - Padding and centering for terminal table output
//   - Line splitting across \n, \r\n, and \r conventions
//   - Default-value chaining for configuration fallbacks
//   - Validation helpers returning structured Foundation errors
//
// # Usage Examples
//
// Input validation before expression processing:
//
//	if stringx.IsBlank(input) {
//	    return errors.New("expression input cannot be empty")
//	}
//
// Unicode-aware truncation for log output:
//
//	short := stringx.Truncate(expression, 80, "...")
//
// Terminal table rendering:
//
//	fmt.Println(stringx.PadRight("Token", 20, ' ') + "Position")
//	fmt.Println(stringx.Center("mRW", 40, '='))
//
// Configuration fallback chains:
//
//	path := stringx.FirstNonBlank(flagPath, envPath, defaultPath)
//	host := stringx.FromBlankDefault(cfgHost, "localhost")
//
// Structured validation with Foundation error codes:
//
//	if err := stringx.ValidateLength(sessionID, 1, 64); err != nil {
//	    return err // carries CodeValidationFailed with length details
//	}
//
// # Performance
//
// PadLeft, PadRight, and Center take an exact-allocation fast path when both
// the input and the pad character are ASCII, falling back to a
// strings.Builder for Unicode input. The predicates IsEmpty, IsBlank, and
// their inverses allocate nothing.
package stringx
