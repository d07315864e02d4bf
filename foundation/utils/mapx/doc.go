// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides extended functionality for working with
//              maps in Go, offering extraction, filtering, merging, comparison,
//              and transformation operations with type-safe generic
//              implementations.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial implementation with core map utilities

// Package mapx provides extended functionality for working with maps in Go.
//
// Package: mapx
// Title: Extended Map Utilities for Go
// Description: This package provides a focused set of utilities for working
//              with Go maps, including extraction, filtering, merging,
//              comparison, and transformation operations. It extends the
//              standard library's map functionality with operations used
//              throughout the mRW calculation platform, most prominently for
//              variable environments and configuration handling.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Overview
//
// The mapx package provides utilities for working with Go maps that address
// common patterns missing from the standard library. Using Go 1.18+ generics,
// it offers type-safe operations that work with any comparable key type and
// any value type, eliminating the need for interface{} conversions and runtime
// type assertions.
//
// Within mRW the primary consumers are the expression evaluator, which stores
// session variables as map[string]float64 and uses Keys() and Clone() for
// listing and snapshotting environments, and the server layer, which uses
// TransformValues() to render variable maps for transport and Filter() for
// sweeping expired sessions.
//
// Key capabilities include:
//   - Extraction: Keys(), Values() to pull data out of maps
//   - Filtering: Filter() to create new maps by key/value predicate
//   - Manipulation: Merge() with later-wins conflict resolution, Clone()
//   - Validation: HasKey(), HasValue(), IsEmpty(), Equal(), Size()
//   - Transformation: TransformValues() with type-changing value functions
//   - In-place operations: Clear()
//
// All functions follow consistent patterns:
//   - Input maps are never modified, except by Clear()
//   - New maps are returned for transformations
//   - Nil inputs are handled gracefully
//   - Generic type parameters maintain type safety
//
// Usage Examples
//
// Basic operations:
//
//	// Extract keys and values from a variable environment
//	vars := map[string]float64{"pi": 3.14159, "x": 10, "y": 25}
//	names := mapx.Keys(vars)     // []string{"pi", "x", "y"} in map order
//	values := mapx.Values(vars)  // []float64{3.14159, 10, 25} in map order
//
//	// Check existence
//	if mapx.HasKey(vars, "pi") {
//	    fmt.Println("pi is bound")
//	}
//
// Filtering and transformation:
//
//	// Keep only user-defined variables
//	userVars := mapx.Filter(vars, func(name string, _ float64) bool {
//	    return name != "pi" && name != "e"
//	})
//
//	// Render values for transport
//	rendered := mapx.TransformValues(vars, func(v float64) string {
//	    return strconv.FormatFloat(v, 'g', -1, 64)
//	})
//
// Map manipulation:
//
//	// Merge defaults with session state (later values override)
//	defaults := map[string]float64{"pi": 3.14159, "e": 2.71828}
//	session := map[string]float64{"x": 42}
//	env := mapx.Merge(defaults, session)
//
//	// Independent snapshot of an environment
//	snapshot := mapx.Clone(env)
//
// Comparison:
//
//	if mapx.Equal(before, after) {
//	    fmt.Println("environment unchanged")
//	}
//
// Performance Characteristics
//
// All operations run in O(n) time over the number of map entries. Extraction
// and transformation functions pre-allocate their results with the exact
// capacity needed, keeping allocations to a single call per operation. Clear()
// uses the compiler-optimized delete-in-range idiom and allocates nothing.
package mapx
