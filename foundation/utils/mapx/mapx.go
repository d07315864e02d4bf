// File: mapx.go
// Title: Core Map Utilities
// Description: Implements generic map utility functions including access,
//              filtering, merging, comparison, and transformation operations
//              for Go maps.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial implementation with core map utilities

package mapx

// Keys returns a slice of all keys from the map
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a slice of all values from the map
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Filter returns a new map containing only entries where both key and value match the predicate
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if m == nil {
		return nil
	}

	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// Merge creates a new map by merging multiple maps
// Later maps override values from earlier maps for duplicate keys
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	if len(maps) == 0 {
		return make(map[K]V)
	}

	// Calculate total capacity
	totalSize := 0
	for _, m := range maps {
		if m != nil {
			totalSize += len(m)
		}
	}

	result := make(map[K]V, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// HasKey checks if the map contains the specified key
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	if m == nil {
		return false
	}
	_, exists := m[key]
	return exists
}

// HasValue checks if the map contains the specified value
func HasValue[K comparable, V comparable](m map[K]V, value V) bool {
	if m == nil {
		return false
	}

	for _, v := range m {
		if v == value {
			return true
		}
	}
	return false
}

// IsEmpty checks if the map is empty or nil
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// Equal checks if two maps are equal (same keys with same values)
func Equal[K, V comparable](m1, m2 map[K]V) bool {
	if m1 == nil && m2 == nil {
		return true
	}
	if m1 == nil || m2 == nil {
		return false
	}
	if len(m1) != len(m2) {
		return false
	}

	for k, v1 := range m1 {
		if v2, exists := m2[k]; !exists || v1 != v2 {
			return false
		}
	}
	return true
}

// TransformValues applies a transformation function to all values in the map
func TransformValues[K comparable, V, R any](m map[K]V, transformer func(V) R) map[K]R {
	if m == nil {
		return nil
	}

	result := make(map[K]R, len(m))
	for k, v := range m {
		result[k] = transformer(v)
	}
	return result
}

// Size returns the number of entries in the map
func Size[K comparable, V any](m map[K]V) int {
	return len(m)
}

// Clear removes all entries from the map (modifies the original map)
func Clear[K comparable, V any](m map[K]V) {
	if m == nil {
		return
	}

	for k := range m {
		delete(m, k)
	}
}
