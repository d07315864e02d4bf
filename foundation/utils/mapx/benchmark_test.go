// File: benchmark_test.go
// Title: Map Utilities Benchmarks
// Description: Performance benchmarks for map utility functions to ensure
//              optimal performance with large variable environments.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial implementation with comprehensive benchmarks

package mapx

import (
	"strconv"
	"testing"
)

// Helper function to create test maps of various sizes
func createTestMap(size int) map[string]float64 {
	m := make(map[string]float64, size)
	for i := 0; i < size; i++ {
		m["var"+strconv.Itoa(i)] = float64(i)
	}
	return m
}

func BenchmarkKeys(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			m := createTestMap(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Keys(m)
			}
		})
	}
}

func BenchmarkValues(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			m := createTestMap(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Values(m)
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			m := createTestMap(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Clone(m)
			}
		})
	}
}

func BenchmarkFilter(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			m := createTestMap(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Filter(m, func(k string, v float64) bool {
					return v >= float64(size)/2
				})
			}
		})
	}
}

func BenchmarkMerge(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			m1 := createTestMap(size)
			m2 := createTestMap(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Merge(m1, m2)
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			m1 := createTestMap(size)
			m2 := createTestMap(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Equal(m1, m2)
			}
		})
	}
}

func BenchmarkTransformValues(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			m := createTestMap(size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = TransformValues(m, func(v float64) float64 {
					return v * 2
				})
			}
		})
	}
}

func BenchmarkHasKey(b *testing.B) {
	m := createTestMap(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = HasKey(m, "var500")
	}
}

func BenchmarkHasValue(b *testing.B) {
	m := createTestMap(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = HasValue(m, 500)
	}
}

// Memory allocation benchmarks

func BenchmarkKeysAllocs(b *testing.B) {
	m := createTestMap(100)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Keys(m)
	}
}

func BenchmarkCloneAllocs(b *testing.B) {
	m := createTestMap(100)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Clone(m)
	}
}
