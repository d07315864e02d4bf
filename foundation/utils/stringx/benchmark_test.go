// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the stringx functions to measure performance
//              and ensure optimal implementations. These benchmarks help
//              identify performance regressions and optimization
//              opportunities.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial benchmark implementation

package stringx

import (
	"strings"
	"testing"
)

// Benchmark core string utility functions
func BenchmarkIsEmpty(b *testing.B) {
	testStrings := []string{"", "hello", "hello world with some text"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsEmpty(testStrings[i%len(testStrings)])
	}
}

func BenchmarkIsBlank(b *testing.B) {
	testStrings := []string{"", "   ", "hello", "  hello  ", "pi = 22 / 7"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsBlank(testStrings[i%len(testStrings)])
	}
}

func BenchmarkTruncate(b *testing.B) {
	text := "This is a longer text that will be truncated in the benchmark test"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Truncate(text, 20, "...")
	}
}

func BenchmarkTruncateUnicode(b *testing.B) {
	text := "Größenwahnsinnige Ausdrücke überschreiten die Längengrenze"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Truncate(text, 10, "...")
	}
}

func BenchmarkContainsIgnoreCase(b *testing.B) {
	text := "Hello World This Is A Test String With Mixed Case"
	substr := "test string"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ContainsIgnoreCase(text, substr)
	}
}

// Compare with standard library approach
func BenchmarkContainsIgnoreCaseStdLib(b *testing.B) {
	text := "Hello World This Is A Test String With Mixed Case"
	substr := "test string"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = strings.Contains(strings.ToLower(text), strings.ToLower(substr))
	}
}

func BenchmarkPadLeft(b *testing.B) {
	text := "hello"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = PadLeft(text, 20, ' ')
	}
}

func BenchmarkPadRight(b *testing.B) {
	text := "hello"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = PadRight(text, 20, ' ')
	}
}

func BenchmarkCenter(b *testing.B) {
	text := "hello"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Center(text, 20, ' ')
	}
}

func BenchmarkSplitLines(b *testing.B) {
	text := "line1\nline2\r\nline3\rline4\nline5\r\nline6"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SplitLines(text)
	}
}

// Memory allocation benchmarks
func BenchmarkTruncateAllocs(b *testing.B) {
	text := "This is a text that will be truncated"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Truncate(text, 10, "...")
	}
}

func BenchmarkPadRightAllocs(b *testing.B) {
	text := "hello"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = PadRight(text, 20, ' ')
	}
}
