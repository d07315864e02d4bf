// File: compare_test.go
// Title: Float Comparison Tests
// Description: Tests for epsilon-based equality, finiteness checks, and
//              rounding helpers.
// Version: v0.1.0
// Created: 2026-07-15
// Modified: 2026-07-15
//
// Change History:
// - 2026-07-15 v0.1.0: Initial test implementation

package mathx

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected bool
	}{
		{"identical values", 1.0, 1.0, true},
		{"classic float drift", 0.1 + 0.2, 0.3, true},
		{"well separated", 1.0, 1.1, false},
		{"just beyond epsilon", 1.0, 1.0 + 1e-15, false},
		{"within epsilon", 1.0, 1.0 + 1e-17, true},
		{"both zero", 0.0, 0.0, true},
		{"negative zero", 0.0, math.Copysign(0, -1), true},
		{"opposite signs", 1.0, -1.0, false},
		{"positive infinities", math.Inf(1), math.Inf(1), true},
		{"negative infinities", math.Inf(-1), math.Inf(-1), true},
		{"mixed infinities", math.Inf(1), math.Inf(-1), false},
		{"infinity and finite", math.Inf(1), 1e308, false},
		{"NaN never equal", math.NaN(), math.NaN(), false},
		{"NaN and finite", math.NaN(), 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expected {
				t.Errorf("Equal(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestEqualWithin(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		epsilon  float64
		expected bool
	}{
		{"wide tolerance", 1.0, 1.1, 0.2, true},
		{"tight tolerance", 1.0, 1.1, 0.05, false},
		{"boundary is exclusive", 1.0, 1.5, 0.5, false},
		{"zero tolerance exact match", 2.0, 2.0, 0.0, true},
		{"zero tolerance mismatch", 2.0, 2.0000001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualWithin(tt.a, tt.b, tt.epsilon); got != tt.expected {
				t.Errorf("EqualWithin(%v, %v, %v) = %v, expected %v",
					tt.a, tt.b, tt.epsilon, got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{"zero", 0.0, true},
		{"normal value", 3.14, true},
		{"largest finite", math.MaxFloat64, true},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
		{"NaN", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.value); got != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int
		expected float64
	}{
		{"two places", 3.14159, 2, 3.14},
		{"half rounds away from zero", 2.5, 0, 3.0},
		{"negative half rounds away from zero", -2.5, 0, -3.0},
		{"no fraction", 42.0, 3, 42.0},
		{"negative places round to tens", 1234.0, -1, 1230.0},
		{"zero places", 3.7, 0, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundTo(tt.value, tt.places); got != tt.expected {
				t.Errorf("RoundTo(%v, %d) = %v, expected %v",
					tt.value, tt.places, got, tt.expected)
			}
		})
	}

	t.Run("infinity passes through", func(t *testing.T) {
		if got := RoundTo(math.Inf(1), 2); !math.IsInf(got, 1) {
			t.Errorf("Expected +Inf to pass through, got %v", got)
		}
	})

	t.Run("NaN passes through", func(t *testing.T) {
		if got := RoundTo(math.NaN(), 2); !math.IsNaN(got) {
			t.Errorf("Expected NaN to pass through, got %v", got)
		}
	})
}

func BenchmarkEqual(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Equal(0.1+0.2, 0.3)
	}
}

func BenchmarkRoundTo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = RoundTo(3.14159265358979, 4)
	}
}
