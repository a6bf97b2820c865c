// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "mixed_signs",
			v1:       Vector2D{X: 5, Y: -3},
			v2:       Vector2D{X: -2, Y: 7},
			expected: Vector2D{X: 3, Y: 4},
		},
		{
			name:     "zero_vector",
			v1:       Zero,
			v2:       Vector2D{X: 5, Y: -3},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Normalize(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}.Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("Normalize() length = %f, expected 1", v.Length())
	}

	if z := Zero.Normalize(); z != Zero {
		t.Errorf("Normalize() of zero vector = %v, expected zero", z)
	}
}

func TestVector2D_Lerp(t *testing.T) {
	from := Vector2D{X: 0, Y: 10}
	to := Vector2D{X: 10, Y: 0}

	tests := []struct {
		name     string
		amount   float64
		expected Vector2D
	}{
		{"start", 0, from},
		{"end", 1, to},
		{"midpoint", 0.5, Vector2D{X: 5, Y: 5}},
		{"tenth", 0.1, Vector2D{X: 1, Y: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := from.Lerp(to, tt.amount)
			if !almostEqual(result.X, tt.expected.X) || !almostEqual(result.Y, tt.expected.Y) {
				t.Errorf("Lerp(%v) = %v, expected %v", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"below", -0.5, 0},
		{"inside", 0.3, 0.3},
		{"above", 7, 1},
		{"lower_edge", 0, 0},
		{"upper_edge", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(0, 1, tt.value); got != tt.expected {
				t.Errorf("Clamp(0, 1, %v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestNormalizePiOver4_DiagonalHasUnitLength(t *testing.T) {
	diagonal := Vector2D{X: 1, Y: -1}.Scale(NormalizePiOver4)
	if !almostEqual(diagonal.Length(), UnitX.Length()) {
		t.Errorf("diagonal length = %f, expected %f", diagonal.Length(), UnitX.Length())
	}
}
