// pkg/physics/vector.go
package physics

import "math"

// NormalizePiOver4 scales a unit diagonal (±1, ±1) down to unit length.
const NormalizePiOver4 = 0.70710678118654752440

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64
	Y float64
}

var (
	// Zero is the zero vector
	Zero = Vector2D{}
	// UnitX points right along the screen X axis
	UnitX = Vector2D{X: 1}
	// UnitY points down along the screen Y axis
	UnitY = Vector2D{Y: 1}
	// One has both components set to 1
	One = Vector2D{X: 1, Y: 1}
)

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Lerp linearly interpolates from v toward target by amount t.
// t is not clamped; t=0 yields v and t=1 yields target.
func (v Vector2D) Lerp(target Vector2D, t float64) Vector2D {
	return Vector2D{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
	}
}

// IsZero reports whether both components are zero
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clamp restricts value to the closed interval [min, max].
func Clamp(min, max, value float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
