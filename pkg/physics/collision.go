// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// NewRectFromBounds builds a rect spanning [left, right] x [top, bottom].
func NewRectFromBounds(left, top, right, bottom float64) Rect {
	return Rect{
		Center: Vector2D{X: (left + right) / 2, Y: (top + bottom) / 2},
		Width:  right - left,
		Height: bottom - top,
	}
}

// Left returns the minimum X edge
func (r Rect) Left() float64 { return r.Center.X - r.Width/2 }

// Right returns the maximum X edge
func (r Rect) Right() float64 { return r.Center.X + r.Width/2 }

// Top returns the minimum Y edge
func (r Rect) Top() float64 { return r.Center.Y - r.Height/2 }

// Bottom returns the maximum Y edge
func (r Rect) Bottom() float64 { return r.Center.Y + r.Height/2 }

// Contains reports whether point lies inside the half-open rect
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Left() &&
		point.X < r.Right() &&
		point.Y >= r.Top() &&
		point.Y < r.Bottom()
}

// Inset shrinks the rect by padding on every side
func (r Rect) Inset(padding float64) Rect {
	return Rect{
		Center: r.Center,
		Width:  r.Width - 2*padding,
		Height: r.Height - 2*padding,
	}
}
