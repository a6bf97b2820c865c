package physics

// BlendVelocity eases velocity toward direction*speed*deltaTime.
// The result is a per-frame displacement, not a per-second rate.
func BlendVelocity(velocity, direction Vector2D, speed, deltaTime, responsiveness float64) Vector2D {
	target := direction.Scale(speed * deltaTime)
	return velocity.Lerp(target, responsiveness)
}

// ConfinementResult reports which axes were pushed back inside the bounds.
type ConfinementResult struct {
	Position Vector2D
	ClampedX bool
	ClampedY bool
}

// Confine keeps a box of the given half extents centered at position inside
// bounds. Edges are checked left, right, top, bottom; when the box is larger
// than the bounds the right and bottom edges win.
func Confine(position, halfExtents Vector2D, bounds Rect) ConfinementResult {
	result := ConfinementResult{Position: position}

	if result.Position.X-halfExtents.X < bounds.Left() {
		result.Position.X = bounds.Left() + halfExtents.X
		result.ClampedX = true
	}
	if result.Position.X+halfExtents.X > bounds.Right() {
		result.Position.X = bounds.Right() - halfExtents.X
		result.ClampedX = true
	}
	if result.Position.Y-halfExtents.Y < bounds.Top() {
		result.Position.Y = bounds.Top() + halfExtents.Y
		result.ClampedY = true
	}
	if result.Position.Y+halfExtents.Y > bounds.Bottom() {
		result.Position.Y = bounds.Bottom() - halfExtents.Y
		result.ClampedY = true
	}

	return result
}
