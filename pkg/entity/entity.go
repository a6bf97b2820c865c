// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

var lastID atomic.Uint64

// GenerateID returns a process-unique entity ID
func GenerateID() ID {
	return ID(lastID.Add(1))
}

// State is the lifecycle state of a game object
type State int

const (
	// StateInactive objects are neither updated, drawn nor collided
	StateInactive State = iota
	// StateActive objects take part in the frame
	StateActive
)

// String returns a readable state name
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// GameObject contains common functionality for all objects in a level
type GameObject struct {
	ID       ID
	Position physics.Vector2D
	Radius   float64
	State    State

	level Level
}

// GetID returns the object's unique identifier
func (o *GameObject) GetID() ID {
	return o.ID
}

// GetPosition returns the object's position
func (o *GameObject) GetPosition() physics.Vector2D {
	return o.Position
}

// SetPosition moves the object to p
func (o *GameObject) SetPosition(p physics.Vector2D) {
	o.Position = p
}

// TranslatePosition moves the object by offset
func (o *GameObject) TranslatePosition(offset physics.Vector2D) {
	o.Position = o.Position.Add(offset)
}

// GetCollider returns the object's collision shape
func (o *GameObject) GetCollider() physics.Circle {
	return physics.Circle{
		Center: o.Position,
		Radius: o.Radius,
	}
}

// Activate marks the object as taking part in the frame
func (o *GameObject) Activate() {
	o.State = StateActive
}

// Deactivate removes the object from the frame
func (o *GameObject) Deactivate() {
	o.State = StateInactive
}

// IsActive reports whether the object is active
func (o *GameObject) IsActive() bool {
	return o.State == StateActive
}

// CurrentLevel returns the level the object belongs to, or nil
func (o *GameObject) CurrentLevel() Level {
	return o.level
}

// SetCurrentLevel attaches the object to a level
func (o *GameObject) SetCurrentLevel(level Level) {
	o.level = level
}
