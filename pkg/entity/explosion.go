package entity

import (
	"image/color"

	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// DefaultExplosionDuration is how long an explosion stays on screen, in seconds
const DefaultExplosionDuration = 0.6

// Explosion is a short-lived visual effect left behind by a destroyed object
type Explosion struct {
	GameObject
	SourceID ID
	Duration float64
	Elapsed  float64
	Texture  Texture
}

// NewExplosion creates an explosion at source's position
func NewExplosion(source *GameObject, duration float64) *Explosion {
	e := &Explosion{
		GameObject: GameObject{
			ID:    GenerateID(),
			State: StateActive,
		},
		Duration: duration,
	}
	if source != nil {
		e.SourceID = source.ID
		e.Position = source.Position
		e.Radius = source.Radius
	}
	return e
}

// Progress returns how far through its lifetime the explosion is, in [0, 1]
func (e *Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	return physics.Clamp(0, 1, e.Elapsed/e.Duration)
}

// Update ages the explosion and deactivates it when it has burned out
func (e *Explosion) Update(deltaTime float64) {
	if !e.IsActive() {
		return
	}
	e.Elapsed += deltaTime
	if e.Elapsed >= e.Duration {
		e.Deactivate()
	}
}

// Draw submits the explosion sprite, growing as it ages
func (e *Explosion) Draw(batch SpriteBatch) {
	if !e.IsActive() || e.Texture == nil {
		return
	}
	s := 0.5 + e.Progress()
	batch.Draw(e.Texture, e.Position, DrawOptions{
		Color:  color.White,
		Origin: TextureCenter(e.Texture),
		Scale:  physics.Vector2D{X: s, Y: s},
	})
}
