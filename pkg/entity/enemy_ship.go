package entity

import (
	"image/color"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// EnemyShip drifts straight down the screen at a constant speed
type EnemyShip struct {
	Ship
	Velocity        physics.Vector2D
	CollisionDamage float64
	Texture         Texture
}

// NewEnemyShip creates an active enemy at position
func NewEnemyShip(cfg config.EnemyConfig, position physics.Vector2D) *EnemyShip {
	ship := NewShip(GenerateID(), position, cfg.HitPoints, cfg.Speed)
	ship.Radius = cfg.Radius

	return &EnemyShip{
		Ship:            *ship,
		Velocity:        physics.UnitY.Scale(cfg.Speed),
		CollisionDamage: cfg.CollisionDamage,
	}
}

// Update moves the enemy; it leaves play once fully below bounds
func (e *EnemyShip) Update(deltaTime float64, bounds physics.Rect) {
	if !e.IsActive() {
		return
	}
	e.TranslatePosition(e.Velocity.Scale(deltaTime))
	if e.Position.Y-e.Radius > bounds.Bottom() {
		e.Deactivate()
	}
	e.Ship.Update(deltaTime)
}

// Draw submits the enemy sprite centered on its position
func (e *EnemyShip) Draw(batch SpriteBatch) {
	if !e.IsActive() || e.Texture == nil {
		return
	}
	batch.Draw(e.Texture, e.Position, DrawOptions{
		Color:  color.White,
		Origin: TextureCenter(e.Texture),
	})
}
