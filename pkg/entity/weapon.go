// pkg/entity/weapon.go
package entity

import (
	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// TriggerType is a bit set of fire buttons
type TriggerType uint8

// TriggerNone means no fire button is held
const TriggerNone TriggerType = 0

const (
	TriggerPrimary TriggerType = 1 << iota
	TriggerSecondary
)

// Weapon interface defines the methods all weapons must implement
type Weapon interface {
	Name() string
	Trigger() TriggerType
	SetFireSound(sound AudioSample)
	Update(deltaTime float64)
	// Fire launches a projectile from owner; false means the weapon
	// could not fire this frame.
	Fire(owner *Ship) bool
}

// Blaster fires straight projectiles with a fixed cooldown
type Blaster struct {
	name      string
	trigger   TriggerType
	cooldown  float64
	remaining float64
	speed     float64
	damage    float64
	direction physics.Vector2D
	sound     AudioSample
}

// NewBlaster creates an upward-firing blaster from configuration
func NewBlaster(cfg config.WeaponConfig, trigger TriggerType) *Blaster {
	return &Blaster{
		name:      cfg.Name,
		trigger:   trigger,
		cooldown:  cfg.CooldownSeconds,
		speed:     cfg.ProjectileSpeed,
		damage:    cfg.Damage,
		direction: physics.UnitY.Scale(-1),
	}
}

// Name returns the weapon's name
func (b *Blaster) Name() string {
	return b.name
}

// Trigger returns the trigger the weapon is bound to
func (b *Blaster) Trigger() TriggerType {
	return b.trigger
}

// SetFireSound sets the sound played on every shot; nil disables it
func (b *Blaster) SetFireSound(sound AudioSample) {
	b.sound = sound
}

// FireSound returns the current fire sound, or nil
func (b *Blaster) FireSound() AudioSample {
	return b.sound
}

// Update counts down the cooldown
func (b *Blaster) Update(deltaTime float64) {
	if b.remaining > 0 {
		b.remaining -= deltaTime
	}
}

// Ready reports whether the cooldown has elapsed
func (b *Blaster) Ready() bool {
	return b.remaining <= 0
}

// Fire launches a projectile through the owner's level
func (b *Blaster) Fire(owner *Ship) bool {
	if !b.Ready() || owner == nil {
		return false
	}
	level := owner.CurrentLevel()
	if level == nil {
		return false
	}

	level.SpawnProjectile(NewProjectile(owner.ID, owner.Position, b.direction.Scale(b.speed), b.damage))
	if b.sound != nil {
		b.sound.Play()
	}
	b.remaining = b.cooldown
	return true
}

// Projectile represents a weapon projectile in the game
type Projectile struct {
	GameObject
	OwnerID  ID
	Velocity physics.Vector2D
	Damage   float64
}

// NewProjectile creates an active projectile; velocity is in pixels per second
func NewProjectile(ownerID ID, position, velocity physics.Vector2D, damage float64) *Projectile {
	return &Projectile{
		GameObject: GameObject{
			ID:       GenerateID(),
			Position: position,
			Radius:   4,
			State:    StateActive,
		},
		OwnerID:  ownerID,
		Velocity: velocity,
		Damage:   damage,
	}
}

// Update moves the projectile and deactivates it once it leaves bounds
func (p *Projectile) Update(deltaTime float64, bounds physics.Rect) {
	if !p.IsActive() {
		return
	}
	p.TranslatePosition(p.Velocity.Scale(deltaTime))
	if !bounds.Contains(p.Position) {
		p.Deactivate()
	}
}
