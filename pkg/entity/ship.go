// pkg/entity/ship.go
package entity

import (
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// Ship is a game object with hit points and weapons
type Ship struct {
	GameObject
	HitPoints    float64
	MaxHitPoints float64
	Speed        float64
	Weapons      []Weapon
}

// NewShip creates an active ship at full hit points
func NewShip(id ID, position physics.Vector2D, maxHitPoints, speed float64) *Ship {
	return &Ship{
		GameObject: GameObject{
			ID:       id,
			Position: position,
			State:    StateActive,
		},
		HitPoints:    maxHitPoints,
		MaxHitPoints: maxHitPoints,
		Speed:        speed,
	}
}

// AttachWeapon adds a weapon to the ship
func (s *Ship) AttachWeapon(w Weapon) {
	s.Weapons = append(s.Weapons, w)
}

// GetWeapon returns the first weapon with the given name, or nil
func (s *Ship) GetWeapon(name string) Weapon {
	for _, w := range s.Weapons {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// FireWeapons fires every weapon bound to one of the triggers and returns
// how many actually fired
func (s *Ship) FireWeapons(triggers TriggerType) int {
	if !s.IsActive() || triggers == TriggerNone {
		return 0
	}

	fired := 0
	for _, w := range s.Weapons {
		if w.Trigger()&triggers == 0 {
			continue
		}
		if w.Fire(s) {
			fired++
		}
	}
	return fired
}

// Update handles the ship's state update for a single frame
func (s *Ship) Update(deltaTime float64) {
	for _, w := range s.Weapons {
		w.Update(deltaTime)
	}
}

// Hit applies damage; a ship with no hit points left is deactivated and
// replaced by an explosion
func (s *Ship) Hit(damage float64) {
	if !s.IsActive() {
		return
	}

	s.HitPoints -= damage
	if s.HitPoints > 0 {
		return
	}

	s.Deactivate()
	if level := s.CurrentLevel(); level != nil {
		level.SpawnExplosion(&s.GameObject)
	}
}
