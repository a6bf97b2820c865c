package entity

import (
	"testing"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateActive, "active"},
		{StateInactive, "inactive"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestGenerateIDIsUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if seen[id] {
			t.Fatalf("GenerateID returned duplicate %d", id)
		}
		seen[id] = true
	}
}

func TestGameObject_Movement(t *testing.T) {
	obj := &GameObject{Radius: 5}
	obj.SetPosition(physics.Vector2D{X: 1, Y: 2})
	obj.TranslatePosition(physics.Vector2D{X: 3, Y: -1})

	if obj.GetPosition() != (physics.Vector2D{X: 4, Y: 1}) {
		t.Errorf("Expected (4, 1), got %v", obj.GetPosition())
	}
	collider := obj.GetCollider()
	if collider.Center != obj.Position || collider.Radius != 5 {
		t.Errorf("Collider %v does not match object", collider)
	}
}

func TestShip_FireWeapons(t *testing.T) {
	level := &fakeLevel{}
	ship := NewShip(GenerateID(), physics.Vector2D{X: 100, Y: 100}, 3, 100)
	ship.SetCurrentLevel(level)

	weaponCfg := config.DefaultConfig().Weapon
	primary := NewBlaster(weaponCfg, TriggerPrimary)
	weaponCfg.Name = "Side Blaster"
	secondary := NewBlaster(weaponCfg, TriggerSecondary)
	ship.AttachWeapon(primary)
	ship.AttachWeapon(secondary)

	tests := []struct {
		name     string
		triggers TriggerType
		expected int
	}{
		{"none", TriggerNone, 0},
		{"primary", TriggerPrimary, 1},
		{"secondary", TriggerSecondary, 1},
		{"both on cooldown", TriggerPrimary | TriggerSecondary, 0},
	}

	for _, tt := range tests {
		if got := ship.FireWeapons(tt.triggers); got != tt.expected {
			t.Errorf("%s: FireWeapons() = %d, want %d", tt.name, got, tt.expected)
		}
	}

	if len(level.projectiles) != 2 {
		t.Errorf("Expected 2 projectiles, got %d", len(level.projectiles))
	}
}

func TestShip_FireWeapons_Inactive(t *testing.T) {
	ship := NewShip(GenerateID(), physics.Zero, 3, 100)
	ship.SetCurrentLevel(&fakeLevel{})
	ship.AttachWeapon(NewBlaster(config.DefaultConfig().Weapon, TriggerPrimary))
	ship.Deactivate()

	if fired := ship.FireWeapons(TriggerPrimary); fired != 0 {
		t.Errorf("Expected inactive ship not to fire, fired %d", fired)
	}
}

func TestShip_GetWeapon(t *testing.T) {
	ship := NewShip(GenerateID(), physics.Zero, 3, 100)
	ship.AttachWeapon(NewBlaster(config.DefaultConfig().Weapon, TriggerPrimary))

	if ship.GetWeapon("Main Blaster") == nil {
		t.Error("Expected to find Main Blaster")
	}
	if ship.GetWeapon("Torpedo") != nil {
		t.Error("Expected no Torpedo")
	}
}

func TestShip_Hit(t *testing.T) {
	level := &fakeLevel{}
	ship := NewShip(GenerateID(), physics.Vector2D{X: 5, Y: 5}, 3, 100)
	ship.SetCurrentLevel(level)

	ship.Hit(2)
	if !ship.IsActive() || ship.HitPoints != 1 {
		t.Fatalf("Expected active ship with 1 hit point, got active=%v hp=%v", ship.IsActive(), ship.HitPoints)
	}

	ship.Hit(1)
	if ship.IsActive() {
		t.Error("Expected ship to be destroyed")
	}
	if len(level.explosions) != 1 {
		t.Fatalf("Expected 1 explosion, got %d", len(level.explosions))
	}

	ship.Hit(1)
	if len(level.explosions) != 1 {
		t.Error("Expected destroyed ship to ignore further hits")
	}
}
