// pkg/render/engo/scene_test.go
package engo

import (
	"testing"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/engine"
	"github.com/opd-ai/go-spacefighter/pkg/resource"
)

// TestNewGameScene tests the creation of a new game scene
func TestNewGameScene(t *testing.T) {
	cfg := config.DefaultConfig()
	scene := NewGameScene(cfg, nil)

	if scene == nil {
		t.Fatal("NewGameScene() returned nil")
	}
	if scene.config != cfg {
		t.Error("Expected config to be set correctly")
	}
	if scene.loader == nil {
		t.Error("Expected asset loader to be created")
	}
	if scene.Level() != nil {
		t.Error("Expected no level before Setup")
	}
	if scene.Type() != "GameScene" {
		t.Errorf("Expected Type() to return %q, got %q", "GameScene", scene.Type())
	}
}

func TestGameScene_UseAutopilot(t *testing.T) {
	scene := NewGameScene(config.DefaultConfig(), nil)
	scene.UseAutopilot(engine.BehaviorEvader)

	if !scene.useAI || scene.autopilot != engine.BehaviorEvader {
		t.Errorf("Expected evader autopilot, got useAI=%v behavior=%v", scene.useAI, scene.autopilot)
	}
}

func TestGameScene_NewLoader(t *testing.T) {
	tests := []struct {
		name        string
		limit       int
		wantBreaker bool
	}{
		{"breaker disabled", 0, false},
		{"breaker enabled", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Assets.MaxConsecutiveFailures = tt.limit
			scene := NewGameScene(cfg, nil)

			_, isBreaker := scene.newLoader().(*resource.BreakerLoader)
			if isBreaker != tt.wantBreaker {
				t.Errorf("Expected breaker=%v, got %v", tt.wantBreaker, isBreaker)
			}
		})
	}
}

func TestGameScene_ExitBeforeSetup(t *testing.T) {
	scene := NewGameScene(config.DefaultConfig(), nil)
	scene.Exit()
}
