// pkg/engine/autopilot.go
package engine

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// Behavior selects how an Autopilot flies
type Behavior int

const (
	BehaviorExplorer  Behavior = iota // Wanders the screen
	BehaviorAggressor                 // Lines up under enemies and fires
	BehaviorEvader                    // Keeps away from enemies, firing while clear
)

// ParseBehavior converts a behavior name to a Behavior
func ParseBehavior(name string) (Behavior, error) {
	switch name {
	case "explorer":
		return BehaviorExplorer, nil
	case "aggressor":
		return BehaviorAggressor, nil
	case "evader":
		return BehaviorEvader, nil
	default:
		return 0, fmt.Errorf("unknown autopilot behavior %q", name)
	}
}

// String returns the behavior name
func (b Behavior) String() string {
	switch b {
	case BehaviorExplorer:
		return "explorer"
	case BehaviorAggressor:
		return "aggressor"
	case BehaviorEvader:
		return "evader"
	default:
		return "unknown"
	}
}

const (
	alignTolerance = 12.0
	dangerRadius   = 150.0
)

// Autopilot flies the player ship of a level. Call Decide once per frame
// before handing it to Level.HandleInput.
type Autopilot struct {
	level    *Level
	behavior Behavior
	random   *rand.Rand
	held     map[entity.Key]bool
	heading  physics.Vector2D
}

// NewAutopilot creates an autopilot for level
func NewAutopilot(level *Level, behavior Behavior) *Autopilot {
	return &Autopilot{
		level:    level,
		behavior: behavior,
		random:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(behavior))),
		held:     make(map[entity.Key]bool),
		heading:  physics.Vector2D{X: 1},
	}
}

// IsKeyDown implements entity.InputState
func (a *Autopilot) IsKeyDown(key entity.Key) bool {
	return a.held[key]
}

// Decide chooses the keys held for this frame
func (a *Autopilot) Decide() {
	clear(a.held)

	player := a.level.Player
	if player == nil || !player.IsActive() {
		return
	}

	switch a.behavior {
	case BehaviorExplorer:
		a.executeExplorerBehavior(player)
	case BehaviorAggressor:
		a.executeAggressorBehavior(player)
	case BehaviorEvader:
		a.executeEvaderBehavior(player)
	}
}

// executeExplorerBehavior drifts in a direction that occasionally changes
func (a *Autopilot) executeExplorerBehavior(player *entity.PlayerShip) {
	if a.random.Float64() < 0.02 {
		a.heading = physics.Vector2D{
			X: float64(a.random.IntN(3) - 1),
			Y: float64(a.random.IntN(3) - 1),
		}
	}
	a.steer(a.heading)
	a.held[entity.KeySpace] = a.random.Float64() < 0.1
}

// executeAggressorBehavior moves under the nearest enemy and fires when aligned
func (a *Autopilot) executeAggressorBehavior(player *entity.PlayerShip) {
	target := a.findNearestEnemy(player.Position)
	if target == nil {
		return
	}

	dx := target.Position.X - player.Position.X
	if math.Abs(dx) > alignTolerance {
		a.steer(physics.Vector2D{X: math.Copysign(1, dx)})
		return
	}
	if target.Position.Y < player.Position.Y {
		a.held[entity.KeySpace] = true
	}
}

// executeEvaderBehavior backs away from any enemy inside the danger radius
func (a *Autopilot) executeEvaderBehavior(player *entity.PlayerShip) {
	threat := a.findNearestEnemy(player.Position)
	if threat == nil || threat.Position.Distance(player.Position) > dangerRadius {
		a.held[entity.KeySpace] = true
		return
	}
	a.steer(player.Position.Sub(threat.Position))
}

// steer holds the arrow keys pointing along direction
func (a *Autopilot) steer(direction physics.Vector2D) {
	a.held[entity.KeyRight] = direction.X > 0
	a.held[entity.KeyLeft] = direction.X < 0
	a.held[entity.KeyDown] = direction.Y > 0
	a.held[entity.KeyUp] = direction.Y < 0
}

func (a *Autopilot) findNearestEnemy(from physics.Vector2D) *entity.EnemyShip {
	var nearest *entity.EnemyShip
	best := math.Inf(1)
	for _, enemy := range a.level.Enemies {
		if !enemy.IsActive() {
			continue
		}
		if d := enemy.Position.Distance(from); d < best {
			best = d
			nearest = enemy
		}
	}
	return nearest
}

var _ entity.InputState = (*Autopilot)(nil)
