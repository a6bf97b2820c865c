// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/engine"
	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/health"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
	"github.com/opd-ai/go-spacefighter/pkg/resource"
)

// GameScene represents the main game scene in Engo
type GameScene struct {
	config    *config.GameConfig
	logger    *logging.Logger
	loader    *AssetLoader
	resources *resource.Manager

	// Gameplay
	level     *engine.Level
	autopilot engine.Behavior
	useAI     bool

	// Rendering components
	batch *SpriteBatch
	input entity.InputState
}

// NewGameScene creates a new game scene for cfg
func NewGameScene(cfg *config.GameConfig, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &GameScene{
		config: cfg,
		logger: logger,
		loader: NewAssetLoader(cfg.Assets, logger),
	}
}

// UseAutopilot lets an autopilot fly the ship instead of the keyboard
func (scene *GameScene) UseAutopilot(behavior engine.Behavior) {
	scene.autopilot = behavior
	scene.useAI = true
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	scene.loader.Preload(scene.config.Assets)
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Warn(context.Background(), "Unexpected updater, scene not started")
		return
	}

	common.SetBackground(color.Black)

	// Add the common systems (required for Engo)
	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)
	world.AddSystem(&common.AudioSystem{})

	SetupInputBindings()

	scene.resources = resource.NewManager(scene.newLoader(), scene.logger)
	scene.level = engine.NewLevel(scene.config, scene.resources, scene.logger)
	scene.batch = NewSpriteBatch(renderSystem)

	if scene.useAI {
		scene.input = engine.NewAutopilot(scene.level, scene.autopilot)
	} else {
		scene.input = NewInputState()
	}

	world.AddSystem(&FrameSystem{scene: scene})
	scene.level.Start()

	checker := health.NewChecker()
	checker.AddCheck(resource.NewAssetCheck(scene.resources, scene.config.Assets))
	checker.AddCheck(health.NewLevelCheck(func() bool { return !scene.level.IsOver() }))
	if err := checker.Report(context.Background(), scene.logger); err != nil {
		scene.logger.Warn(context.Background(), "Starting with failed health checks", "error", err.Error())
	}
}

// newLoader wraps the engo loader in a circuit breaker when configured
func (scene *GameScene) newLoader() resource.Loader {
	limit := scene.config.Assets.MaxConsecutiveFailures
	if limit <= 0 {
		return scene.loader
	}
	retryAfter := time.Duration(scene.config.Assets.RetryAfterSeconds * float64(time.Second))
	return resource.NewBreakerLoader(scene.loader, uint32(limit), retryAfter, scene.logger)
}

// Level returns the running level, or nil before Setup
func (scene *GameScene) Level() *engine.Level {
	return scene.level
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	if scene.level != nil {
		scene.level.Stop()
	}
	if scene.resources != nil {
		stats := scene.resources.Stats()
		scene.logger.Info(context.Background(), "Scene exiting",
			"textures", stats.Textures,
			"sounds", stats.Sounds,
			"asset_failures", stats.Failures,
		)
	}
}

// FrameSystem steps the level once per engo frame: input, update, draw
type FrameSystem struct {
	scene *GameScene
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {}

// Update runs one frame of the game
func (fs *FrameSystem) Update(dt float32) {
	scene := fs.scene
	level := scene.level

	if QuitPressed() {
		engo.Exit()
		return
	}
	if level.IsOver() && RestartPressed() {
		level.Start()
	}

	if pilot, ok := scene.input.(*engine.Autopilot); ok {
		pilot.Decide()
	}
	level.HandleInput(scene.input)
	level.Update(float64(dt))

	scene.batch.Begin()
	level.Draw(scene.batch)
	scene.batch.End()
}
