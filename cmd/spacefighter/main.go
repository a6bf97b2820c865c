// cmd/spacefighter/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/engine"
	"github.com/opd-ai/go-spacefighter/pkg/health"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
	"github.com/opd-ai/go-spacefighter/pkg/render"
	engorender "github.com/opd-ai/go-spacefighter/pkg/render/engo"
	"github.com/opd-ai/go-spacefighter/pkg/resource"
)

const (
	frameTime = time.Second / 60

	// maxMemoryMB is the heap limit reported by the startup health check
	maxMemoryMB = 512
)

func main() {
	logger := logging.NewLoggerWithWriter(os.Stderr)
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	configPath := flag.String("config", "config.json", "Path to configuration file (.json, .yaml or .yml)")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo' or 'terminal'")
	autopilot := flag.String("autopilot", "", "Fly the ship automatically: explorer, aggressor or evader")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 0, "Screen width (overrides config)")
	height := flag.Int("height", 0, "Screen height (overrides config)")
	frames := flag.Int("frames", 0, "Frames to run before exiting (terminal only, 0 runs until game over)")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return
	}

	gameConfig, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}

	if *width > 0 {
		gameConfig.Screen.Width = *width
	}
	if *height > 0 {
		gameConfig.Screen.Height = *height
	}
	if *fullscreen {
		gameConfig.Screen.Fullscreen = true
	}
	if err := gameConfig.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}

	var behavior engine.Behavior
	useAutopilot := *autopilot != ""
	if useAutopilot {
		behavior, err = engine.ParseBehavior(*autopilot)
		if err != nil {
			logger.Error(ctx, "Invalid autopilot", err)
			os.Exit(1)
		}
	}

	switch *renderer {
	case "engo":
		startEngoRenderer(ctx, logger, gameConfig, behavior, useAutopilot)
	case "terminal":
		if !useAutopilot {
			behavior = engine.BehaviorExplorer
		}
		if err := runTerminal(ctx, logger, gameConfig, behavior, *frames); err != nil {
			logger.Error(ctx, "Terminal run failed", err)
			os.Exit(1)
		}
	default:
		logger.Error(ctx, "Unknown renderer", fmt.Errorf("renderer %q", *renderer))
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, falling back to defaults when it
// does not exist, then applies environment overrides
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.GameConfig, error) {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnvOverrides(gameConfig); err != nil {
		return nil, logging.WrapError(err, "apply environment overrides")
	}
	return gameConfig, nil
}

// startEngoRenderer opens a window and runs the game scene until it is closed
func startEngoRenderer(ctx context.Context, logger *logging.Logger, cfg *config.GameConfig, behavior engine.Behavior, useAutopilot bool) {
	scene := engorender.NewGameScene(cfg, logger)
	if useAutopilot {
		scene.UseAutopilot(behavior)
	}

	opts := engo.RunOptions{
		Title:      cfg.Screen.Title,
		Width:      cfg.Screen.Width,
		Height:     cfg.Screen.Height,
		Fullscreen: cfg.Screen.Fullscreen,
		VSync:      true,
		AssetsRoot: cfg.Assets.Root,
	}

	logger.Info(ctx, "Starting engo renderer",
		"width", opts.Width,
		"height", opts.Height,
		"autopilot", useAutopilot,
	)
	engo.Run(opts, scene)
}

// runTerminal plays the level headless, printing each frame as text. The ship
// is flown by the autopilot since there is no keyboard.
func runTerminal(ctx context.Context, logger *logging.Logger, cfg *config.GameConfig, behavior engine.Behavior, frames int) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var loader resource.Loader = render.NewGlyphLoader(cfg.Assets, logger)
	if limit := cfg.Assets.MaxConsecutiveFailures; limit > 0 {
		retryAfter := time.Duration(cfg.Assets.RetryAfterSeconds * float64(time.Second))
		loader = resource.NewBreakerLoader(loader, uint32(limit), retryAfter, logger)
	}
	resources := resource.NewManager(loader, logger)

	level := engine.NewLevel(cfg, resources, logger)
	pilot := engine.NewAutopilot(level, behavior)
	batch := render.NewTerminalBatch(80, 24, float64(cfg.Screen.Width), float64(cfg.Screen.Height))
	level.Start()

	checker := health.NewChecker()
	checker.AddCheck(resource.NewAssetCheck(resources, cfg.Assets))
	checker.AddCheck(health.NewLevelCheck(func() bool { return level.Status == engine.LevelStatusActive }))
	checker.AddCheck(health.NewMemoryCheck(maxMemoryMB, nil))
	if err := checker.Report(ctx, logger); err != nil {
		logger.Warn(ctx, "Continuing with failed health checks", "error", err.Error())
	}

	logger.Info(ctx, "Starting terminal renderer",
		"autopilot", behavior.String(),
		"frames", frames,
	)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for frame := 0; frames <= 0 || frame < frames; frame++ {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Interrupted", "tick", level.CurrentTick)
			return nil
		case <-ticker.C:
		}

		pilot.Decide()
		level.HandleInput(pilot)
		level.Update(frameTime.Seconds())

		batch.Clear()
		level.Draw(batch)
		batch.SetStatus(fmt.Sprintf("lives=%d hp=%.0f tick=%d enemies=%d",
			level.Player.Lives(), level.Player.HitPoints, level.CurrentTick, len(level.Enemies)))
		if err := batch.Present(os.Stdout); err != nil {
			return logging.WrapError(err, "present frame %d", frame)
		}

		if level.IsOver() {
			break
		}
	}

	stats := resources.Stats()
	logger.Info(ctx, "Terminal run finished",
		"tick", level.CurrentTick,
		"lives", level.Player.Lives(),
		"textures", stats.Textures,
		"sounds", stats.Sounds,
		"asset_failures", stats.Failures,
	)
	return nil
}
