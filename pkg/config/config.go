// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig contains configuration for a space fighter game
type GameConfig struct {
	Screen  ScreenConfig `json:"screen" yaml:"screen"`
	Player  PlayerConfig `json:"player" yaml:"player"`
	Weapon  WeaponConfig `json:"weapon" yaml:"weapon"`
	Enemies EnemyConfig  `json:"enemies" yaml:"enemies"`
	Assets  AssetConfig  `json:"assets" yaml:"assets"`
}

// ScreenConfig describes the playfield, which is also the window size
type ScreenConfig struct {
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Title      string `json:"title" yaml:"title"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen"`
}

// PlayerConfig tunes the player-controlled ship
type PlayerConfig struct {
	MaxHitPoints    float64 `json:"maxHitPoints" yaml:"maxHitPoints"`
	Speed           float64 `json:"speed" yaml:"speed"`
	StartingLives   int     `json:"startingLives" yaml:"startingLives"`
	Responsiveness  float64 `json:"responsiveness" yaml:"responsiveness"`
	SpawnOffsetY    float64 `json:"spawnOffsetY" yaml:"spawnOffsetY"`
	ScreenPadding   float64 `json:"screenPadding" yaml:"screenPadding"`
	CollisionRadius float64 `json:"collisionRadius" yaml:"collisionRadius"`
	LifeIconScale   float64 `json:"lifeIconScale" yaml:"lifeIconScale"`
	LifeIconSpacing float64 `json:"lifeIconSpacing" yaml:"lifeIconSpacing"`
	LifeIconMargin  float64 `json:"lifeIconMargin" yaml:"lifeIconMargin"`
}

// WeaponConfig describes the player's main blaster
type WeaponConfig struct {
	Name            string  `json:"name" yaml:"name"`
	CooldownSeconds float64 `json:"cooldownSeconds" yaml:"cooldownSeconds"`
	ProjectileSpeed float64 `json:"projectileSpeed" yaml:"projectileSpeed"`
	Damage          float64 `json:"damage" yaml:"damage"`
	SoundVolume     float64 `json:"soundVolume" yaml:"soundVolume"`
}

// EnemyConfig controls the demo level's drifting enemies
type EnemyConfig struct {
	SpawnIntervalSeconds float64 `json:"spawnIntervalSeconds" yaml:"spawnIntervalSeconds"`
	Speed                float64 `json:"speed" yaml:"speed"`
	HitPoints            float64 `json:"hitPoints" yaml:"hitPoints"`
	CollisionDamage      float64 `json:"collisionDamage" yaml:"collisionDamage"`
	Radius               float64 `json:"radius" yaml:"radius"`
}

// AssetConfig lists asset paths relative to Root
type AssetConfig struct {
	Root              string `json:"root" yaml:"root"`
	PlayerTexture     string `json:"playerTexture" yaml:"playerTexture"`
	LifeTexture       string `json:"lifeTexture" yaml:"lifeTexture"`
	LaserSound        string `json:"laserSound" yaml:"laserSound"`
	EnemyTexture      string `json:"enemyTexture" yaml:"enemyTexture"`
	ProjectileTexture string `json:"projectileTexture" yaml:"projectileTexture"`
	ExplosionTexture  string `json:"explosionTexture" yaml:"explosionTexture"`
	// Placeholders substitutes generated sprites for textures that fail to load.
	Placeholders bool `json:"placeholders" yaml:"placeholders"`
	// MaxConsecutiveFailures stops asset loading after that many failures
	// in a row; zero never stops.
	MaxConsecutiveFailures int     `json:"maxConsecutiveFailures" yaml:"maxConsecutiveFailures"`
	RetryAfterSeconds      float64 `json:"retryAfterSeconds" yaml:"retryAfterSeconds"`
}

// ErrUnsupportedFormat is returned for config files that are neither JSON nor YAML
var ErrUnsupportedFormat = errors.New("unsupported config format")

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadConfig loads a configuration from a JSON or YAML file. Fields absent
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (*GameConfig, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file, choosing the encoding by extension
func SaveConfig(config *GameConfig, path string) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatYAML:
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  1600,
			Height: 900,
			Title:  "Space Fighter",
		},
		Player: PlayerConfig{
			MaxHitPoints:    3,
			Speed:           300,
			StartingLives:   3,
			Responsiveness:  0.1,
			SpawnOffsetY:    300,
			ScreenPadding:   4,
			CollisionRadius: 20,
			LifeIconScale:   0.25,
			LifeIconSpacing: 50,
			LifeIconMargin:  10,
		},
		Weapon: WeaponConfig{
			Name:            "Main Blaster",
			CooldownSeconds: 0.35,
			ProjectileSpeed: 600,
			Damage:          1,
			SoundVolume:     0.5,
		},
		Enemies: EnemyConfig{
			SpawnIntervalSeconds: 1.5,
			Speed:                120,
			HitPoints:            1,
			CollisionDamage:      3,
			Radius:               18,
		},
		Assets: AssetConfig{
			Root:              "assets",
			PlayerTexture:     "textures/player_ship.png",
			LifeTexture:       "textures/lives.png",
			LaserSound:        "audio/effects/laser.wav",
			EnemyTexture:      "textures/bio_enemy_ship.png",
			ProjectileTexture: "textures/bullet.png",
			ExplosionTexture:  "textures/explosion.png",
			Placeholders:      true,

			MaxConsecutiveFailures: 8,
			RetryAfterSeconds:      30,
		},
	}
}

// Validate checks the configuration for values the game cannot run with
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if pad := c.Player.ScreenPadding; pad < 0 || 2*pad >= float64(c.Screen.Width) || 2*pad >= float64(c.Screen.Height) {
		errs = append(errs, fmt.Errorf("screen padding %v does not fit a %dx%d screen", pad, c.Screen.Width, c.Screen.Height))
	}
	if c.Player.MaxHitPoints <= 0 {
		errs = append(errs, fmt.Errorf("player max hit points must be positive, got %v", c.Player.MaxHitPoints))
	}
	if c.Player.StartingLives < 1 {
		errs = append(errs, fmt.Errorf("player starting lives must be at least 1, got %d", c.Player.StartingLives))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Weapon.CooldownSeconds < 0 {
		errs = append(errs, fmt.Errorf("weapon cooldown must not be negative, got %v", c.Weapon.CooldownSeconds))
	}
	if c.Assets.MaxConsecutiveFailures < 0 {
		errs = append(errs, fmt.Errorf("asset failure limit must not be negative, got %d", c.Assets.MaxConsecutiveFailures))
	}
	if c.Enemies.SpawnIntervalSeconds <= 0 {
		errs = append(errs, fmt.Errorf("enemy spawn interval must be positive, got %v", c.Enemies.SpawnIntervalSeconds))
	}

	return errors.Join(errs...)
}
