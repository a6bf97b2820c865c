package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file configuration
const (
	EnvScreenWidth   = "SPACEFIGHTER_SCREEN_WIDTH"
	EnvScreenHeight  = "SPACEFIGHTER_SCREEN_HEIGHT"
	EnvStartingLives = "SPACEFIGHTER_STARTING_LIVES"
	EnvAssetsRoot    = "SPACEFIGHTER_ASSETS_ROOT"
)

// ApplyEnvOverrides replaces config values with any set SPACEFIGHTER_* variables
func ApplyEnvOverrides(c *GameConfig) error {
	if err := overrideInt(EnvScreenWidth, &c.Screen.Width); err != nil {
		return err
	}
	if err := overrideInt(EnvScreenHeight, &c.Screen.Height); err != nil {
		return err
	}
	if err := overrideInt(EnvStartingLives, &c.Player.StartingLives); err != nil {
		return err
	}
	if root, ok := os.LookupEnv(EnvAssetsRoot); ok && root != "" {
		c.Assets.Root = root
	}
	return nil
}

func overrideInt(key string, target *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	*target = value
	return nil
}
