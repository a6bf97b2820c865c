// pkg/resource/health.go
package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/opd-ai/go-spacefighter/pkg/config"
)

// AssetCheck verifies that the assets a game needs can be loaded.
type AssetCheck struct {
	manager  *Manager
	textures []string
	sounds   []string
}

// NewAssetCheck creates a check for every asset named in cfg
func NewAssetCheck(manager *Manager, cfg config.AssetConfig) *AssetCheck {
	return &AssetCheck{
		manager: manager,
		textures: []string{
			cfg.PlayerTexture,
			cfg.LifeTexture,
			cfg.EnemyTexture,
			cfg.ProjectileTexture,
			cfg.ExplosionTexture,
		},
		sounds: []string{cfg.LaserSound},
	}
}

// Name returns the name of this health check.
func (a *AssetCheck) Name() string {
	return "assets"
}

// Check loads every asset, warming the cache, and reports all that failed.
// The game runs with missing assets, so callers usually only log the result.
func (a *AssetCheck) Check(ctx context.Context) error {
	var errs []error
	for _, path := range a.textures {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := a.manager.LoadTexture(path); err != nil {
			errs = append(errs, err)
		}
	}
	for _, path := range a.sounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := a.manager.LoadAudio(path); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d assets unavailable: %w",
			len(errs), len(a.textures)+len(a.sounds), errors.Join(errs...))
	}
	return nil
}
