// pkg/render/engo/assets.go
package engo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
)

// AssetLoader loads textures and sounds through engo's file system. With
// placeholders enabled, textures that cannot be loaded are replaced by
// generated sprites so the game stays playable without an assets directory.
type AssetLoader struct {
	placeholders map[string]placeholder
	usePattern   bool
	logger       *logging.Logger
}

type placeholder struct {
	width, height int
	pattern       [][]int
	color         color.RGBA
}

// NewAssetLoader creates a loader for the assets named in cfg
func NewAssetLoader(cfg config.AssetConfig, logger *logging.Logger) *AssetLoader {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &AssetLoader{
		placeholders: placeholderSprites(cfg),
		usePattern:   cfg.Placeholders,
		logger:       logger,
	}
}

// Preload queues every configured asset with engo. Missing files are
// logged and skipped; LoadTexture and LoadAudio report them later.
func (al *AssetLoader) Preload(cfg config.AssetConfig) {
	paths := []string{
		cfg.PlayerTexture,
		cfg.LifeTexture,
		cfg.EnemyTexture,
		cfg.ProjectileTexture,
		cfg.ExplosionTexture,
		cfg.LaserSound,
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := engo.Files.Load(path); err != nil {
			al.logger.Warn(context.Background(), "Asset preload failed",
				"path", path,
				"error", err.Error(),
			)
		}
	}
}

// LoadTexture implements resource.Loader
func (al *AssetLoader) LoadTexture(path string) (entity.Texture, error) {
	texture, err := common.LoadedSprite(path)
	if err == nil {
		return texture, nil
	}

	if sprite, ok := al.placeholders[path]; ok && al.usePattern {
		al.logger.Info(context.Background(), "Using placeholder sprite", "path", path)
		return al.createSprite(sprite), nil
	}
	return nil, fmt.Errorf("load sprite: %w", err)
}

// LoadAudio implements resource.Loader
func (al *AssetLoader) LoadAudio(path string) (entity.AudioSample, error) {
	player, err := common.LoadedPlayer(path)
	if err != nil {
		return nil, fmt.Errorf("load audio: %w", err)
	}
	return &Sound{player: player}, nil
}

// Sound adapts an engo audio player to a restartable sound effect
type Sound struct {
	player *common.Player
}

// SetVolume sets the playback volume in [0, 1]
func (s *Sound) SetVolume(volume float64) {
	s.player.SetVolume(volume)
}

// Play restarts the effect from the beginning
func (s *Sound) Play() {
	if err := s.player.Rewind(); err != nil {
		return
	}
	s.player.Play()
}

// placeholderSprites maps each configured texture to a generated pattern
func placeholderSprites(cfg config.AssetConfig) map[string]placeholder {
	return map[string]placeholder{
		cfg.PlayerTexture: {64, 64, scalePattern(shipPattern, 4), color.RGBA{120, 200, 255, 255}},
		cfg.LifeTexture:   {64, 64, scalePattern(shipPattern, 4), color.RGBA{255, 255, 255, 255}},
		cfg.EnemyTexture:  {48, 48, scalePattern(flipPattern(shipPattern), 3), color.RGBA{120, 255, 120, 255}},
		cfg.ProjectileTexture: {4, 12, [][]int{
			{0, 1, 1, 0},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{0, 1, 1, 0},
		}, color.RGBA{255, 255, 0, 255}},
		cfg.ExplosionTexture: {48, 48, scalePattern(circlePattern, 4), color.RGBA{255, 140, 0, 255}},
	}
}

var shipPattern = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 1, 1},
	{1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var circlePattern = [][]int{
	{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
}

// flipPattern mirrors a pattern vertically
func flipPattern(pattern [][]int) [][]int {
	flipped := make([][]int, len(pattern))
	for y, row := range pattern {
		flipped[len(pattern)-1-y] = append([]int(nil), row...)
	}
	return flipped
}

// scalePattern repeats every cell factor times in both directions
func scalePattern(pattern [][]int, factor int) [][]int {
	scaled := make([][]int, 0, len(pattern)*factor)
	for _, row := range pattern {
		wide := make([]int, 0, len(row)*factor)
		for _, pixel := range row {
			for i := 0; i < factor; i++ {
				wide = append(wide, pixel)
			}
		}
		for i := 0; i < factor; i++ {
			scaled = append(scaled, wide)
		}
	}
	return scaled
}

// createSprite uploads a placeholder pattern as a texture. Needs a GL context.
func (al *AssetLoader) createSprite(sprite placeholder) entity.Texture {
	img := createBaseImage(sprite.width, sprite.height)
	drawPatternOnImage(img, sprite.pattern, sprite.width, sprite.height, sprite.color)
	return convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
func drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int, fill color.RGBA) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, fill)
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func convertToEngoTexture(img *image.RGBA) *common.Texture {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	draw.Draw(nrgbaImg, bounds, img, bounds.Min, draw.Src)

	texture := common.NewTextureSingle(common.NewImageObject(nrgbaImg))
	return &texture
}
