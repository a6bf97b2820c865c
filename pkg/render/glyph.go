// pkg/render/glyph.go
package render

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
	"github.com/opd-ai/go-spacefighter/pkg/resource"
)

// GlyphTexture stands in for an image in terminal mode
type GlyphTexture struct {
	Glyph         rune
	width, height float32
}

// NewGlyphTexture creates a texture drawn as glyph, sized in screen pixels
func NewGlyphTexture(glyph rune, width, height float32) *GlyphTexture {
	return &GlyphTexture{Glyph: glyph, width: width, height: height}
}

// Width returns the texture width in pixels
func (t *GlyphTexture) Width() float32 { return t.width }

// Height returns the texture height in pixels
func (t *GlyphTexture) Height() float32 { return t.height }

// SilentSound is an audio sample that only counts plays
type SilentSound struct {
	Path   string
	Volume float64
	Plays  int
}

// SetVolume records the volume
func (s *SilentSound) SetVolume(volume float64) { s.Volume = volume }

// Play counts a play
func (s *SilentSound) Play() { s.Plays++ }

type glyphSpec struct {
	glyph         rune
	width, height float32
}

// GlyphLoader serves glyph textures and silent sounds for the configured
// asset paths. Unknown paths fail like a missing file would.
type GlyphLoader struct {
	glyphs map[string]glyphSpec
	sounds map[string]bool
	logger *logging.Logger
}

// NewGlyphLoader creates a loader for the assets named in cfg
func NewGlyphLoader(cfg config.AssetConfig, logger *logging.Logger) *GlyphLoader {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &GlyphLoader{
		glyphs: map[string]glyphSpec{
			cfg.PlayerTexture:     {'A', 64, 64},
			cfg.LifeTexture:       {'+', 64, 64},
			cfg.EnemyTexture:      {'V', 48, 48},
			cfg.ProjectileTexture: {'|', 8, 16},
			cfg.ExplosionTexture:  {'*', 64, 64},
		},
		sounds: map[string]bool{cfg.LaserSound: true},
		logger: logger,
	}
}

// LoadTexture implements resource.Loader
func (l *GlyphLoader) LoadTexture(path string) (entity.Texture, error) {
	spec, ok := l.glyphs[path]
	if !ok || path == "" {
		return nil, fmt.Errorf("no glyph for texture %q", path)
	}
	return NewGlyphTexture(spec.glyph, spec.width, spec.height), nil
}

// LoadAudio implements resource.Loader
func (l *GlyphLoader) LoadAudio(path string) (entity.AudioSample, error) {
	if !l.sounds[path] || path == "" {
		return nil, fmt.Errorf("no sound %q", path)
	}
	l.logger.Debug(context.Background(), "Silent sound created", "path", path)
	return &SilentSound{Path: path, Volume: 1}, nil
}

var _ resource.Loader = (*GlyphLoader)(nil)
