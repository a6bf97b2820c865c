package entity

import (
	"image/color"

	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// Texture is a drawable image owned by a ResourceManager. Entities hold
// textures by reference and never release them.
type Texture interface {
	Width() float32
	Height() float32
}

// TextureCenter returns the texture's center in texture pixels
func TextureCenter(t Texture) physics.Vector2D {
	if t == nil {
		return physics.Zero
	}
	return physics.Vector2D{X: float64(t.Width()) / 2, Y: float64(t.Height()) / 2}
}

// AudioSample is a short sound effect owned by a ResourceManager
type AudioSample interface {
	SetVolume(volume float64)
	Play()
}

// ResourceManager loads and caches assets by path. A non-nil error means the
// asset is unavailable; callers are expected to carry on without it.
type ResourceManager interface {
	LoadTexture(path string) (Texture, error)
	LoadAudio(path string) (AudioSample, error)
}

// Level is the container a game object lives in
type Level interface {
	SpawnExplosion(source *GameObject)
	SpawnProjectile(projectile *Projectile)
	ResourceManager() ResourceManager
}

// Key identifies a polled keyboard key
type Key int

// Keys read by the player ship
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
)

// String returns the key's name
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	default:
		return "unknown"
	}
}

// InputState exposes the keyboard state for the current frame
type InputState interface {
	IsKeyDown(key Key) bool
}

// DrawOptions controls how a texture is submitted to a SpriteBatch
type DrawOptions struct {
	// Color tints the texture; nil means white
	Color color.Color
	// Origin is the point of the texture, in unscaled texture pixels,
	// that is placed at the draw position
	Origin physics.Vector2D
	// Scale multiplies the texture size; the zero value means (1, 1)
	Scale physics.Vector2D
}

// EffectiveScale returns Scale, treating the zero value as (1, 1)
func (o DrawOptions) EffectiveScale() physics.Vector2D {
	if o.Scale.IsZero() {
		return physics.One
	}
	return o.Scale
}

// TopLeft returns where the texture's top-left corner lands when drawn at position
func (o DrawOptions) TopLeft(position physics.Vector2D) physics.Vector2D {
	scale := o.EffectiveScale()
	return position.Sub(physics.Vector2D{X: o.Origin.X * scale.X, Y: o.Origin.Y * scale.Y})
}

// SpriteBatch accepts draw submissions for the current frame
type SpriteBatch interface {
	Draw(texture Texture, position physics.Vector2D, opts DrawOptions)
}
