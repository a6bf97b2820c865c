// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// spriteSystem is the part of common.RenderSystem the batch needs
type spriteSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// sprite is one pooled render entity
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// SpriteBatch implements entity.SpriteBatch on top of engo's render system.
// Draw calls reuse a pool of render entities; entities not drawn during a
// frame are hidden by End.
type SpriteBatch struct {
	system spriteSystem
	pool   []*sprite
	used   int
}

// NewSpriteBatch creates a batch that submits to system
func NewSpriteBatch(system spriteSystem) *SpriteBatch {
	return &SpriteBatch{system: system}
}

// Begin starts a frame
func (b *SpriteBatch) Begin() {
	b.used = 0
}

// Draw implements entity.SpriteBatch
func (b *SpriteBatch) Draw(texture entity.Texture, position physics.Vector2D, opts entity.DrawOptions) {
	drawable, ok := texture.(common.Drawable)
	if !ok || drawable == nil {
		return
	}

	s := b.next()
	scale := opts.EffectiveScale()
	topLeft := opts.TopLeft(position)

	s.RenderComponent.Drawable = drawable
	s.RenderComponent.Color = opts.Color
	if s.RenderComponent.Color == nil {
		s.RenderComponent.Color = color.White
	}
	s.RenderComponent.Scale = engo.Point{X: float32(scale.X), Y: float32(scale.Y)}
	s.RenderComponent.Hidden = false
	s.RenderComponent.SetZIndex(float32(b.used))

	s.SpaceComponent.Position = engo.Point{X: float32(topLeft.X), Y: float32(topLeft.Y)}
	s.SpaceComponent.Width = texture.Width() * float32(scale.X)
	s.SpaceComponent.Height = texture.Height() * float32(scale.Y)
}

// next returns the next free pooled sprite, growing the pool when needed
func (b *SpriteBatch) next() *sprite {
	if b.used == len(b.pool) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		b.system.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		b.pool = append(b.pool, s)
	}
	s := b.pool[b.used]
	b.used++
	return s
}

// End hides every pooled sprite not drawn this frame
func (b *SpriteBatch) End() {
	for _, s := range b.pool[b.used:] {
		s.RenderComponent.Hidden = true
	}
}

// Release removes all pooled sprites from the render system
func (b *SpriteBatch) Release() {
	for _, s := range b.pool {
		b.system.Remove(s.BasicEntity)
	}
	b.pool = nil
	b.used = 0
}

// Size returns the number of pooled sprites
func (b *SpriteBatch) Size() int {
	return len(b.pool)
}

var _ entity.SpriteBatch = (*SpriteBatch)(nil)
