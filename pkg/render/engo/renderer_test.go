package engo

import (
	"image/color"
	"testing"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

type recordingSystem struct {
	added   []*common.RenderComponent
	removed []ecs.BasicEntity
}

func (rs *recordingSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	rs.added = append(rs.added, render)
}

func (rs *recordingSystem) Remove(basic ecs.BasicEntity) {
	rs.removed = append(rs.removed, basic)
}

type plainTexture struct{}

func (plainTexture) Width() float32  { return 8 }
func (plainTexture) Height() float32 { return 8 }

func TestSpriteBatch_Draw(t *testing.T) {
	system := &recordingSystem{}
	batch := NewSpriteBatch(system)
	texture := &common.Texture{}

	batch.Begin()
	batch.Draw(texture, physics.Vector2D{X: 100, Y: 50}, entity.DrawOptions{
		Origin: physics.Vector2D{X: 10, Y: 20},
		Scale:  physics.Vector2D{X: 2, Y: 2},
	})
	batch.End()

	if len(system.added) != 1 || batch.Size() != 1 {
		t.Fatalf("expected one pooled sprite, got %d added and pool %d", len(system.added), batch.Size())
	}

	s := batch.pool[0]
	if s.SpaceComponent.Position.X != 80 || s.SpaceComponent.Position.Y != 10 {
		t.Errorf("expected top-left (80, 10), got %v", s.SpaceComponent.Position)
	}
	if s.RenderComponent.Scale.X != 2 || s.RenderComponent.Scale.Y != 2 {
		t.Errorf("expected scale 2, got %v", s.RenderComponent.Scale)
	}
	if s.RenderComponent.Color != color.White {
		t.Errorf("expected default white tint, got %v", s.RenderComponent.Color)
	}
	if s.RenderComponent.Hidden {
		t.Error("expected drawn sprite to be visible")
	}
}

func TestSpriteBatch_ReusesAndHides(t *testing.T) {
	system := &recordingSystem{}
	batch := NewSpriteBatch(system)
	texture := &common.Texture{}

	batch.Begin()
	for i := 0; i < 3; i++ {
		batch.Draw(texture, physics.Zero, entity.DrawOptions{})
	}
	batch.End()

	batch.Begin()
	batch.Draw(texture, physics.Zero, entity.DrawOptions{})
	batch.End()

	if len(system.added) != 3 {
		t.Errorf("expected the pool to be reused, %d sprites added", len(system.added))
	}
	if batch.pool[0].RenderComponent.Hidden {
		t.Error("expected the drawn sprite to be visible")
	}
	for i, s := range batch.pool[1:] {
		if !s.RenderComponent.Hidden {
			t.Errorf("expected unused sprite %d to be hidden", i+1)
		}
	}

	batch.Release()
	if len(system.removed) != 3 || batch.Size() != 0 {
		t.Errorf("expected all sprites released, removed %d, pool %d", len(system.removed), batch.Size())
	}
}

func TestSpriteBatch_IgnoresNonDrawables(t *testing.T) {
	system := &recordingSystem{}
	batch := NewSpriteBatch(system)

	batch.Begin()
	batch.Draw(plainTexture{}, physics.Zero, entity.DrawOptions{})
	batch.Draw(nil, physics.Zero, entity.DrawOptions{})
	batch.End()

	if len(system.added) != 0 {
		t.Errorf("expected nothing drawn, got %d sprites", len(system.added))
	}
}
