package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

type plainTexture struct{}

func (plainTexture) Width() float32  { return 10 }
func (plainTexture) Height() float32 { return 10 }

func TestNewTerminalBatch_CreatesBlankBuffer(t *testing.T) {
	batch := NewTerminalBatch(80, 30, 800, 600)

	if len(batch.buffer) != 30 {
		t.Fatalf("expected buffer height 30, got %d", len(batch.buffer))
	}
	for y, row := range batch.buffer {
		if len(row) != 80 {
			t.Fatalf("row %d: expected width 80, got %d", y, len(row))
		}
		for x, cell := range row {
			if cell != ' ' {
				t.Fatalf("cell (%d, %d) = %q, want blank", x, y, cell)
			}
		}
	}
}

func TestTerminalBatch_Draw_PlacesGlyphAtSpriteCenter(t *testing.T) {
	tests := []struct {
		name     string
		texture  entity.Texture
		position physics.Vector2D
		opts     entity.DrawOptions
		cellX    int
		cellY    int
		glyph    rune
	}{
		{
			name:     "centered ship",
			texture:  NewGlyphTexture('A', 64, 64),
			position: physics.Vector2D{X: 400, Y: 300},
			opts:     entity.DrawOptions{Origin: physics.Vector2D{X: 32, Y: 32}},
			cellX:    40,
			cellY:    15,
			glyph:    'A',
		},
		{
			name:     "scaled life icon",
			texture:  NewGlyphTexture('+', 64, 64),
			position: physics.Vector2D{X: 60, Y: 10},
			opts:     entity.DrawOptions{Scale: physics.Vector2D{X: 0.25, Y: 0.25}},
			cellX:    6,
			cellY:    0,
			glyph:    '+',
		},
		{
			name:     "texture without glyph",
			texture:  plainTexture{},
			position: physics.Vector2D{X: 100, Y: 100},
			opts:     entity.DrawOptions{},
			cellX:    10,
			cellY:    5,
			glyph:    fallbackGlyph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := NewTerminalBatch(80, 30, 800, 600)
			batch.Draw(tt.texture, tt.position, tt.opts)

			if got := batch.Cell(tt.cellX, tt.cellY); got != tt.glyph {
				t.Errorf("Cell(%d, %d) = %q, want %q", tt.cellX, tt.cellY, got, tt.glyph)
			}
		})
	}
}

func TestTerminalBatch_Draw_IgnoresOffscreenAndNil(t *testing.T) {
	batch := NewTerminalBatch(10, 5, 100, 50)

	batch.Draw(NewGlyphTexture('V', 4, 4), physics.Vector2D{X: -50, Y: 10}, entity.DrawOptions{})
	batch.Draw(NewGlyphTexture('V', 4, 4), physics.Vector2D{X: 10, Y: 500}, entity.DrawOptions{})
	batch.Draw(nil, physics.Vector2D{X: 10, Y: 10}, entity.DrawOptions{})

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if batch.Cell(x, y) != ' ' {
				t.Fatalf("expected blank buffer, found %q at (%d, %d)", batch.Cell(x, y), x, y)
			}
		}
	}
	if batch.Cell(-1, 0) != 0 || batch.Cell(10, 0) != 0 {
		t.Error("expected Cell outside the buffer to return 0")
	}
}

func TestTerminalBatch_Present(t *testing.T) {
	batch := NewTerminalBatch(4, 2, 40, 20)
	batch.Draw(NewGlyphTexture('A', 2, 2), physics.Vector2D{X: 15, Y: 5}, entity.DrawOptions{Origin: physics.Vector2D{X: 1, Y: 1}})
	batch.SetStatus("lives=3")

	var buf bytes.Buffer
	if err := batch.Present(&buf); err != nil {
		t.Fatalf("Present returned error: %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"+----+", "| A  |", "|    |", "lives=3"} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected output to contain %q, got:\n%s", expected, output)
		}
	}

	batch.Clear()
	if batch.Cell(1, 0) != ' ' {
		t.Error("expected Clear to blank the buffer")
	}
}

func TestGlyphLoader(t *testing.T) {
	assets := config.DefaultConfig().Assets
	loader := NewGlyphLoader(assets, nil)

	texture, err := loader.LoadTexture(assets.PlayerTexture)
	if err != nil {
		t.Fatalf("expected player texture, got error %v", err)
	}
	if glyph := texture.(*GlyphTexture).Glyph; glyph != 'A' {
		t.Errorf("expected player glyph 'A', got %q", glyph)
	}

	if _, err := loader.LoadTexture("textures/unknown.png"); err == nil {
		t.Error("expected error for an unknown texture")
	}

	sound, err := loader.LoadAudio(assets.LaserSound)
	if err != nil {
		t.Fatalf("expected laser sound, got error %v", err)
	}
	sound.SetVolume(0.5)
	sound.Play()
	silent := sound.(*SilentSound)
	if silent.Volume != 0.5 || silent.Plays != 1 {
		t.Errorf("unexpected sound state %+v", silent)
	}

	if _, err := loader.LoadAudio("audio/unknown.wav"); err == nil {
		t.Error("expected error for an unknown sound")
	}
}
