// pkg/render/terminal.go
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// fallbackGlyph marks textures that carry no glyph of their own
const fallbackGlyph = '#'

// TerminalBatch provides a simple ASCII rendering of the screen. Each cell
// covers a fixed block of screen pixels; a sprite is drawn as one glyph at
// the cell holding its center.
type TerminalBatch struct {
	width  int
	height int
	buffer [][]rune
	cellW  float64
	cellH  float64
	status string
}

// NewTerminalBatch creates a terminal batch of width x height cells that
// shows a screen of screenW x screenH pixels
func NewTerminalBatch(width, height int, screenW, screenH float64) *TerminalBatch {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	b := &TerminalBatch{
		width:  width,
		height: height,
		buffer: buffer,
		cellW:  screenW / float64(width),
		cellH:  screenH / float64(height),
	}
	b.Clear()
	return b
}

// screenToCell converts screen pixels to a cell, reporting whether it is visible
func (b *TerminalBatch) screenToCell(pos physics.Vector2D) (int, int, bool) {
	x := int(math.Floor(pos.X / b.cellW))
	y := int(math.Floor(pos.Y / b.cellH))
	return x, y, x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Clear blanks the buffer
func (b *TerminalBatch) Clear() {
	for y := range b.buffer {
		for x := range b.buffer[y] {
			b.buffer[y][x] = ' '
		}
	}
	b.status = ""
}

// SetStatus sets the line printed under the frame
func (b *TerminalBatch) SetStatus(status string) {
	b.status = status
}

// Draw implements entity.SpriteBatch
func (b *TerminalBatch) Draw(texture entity.Texture, position physics.Vector2D, opts entity.DrawOptions) {
	if texture == nil {
		return
	}

	scale := opts.EffectiveScale()
	center := opts.TopLeft(position).Add(physics.Vector2D{
		X: float64(texture.Width()) * scale.X / 2,
		Y: float64(texture.Height()) * scale.Y / 2,
	})

	x, y, ok := b.screenToCell(center)
	if !ok {
		return
	}

	glyph := rune(fallbackGlyph)
	if g, ok := texture.(*GlyphTexture); ok {
		glyph = g.Glyph
	}
	b.buffer[y][x] = glyph
}

// Cell returns the glyph at a cell, or 0 outside the buffer
func (b *TerminalBatch) Cell(x, y int) rune {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.buffer[y][x]
}

// Present writes the frame, framed by a border, to w
func (b *TerminalBatch) Present(w io.Writer) error {
	out := bufio.NewWriter(w)

	fmt.Fprint(out, "\033[H\033[2J")
	border := "+" + strings.Repeat("-", b.width) + "+\n"
	out.WriteString(border)
	for y := range b.buffer {
		out.WriteByte('|')
		out.WriteString(string(b.buffer[y]))
		out.WriteString("|\n")
	}
	out.WriteString(border)
	if b.status != "" {
		out.WriteString(b.status)
		out.WriteByte('\n')
	}

	return out.Flush()
}

var _ entity.SpriteBatch = (*TerminalBatch)(nil)
