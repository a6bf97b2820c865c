// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// NullBatch is a SpriteBatch that only logs and counts submissions.
type NullBatch struct {
	logger *logging.Logger
	draws  int
}

// NewNullBatch creates a new NullBatch with structured logging.
func NewNullBatch(logger *logging.Logger) *NullBatch {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &NullBatch{logger: logger}
}

// Begin starts a frame.
func (b *NullBatch) Begin() {
	b.draws = 0
	b.logger.Debug(context.Background(), "Begin called")
}

// Draw implements entity.SpriteBatch.
func (b *NullBatch) Draw(texture entity.Texture, position physics.Vector2D, opts entity.DrawOptions) {
	b.draws++
	if texture == nil {
		b.logger.Debug(context.Background(), "Draw called with nil texture")
		return
	}
	b.logger.Debug(context.Background(), "Draw called",
		"x", position.X,
		"y", position.Y,
		"width", texture.Width(),
		"height", texture.Height(),
	)
}

// End finishes a frame.
func (b *NullBatch) End() {
	b.logger.Debug(context.Background(), "End called", "draws", b.draws)
}

// Draws returns the number of submissions since Begin.
func (b *NullBatch) Draws() int {
	return b.draws
}

var _ entity.SpriteBatch = (*NullBatch)(nil)
