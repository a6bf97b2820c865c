// pkg/render/renderer_test.go
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

func TestNullBatch_LogsAndCounts(t *testing.T) {
	t.Setenv(logging.LevelEnvVar, "DEBUG")
	var buf bytes.Buffer
	batch := NewNullBatch(logging.NewLoggerWithWriter(&buf))

	batch.Begin()
	batch.Draw(NewGlyphTexture('A', 10, 20), physics.Vector2D{X: 1, Y: 2}, entity.DrawOptions{})
	batch.Draw(nil, physics.Zero, entity.DrawOptions{})
	batch.End()

	if batch.Draws() != 2 {
		t.Errorf("Expected 2 draws, got %d", batch.Draws())
	}

	output := buf.String()
	for _, expected := range []string{"Begin called", "Draw called", "Draw called with nil texture", "End called"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected log to contain %q, got: %s", expected, output)
		}
	}

	batch.Begin()
	if batch.Draws() != 0 {
		t.Errorf("Expected Begin to reset the count, got %d", batch.Draws())
	}
}

func TestNullBatch_NilLogger(t *testing.T) {
	batch := NewNullBatch(nil)
	batch.Draw(NewGlyphTexture('A', 1, 1), physics.Zero, entity.DrawOptions{})
	if batch.Draws() != 1 {
		t.Errorf("Expected 1 draw, got %d", batch.Draws())
	}
}
