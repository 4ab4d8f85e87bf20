package game

import (
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// testLevel mirrors the Velocity defaults.
func testLevel() config.Level {
	return config.Level{
		Name:   "Test",
		Window: config.WindowConfig{Width: 1200, Height: 800},
		Paddle: config.PaddleConfig{Width: 330, Height: 35, Speed: 15},
		Ball:   config.BallConfig{Radius: 20, Speed: 6},
		Block:  config.BlockConfig{PadW: 5, PadH: 5, BlockW: 100, BlockH: 50, N: 10, M: 4},
	}
}

// loadLevels returns the embedded default levels.
func loadLevels(t *testing.T) map[config.GameLevel]config.Level {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	levels, err := config.NewLoader("", nil).LoadAll()
	if err != nil {
		t.Fatalf("failed to load levels: %v", err)
	}
	return levels
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// withBlocks replaces the world's blocks, giving each a fixed color.
func withBlocks(w *World, blocks ...core.Rect) {
	w.Blocks = blocks
	w.Colors = make([]core.Color, len(blocks))
	for i := range w.Colors {
		w.Colors[i] = core.RGB(100, 150, 200)
	}
}
