package game

import (
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Layout constants in window pixels.
const (
	PaddleBottomGap = 10  // Space between the paddle and the bottom edge
	ColorChannelMin = 40  // Block color channels are drawn from [40, 256)
	ColorChannelMax = 256 // Exclusive upper bound
)

// NewPaddle returns the paddle centered horizontally near the bottom edge.
func NewPaddle(cfg config.Level) core.Rect {
	return core.NewRect(
		cfg.Window.Width/2-cfg.Paddle.Width/2,
		cfg.Window.Height-cfg.Paddle.Height-PaddleBottomGap,
		cfg.Paddle.Width,
		cfg.Paddle.Height,
	)
}

// NewBall returns the ball's square collision box. Its left edge sits one
// full box width left of the window's center line.
func NewBall(cfg config.Level) core.Rect {
	size := cfg.Ball.RectSize()
	return core.NewRect(
		cfg.Window.Width/2-size,
		cfg.Window.Height/2,
		size,
		size,
	)
}

// NewBlocks returns the n x m block grid, column by column.
func NewBlocks(cfg config.Level) []core.Rect {
	b := cfg.Block
	blocks := make([]core.Rect, 0, b.Count())
	for i := range b.N {
		for j := range b.M {
			blocks = append(blocks, core.NewRect(
				b.PadW+(b.BlockW+2*b.PadW)*i,
				b.PadH+(b.BlockH+2*b.PadH)*j,
				b.BlockW,
				b.BlockH,
			))
		}
	}
	return blocks
}

// NewColors returns one random color per block, in block order.
func NewColors(cfg config.Level, rng *RNG) []core.Color {
	colors := make([]core.Color, cfg.Block.Count())
	for i := range colors {
		colors[i] = core.RGB(
			uint8(rng.Range(ColorChannelMin, ColorChannelMax)), //#nosec G115 -- range is within uint8
			uint8(rng.Range(ColorChannelMin, ColorChannelMax)), //#nosec G115 -- range is within uint8
			uint8(rng.Range(ColorChannelMin, ColorChannelMax)), //#nosec G115 -- range is within uint8
		)
	}
	return colors
}
