package game

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// CornerTolerance is the pixel band within which penetration depths on both
// axes count as a corner hit.
const CornerTolerance = 10

// ResolveBounce returns the velocity after the ball strikes rect.
//
// Penetration depth is measured on each axis from the side the ball is
// travelling toward. Depths within CornerTolerance of each other flip both
// axes. Otherwise the axis with the shallower depth is the one that was hit:
// a deeper x than y means a top or bottom face, so dy flips, and vice versa.
func ResolveBounce(dx, dy float64, ball, rect core.Rect) (float64, float64) {
	var deltaX, deltaY int
	if dx > 0 {
		deltaX = ball.Right() - rect.Left()
	} else {
		deltaX = rect.Right() - ball.Left()
	}
	if dy > 0 {
		deltaY = ball.Bottom() - rect.Top()
	} else {
		deltaY = rect.Bottom() - ball.Top()
	}

	switch {
	case core.Abs(deltaX-deltaY) < CornerTolerance:
		return -dx, -dy
	case deltaX > deltaY:
		return dx, -dy
	case deltaY > deltaX:
		return -dx, dy
	}
	return dx, dy
}
