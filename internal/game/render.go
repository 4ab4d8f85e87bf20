package game

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual constants for rendering.
const (
	BallChar      = '●'
	BlockChar     = '█'
	BlockEdgeChar = '▌'
	PaddleChar    = '▀'
	ExplosionChar = '▓'
	DimAlpha      = 200 // Overlay darkness behind dialogs
	HUDRows       = 1   // Rows above the playfield
)

// PlainBackdrop is the playfield color when no background image is loaded.
var PlainBackdrop = core.RGB(14, 14, 28)

// Backdrop supplies the background color at a window pixel.
type Backdrop interface {
	ColorAt(x, y int) core.Color
}

// Renderer draws a session into a screen buffer. The top row holds the HUD
// and the rest shows the playfield scaled to fit.
type Renderer struct {
	Backdrop Backdrop // nil draws PlainBackdrop
}

// Render draws the current screen of s. fx holds the events of the last tick;
// destroyed blocks among them flash for this frame only.
func (r *Renderer) Render(dst *core.Screen, s *Session, fx []Event) {
	dst.Clear()
	if dst.Width() < 1 || dst.Height() <= HUDRows {
		return
	}

	w := s.World()
	lvl := w.Level()
	view := Viewport{
		W:    lvl.Window.Width,
		H:    lvl.Window.Height,
		Cols: dst.Width(),
		Rows: dst.Height() - HUDRows,
		Top:  HUDRows,
	}

	r.drawBackdrop(dst, view)

	switch s.State() {
	case StatePlaying:
		r.drawWorld(dst, view, w)
		r.drawExplosions(dst, view, fx)
	case StateGameOver:
		r.drawWorld(dst, view, w)
		dst.Dim(DimAlpha)
		NewMessageCursor(view).PrintAll(dst, GameOverMessages(w.Result))
	case StateLevelSelect:
		dst.Dim(DimAlpha)
		NewMessageCursor(view).PrintAll(dst, LevelMenuMessages(int(s.Selected())))
	case StateHelp:
		dst.Dim(DimAlpha)
		NewMessageCursor(view).PrintAll(dst, HelpMessages())
	}

	r.drawHUD(dst, s)
}

func (r *Renderer) drawBackdrop(dst *core.Screen, view Viewport) {
	for row := view.Top; row < dst.Height(); row++ {
		for col := range dst.Width() {
			bg := PlainBackdrop
			if r.Backdrop != nil {
				x, y := view.PixelAt(col, row)
				if c := r.Backdrop.ColorAt(x, y); c.Set {
					bg = c
				}
			}
			dst.SetBackground(col, row, bg)
		}
	}
}

func (r *Renderer) drawWorld(dst *core.Screen, view Viewport, w *World) {
	for i, block := range w.Blocks {
		cells := coveredCells(view, block)
		st := core.Style{FG: w.Colors[i]}
		dst.DrawRectStyled(cells, BlockChar, st)
		if cells.W > 1 {
			// A half cell on the right edge keeps neighbours apart.
			for y := cells.Y; y < cells.Bottom(); y++ {
				dst.SetStyled(cells.Right()-1, y, BlockEdgeChar, st)
			}
		}
	}

	dst.DrawRectStyled(coveredCells(view, w.Paddle), PaddleChar, core.Style{FG: core.ColorDarkOrange})

	ballColor := core.ColorWhite
	if w.Supermode {
		ballColor = core.ColorRed
	}
	dst.SetStyled(view.Col(w.Ball.CenterX()), view.Row(w.Ball.CenterY()), BallChar, core.Style{FG: ballColor, Bold: true})
}

func (r *Renderer) drawExplosions(dst *core.Screen, view Viewport, fx []Event) {
	for _, e := range fx {
		if e.Kind != EventBlockDestroyed {
			continue
		}
		dst.DrawRectStyled(view.Rect(e.Explosion), ExplosionChar, core.Style{FG: e.Color})
	}
}

// drawHUD writes the status line: level, blocks left, tick rate and mode.
func (r *Renderer) drawHUD(dst *core.Screen, s *Session) {
	w := s.World()
	for x := range dst.Width() {
		dst.SetStyled(x, 0, ' ', core.Style{BG: core.ColorBlack})
	}

	left := fmt.Sprintf(" %s │ blocks %d │ fps %d", s.Level(), w.BlocksLeft(), w.FPS)
	dst.DrawTextStyled(0, 0, left, core.Style{FG: core.ColorWhite})

	var right string
	st := core.Style{FG: core.ColorGray}
	switch {
	case s.State() == StatePlaying && w.Supermode:
		right = "SUPERMODE "
		st = core.Style{FG: core.ColorRed, Bold: true}
	case s.State() == StateGameOver:
		right = w.Result.String() + " "
	default:
		right = s.State().String() + " "
	}
	dst.DrawTextStyled(dst.Width()-len(right), 0, right, st)
}

// coveredCells returns the cells whose center pixel lies inside r, as a
// rectangle. A rectangle smaller than a cell still covers the cell holding
// its center.
func coveredCells(view Viewport, r core.Rect) core.Rect {
	bounds := view.Rect(r)
	x0, y0 := bounds.Right(), bounds.Bottom()
	x1, y1 := bounds.X, bounds.Y
	for row := bounds.Y; row < bounds.Bottom(); row++ {
		for col := bounds.X; col < bounds.Right(); col++ {
			px, py := view.PixelAt(col, row)
			if !r.Contains(px, py) {
				continue
			}
			x0, y0 = min(x0, col), min(y0, row)
			x1, y1 = max(x1, col+1), max(y1, row+1)
		}
	}
	if x1 <= x0 || y1 <= y0 {
		return core.NewRect(view.Col(r.CenterX()), view.Row(r.CenterY()), 1, 1)
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
