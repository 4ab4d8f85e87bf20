package game

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Viewport maps window pixels onto a block of terminal cells.
type Viewport struct {
	W, H int // Window size in pixels
	Cols int // Cells across
	Rows int // Cells down
	Top  int // First screen row of the playfield
}

// Col returns the cell column containing pixel x.
func (v Viewport) Col(x int) int {
	return floorDiv(x*v.Cols, v.W)
}

// Row returns the screen row containing pixel y.
func (v Viewport) Row(y int) int {
	return v.Top + floorDiv(y*v.Rows, v.H)
}

// Rect returns the cells covered by a pixel rectangle. Any non-empty
// rectangle covers at least one cell.
func (v Viewport) Rect(r core.Rect) core.Rect {
	x0 := v.Col(r.Left())
	y0 := v.Row(r.Top())
	x1 := ceilDiv(r.Right()*v.Cols, v.W)
	y1 := v.Top + ceilDiv(r.Bottom()*v.Rows, v.H)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// PixelAt returns the pixel at the center of cell (col, row).
func (v Viewport) PixelAt(col, row int) (int, int) {
	x := (2*col + 1) * v.W / (2 * v.Cols)
	y := (2*(row-v.Top) + 1) * v.H / (2 * v.Rows)
	return x, y
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
