package core

import (
	"strings"
)

// Cell is a single character position on the screen with its styling.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Bold bool
}

// Style carries the colors and attributes applied by the drawing helpers.
type Style struct {
	FG   Color
	BG   Color
	Bold bool
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the game to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	s.Fill(' ', Style{})
}

// Fill fills the entire screen with the given rune and style.
func (s *Screen) Fill(r rune, st Style) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, FG: st.FG, BG: st.BG, Bold: st.Bold}
		}
	}
}

// Set places a rune at the given position, keeping the cell's background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetStyled places a rune with a foreground color and attributes.
// An unset background in st keeps the existing background.
func (s *Screen) SetStyled(x, y int, r rune, st Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	c := &s.cells[y][x]
	c.Rune = r
	c.FG = st.FG
	c.Bold = st.Bold
	if st.BG.Set {
		c.BG = st.BG
	}
}

// SetBackground changes only the background color of a cell.
func (s *Screen) SetBackground(x, y int, bg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].BG = bg
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the full cell at the given position.
// Returns an unstyled space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextStyled writes a styled string horizontally starting at (x, y).
func (s *Screen) DrawTextStyled(x, y int, text string, st Style) {
	i := 0
	for _, r := range text {
		s.SetStyled(x+i, y, r, st)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawTextCenteredStyled draws styled text centered horizontally at row y.
func (s *Screen) DrawTextCenteredStyled(y int, text string, st Style) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextStyled(x, y, text, st)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawRectStyled fills a rectangular area with the given rune and style.
func (s *Screen) DrawRectStyled(r Rect, fill rune, st Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetStyled(x, y, fill, st)
		}
	}
}

// Dim darkens every cell toward black by alpha, the way a translucent
// overlay would. Unset backgrounds become the dimmed black.
func (s *Screen) Dim(alpha uint8) {
	for y := range s.cells {
		for x := range s.cells[y] {
			c := &s.cells[y][x]
			c.BG = c.BG.Blend(ColorBlack, alpha)
			if c.FG.Set {
				c.FG = c.FG.Blend(ColorBlack, alpha)
			}
		}
	}
}

// String converts the screen buffer to a plain string without styling.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
