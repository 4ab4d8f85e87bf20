package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Painter converts a Screen buffer to styled terminal output.
// Styles are built once per distinct cell style and reused.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Style]lipgloss.Style
}

// NewPainter creates a painter for r. A nil renderer uses the default one,
// which detects the color support of stdout.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[core.Style]lipgloss.Style),
	}
}

func (p *Painter) style(st core.Style) lipgloss.Style {
	if style, ok := p.styles[st]; ok {
		return style
	}
	style := p.renderer.NewStyle().Bold(st.Bold)
	if st.FG.Set {
		style = style.Foreground(lipgloss.Color(st.FG.Hex()))
	}
	if st.BG.Set {
		style = style.Background(lipgloss.Color(st.BG.Hex()))
	}
	p.styles[st] = style
	return style
}

// Paint renders the screen row by row. Adjacent cells with the same style
// share one escape sequence.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			st := cellStyle(first)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cellStyle(cell) != st {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(st).Render(run.String()))
		}
	}
	return sb.String()
}

func cellStyle(c core.Cell) core.Style {
	return core.Style{FG: c.FG, BG: c.BG, Bold: c.Bold}
}
