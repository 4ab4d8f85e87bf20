package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func testScreen() *core.Screen {
	s := core.NewScreen(6, 2)
	s.DrawTextStyled(0, 0, "ab", core.Style{FG: core.ColorRed})
	s.DrawTextStyled(2, 0, "cd", core.Style{FG: core.ColorWhite, BG: core.ColorBlack, Bold: true})
	s.DrawText(0, 1, "plain")
	return s
}

func TestPaintAscii(t *testing.T) {
	s := testScreen()
	p := NewPainter(asciiRenderer())

	if got, want := p.Paint(s), s.String(); got != want {
		t.Errorf("Paint = %q, expected %q", got, want)
	}
}

func TestPaintTrueColor(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	p := NewPainter(r)

	out := p.Paint(testScreen())
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Errorf("red foreground missing from %q", out)
	}
	if !strings.Contains(out, "48;2;0;0;0") {
		t.Errorf("black background missing from %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows in %q", out)
	}
}

func TestPaintCachesStyles(t *testing.T) {
	p := NewPainter(asciiRenderer())
	s := testScreen()

	p.Paint(s)
	p.Paint(s)
	// red, white on black, unstyled
	if len(p.styles) != 3 {
		t.Errorf("got %d cached styles, expected 3", len(p.styles))
	}
}
