package game

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Font sizes of dialog lines, in pixels.
const (
	TitleSize = 30
	LineSize  = 20
)

// MessageStart is where the cursor sits relative to the window's vertical
// center before the first line.
const MessageStart = -130

// Message is one centered dialog line.
type Message struct {
	Text   string
	Size   int        // Font size in pixels; TitleSize lines are bold
	Color  core.Color // Text color
	Offset int        // Gap above the line in pixels; 0 means Size*1.5
}

// MessageCursor tracks the vertical position of the next dialog line.
// Each line advances the cursor before it is printed.
type MessageCursor struct {
	Y       int // Pixel position of the last printed line
	lastRow int
	view    Viewport
}

// NewMessageCursor creates a cursor starting just above the window's center.
func NewMessageCursor(view Viewport) *MessageCursor {
	return &MessageCursor{
		Y:       view.H/2 + MessageStart,
		lastRow: -1,
		view:    view,
	}
}

// Advance moves the cursor down by the given number of pixels.
func (c *MessageCursor) Advance(by int) {
	c.Y += by
}

// LineAdvance returns the default gap above a line of the given font size.
func LineAdvance(size int) int {
	return int(float64(size) * 1.5)
}

// Print advances past msg's gap and draws it centered on the cursor row.
// Lines that project onto an already used row move down to the next one.
func (c *MessageCursor) Print(dst *core.Screen, msg Message) {
	if msg.Offset != 0 {
		c.Advance(msg.Offset)
	} else {
		c.Advance(LineAdvance(msg.Size))
	}

	row := max(c.view.Row(c.Y), c.lastRow+1)
	c.lastRow = row
	dst.DrawTextCenteredStyled(row, msg.Text, core.Style{
		FG:   msg.Color,
		Bold: msg.Size >= TitleSize,
	})
}

// PrintAll prints each message in order.
func (c *MessageCursor) PrintAll(dst *core.Screen, msgs []Message) {
	for _, m := range msgs {
		c.Print(dst, m)
	}
}

// GameOverMessages returns the dialog shown when a game ends.
func GameOverMessages(result Result) []Message {
	title := "You lost!"
	if result == ResultWin {
		title = "You won!"
	}
	return []Message{
		{Text: title, Size: TitleSize, Color: core.ColorWhite},
		{Text: "(q) exit        ", Size: LineSize, Color: core.ColorWhite, Offset: 60},
		{Text: "(n) new game    ", Size: LineSize, Color: core.ColorWhite},
		{Text: "(s) select level", Size: LineSize, Color: core.ColorWhite},
		{Text: "(h) help        ", Size: LineSize, Color: core.ColorWhite, Offset: 50},
	}
}

// LevelMenuMessages returns the level menu with selected highlighted.
func LevelMenuMessages(selected int) []Message {
	entry := func(n int, text string) Message {
		color := core.ColorWhite
		if n == selected {
			color = core.ColorOrange
		}
		return Message{Text: text, Size: LineSize, Color: color}
	}

	msgs := []Message{{Text: "Select level:", Size: TitleSize, Color: core.ColorWhite}}
	first := entry(1, "(1) Velocity")
	first.Offset = 60
	msgs = append(msgs,
		first,
		entry(2, "(2) Cascade "),
		entry(3, "(3) Nexus   "),
		entry(4, "(4) Inferno "),
		entry(5, "(5) Odyssey "),
		Message{Text: "(h) help    ", Size: LineSize, Color: core.ColorWhite, Offset: 50},
	)
	return msgs
}

// HelpMessages returns the rules dialog.
func HelpMessages() []Message {
	lines := []string{
		"  Arkanoid is a game where you steer a paddle to   ",
		"  knock a ball into the blocks at the top of the   ",
		"  screen. The goal is to destroy every block       ",
		"  without letting the ball fall. If the ball       ",
		"  falls, you lose. Several levels are available,   ",
		"  each with its own difficulty and block layout.   ",
		"  Use the left and right arrows to move the paddle.",
	}
	msgs := []Message{{Text: "Rules:", Size: TitleSize, Color: core.ColorWhite}}
	for i, l := range lines {
		m := Message{Text: l, Size: LineSize, Color: core.ColorWhite}
		if i == 0 {
			m.Offset = 60
		}
		msgs = append(msgs, m)
	}
	return append(msgs, Message{Text: "                                          [Ok]     ", Size: LineSize, Color: core.ColorWhite, Offset: 60})
}
