package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		state game.State
		want  core.Action
	}{
		{"left playing", tea.KeyMsg{Type: tea.KeyLeft}, game.StatePlaying, core.ActionLeft},
		{"right playing", tea.KeyMsg{Type: tea.KeyRight}, game.StatePlaying, core.ActionRight},
		{"left on menu", tea.KeyMsg{Type: tea.KeyLeft}, game.StateLevelSelect, core.ActionNone},
		{"space playing", tea.KeyMsg{Type: tea.KeySpace}, game.StatePlaying, core.ActionSupermodeOn},
		{"esc playing", tea.KeyMsg{Type: tea.KeyEsc}, game.StatePlaying, core.ActionSupermodeOff},
		{"esc help", tea.KeyMsg{Type: tea.KeyEsc}, game.StateHelp, core.ActionDismiss},
		{"esc game over", tea.KeyMsg{Type: tea.KeyEsc}, game.StateGameOver, core.ActionNone},
		{"enter menu", tea.KeyMsg{Type: tea.KeyEnter}, game.StateLevelSelect, core.ActionConfirm},
		{"enter help", tea.KeyMsg{Type: tea.KeyEnter}, game.StateHelp, core.ActionConfirm},
		{"digit menu", runeKey('3'), game.StateLevelSelect, core.ActionLevel3},
		{"digit five", runeKey('5'), game.StateLevelSelect, core.ActionLevel5},
		{"digit out of range", runeKey('7'), game.StateLevelSelect, core.ActionNone},
		{"digit playing", runeKey('3'), game.StatePlaying, core.ActionNone},
		{"q playing", runeKey('q'), game.StatePlaying, core.ActionQuit},
		{"q game over", runeKey('q'), game.StateGameOver, core.ActionQuit},
		{"q on menu", runeKey('q'), game.StateLevelSelect, core.ActionNone},
		{"s playing", runeKey('s'), game.StatePlaying, core.ActionLevelSelect},
		{"s game over", runeKey('s'), game.StateGameOver, core.ActionLevelSelect},
		{"n game over", runeKey('n'), game.StateGameOver, core.ActionNewGame},
		{"n playing", runeKey('n'), game.StatePlaying, core.ActionNone},
		{"h game over", runeKey('h'), game.StateGameOver, core.ActionHelp},
		{"h menu", runeKey('h'), game.StateLevelSelect, core.ActionHelp},
		{"h playing", runeKey('h'), game.StatePlaying, core.ActionNone},
		{"unbound", runeKey('x'), game.StatePlaying, core.ActionNone},
	}

	keys := DefaultKeyMap()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg, tt.state); got != tt.want {
				t.Errorf("Action = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestKeyMapCloseEverywhere(t *testing.T) {
	keys := DefaultKeyMap()
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}

	for _, state := range []game.State{game.StateLevelSelect, game.StatePlaying, game.StateGameOver, game.StateHelp} {
		if got := keys.Action(ctrlC, state); got != core.ActionClose {
			t.Errorf("ctrl+c in %v = %v, expected Close", state, got)
		}
	}
}

func TestScreenHelp(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		state game.State
		first string
		count int
	}{
		{game.StatePlaying, "←", 7},
		{game.StateGameOver, "n", 5},
		{game.StateLevelSelect, "1-5", 4},
		{game.StateHelp, "enter", 3},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			short := keys.ScreenHelp(tt.state).ShortHelp()
			if len(short) != tt.count {
				t.Fatalf("got %d bindings, expected %d", len(short), tt.count)
			}
			if got := short[0].Help().Key; got != tt.first {
				t.Errorf("first binding = %q, expected %q", got, tt.first)
			}
			if got := short[len(short)-1].Help().Key; got != "ctrl+c" {
				t.Errorf("last binding = %q, expected ctrl+c", got)
			}
		})
	}
}

func TestHoldState(t *testing.T) {
	var h holdState
	h.press(core.ActionLeft)

	for i := range KeyHoldTicks {
		frame := core.NewInputFrame()
		h.apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left not held", i)
		}
	}

	frame := core.NewInputFrame()
	h.apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("left should expire after KeyHoldTicks")
	}
}

func TestHoldStateOppositeReplaces(t *testing.T) {
	var h holdState
	h.press(core.ActionLeft)
	h.press(core.ActionRight)

	frame := core.NewInputFrame()
	h.apply(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("got %v, expected only Right", frame.Actions)
	}

	h.release()
	frame.Clear()
	h.apply(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("released hold still sets %v", frame.Actions)
	}
}
