package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/game"
)

// KeyHoldTicks is how many ticks a single direction press keeps the paddle
// moving. Terminals report key presses and repeats, never releases.
const KeyHoldTicks = 8

// KeyMap holds the key bindings of every screen. A screen only matches its
// own bindings, so esc cancels supermode while playing and closes help on
// the help screen.
type KeyMap struct {
	Left            key.Binding
	Right           key.Binding
	Supermode       key.Binding
	CancelSupermode key.Binding
	SelectLevel     key.Binding
	NewGame         key.Binding
	Help            key.Binding
	Level           key.Binding
	Confirm         key.Binding
	Dismiss         key.Binding
	Quit            key.Binding
	Close           key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Supermode: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "supermode"),
		),
		CancelSupermode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal speed"),
		),
		SelectLevel: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "levels"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Level: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "choose"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

type binding struct {
	key.Binding
	action core.Action // ActionNone resolves the level digit
}

// bindings returns the bindings active on a screen, in help order.
func (k KeyMap) bindings(state game.State) []binding {
	switch state {
	case game.StatePlaying:
		return []binding{
			{k.Left, core.ActionLeft},
			{k.Right, core.ActionRight},
			{k.Supermode, core.ActionSupermodeOn},
			{k.CancelSupermode, core.ActionSupermodeOff},
			{k.SelectLevel, core.ActionLevelSelect},
			{k.Quit, core.ActionQuit},
		}
	case game.StateGameOver:
		return []binding{
			{k.NewGame, core.ActionNewGame},
			{k.SelectLevel, core.ActionLevelSelect},
			{k.Help, core.ActionHelp},
			{k.Quit, core.ActionQuit},
		}
	case game.StateLevelSelect:
		return []binding{
			{k.Level, core.ActionNone},
			{k.Confirm, core.ActionConfirm},
			{k.Help, core.ActionHelp},
		}
	case game.StateHelp:
		return []binding{
			{k.Confirm, core.ActionConfirm},
			{k.Dismiss, core.ActionDismiss},
		}
	}
	return nil
}

// Action translates a key press to the action it means on the given screen.
func (k KeyMap) Action(msg tea.KeyMsg, state game.State) core.Action {
	if key.Matches(msg, k.Close) {
		return core.ActionClose
	}
	for _, b := range k.bindings(state) {
		if !key.Matches(msg, b.Binding) {
			continue
		}
		if b.action == core.ActionNone {
			return levelAction(msg.String())
		}
		return b.action
	}
	return core.ActionNone
}

func levelAction(s string) core.Action {
	if len(s) != 1 || s[0] < '1' || s[0] > '5' {
		return core.ActionNone
	}
	return core.ActionLevel1 + core.Action(s[0]-'1')
}

// ScreenHelp returns the bindings of a screen for the help line.
func (k KeyMap) ScreenHelp(state game.State) help.KeyMap {
	bs := k.bindings(state)
	keys := make(screenKeys, 0, len(bs)+1)
	for _, b := range bs {
		keys = append(keys, b.Binding)
	}
	return append(keys, k.Close)
}

type screenKeys []key.Binding

func (s screenKeys) ShortHelp() []key.Binding {
	return s
}

func (s screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{s}
}

// holdState latches the last direction pressed for KeyHoldTicks ticks.
type holdState struct {
	dir   core.Action
	ticks int
}

// press starts moving in dir, replacing any opposite direction.
func (h *holdState) press(dir core.Action) {
	h.dir = dir
	h.ticks = KeyHoldTicks
}

func (h *holdState) release() {
	*h = holdState{}
}

// apply sets the latched direction on frame and counts down one tick.
func (h *holdState) apply(frame *core.InputFrame) {
	if h.ticks <= 0 {
		return
	}
	frame.Set(h.dir)
	h.ticks--
}
