package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/game"
)

// HelpRows is the number of rows below the game reserved for key help.
const HelpRows = 1

// Options configures a Model.
type Options struct {
	Width    int                // Initial terminal size
	Height   int                // Initial terminal size
	Player   audio.Player       // nil plays nothing
	Renderer *lipgloss.Renderer // nil uses stdout's renderer
	Logger   *log.Logger
}

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	session   *game.Session
	scene     *game.Renderer
	backdrops *Backdrops
	screen    *core.Screen
	painter   *Painter
	keys      KeyMap
	help      help.Model
	player    audio.Player
	frame     core.InputFrame
	hold      holdState
	fx        []game.Event // Events of the last tick, drawn once
	quitting  bool
}

// NewModel creates a model driving session.
func NewModel(session *game.Session, opts Options) Model {
	if opts.Player == nil {
		opts.Player = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		session:   session,
		scene:     &game.Renderer{},
		backdrops: NewBackdrops(opts.Logger),
		screen:    core.NewScreen(opts.Width, max(opts.Height-HelpRows, 0)),
		painter:   NewPainter(opts.Renderer),
		keys:      DefaultKeyMap(),
		help:      h,
		player:    opts.Player,
		frame:     core.NewInputFrame(),
	}
}

// Init starts the music and the tick loop.
func (m Model) Init() tea.Cmd {
	m.player.StartMusic()
	return tickCmd(m.session.FPS())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, max(msg.Height-HelpRows, 0))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action of a key press for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch action := m.keys.Action(msg, m.session.State()); action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.hold.press(action)
	default:
		m.frame.Set(action)
	}
	return m
}

// handleTick advances the session by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.State() == game.StatePlaying {
		m.hold.apply(&m.frame)
	} else {
		m.hold.release()
	}

	res := m.session.Update(m.frame)
	m.frame.Clear()

	if res.Has(game.EventBallBounced) {
		m.player.Hit()
	}
	m.fx = res.Explosions()

	if m.session.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.session.FPS())
}

// View renders the session and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Backdrop = m.backdrops.For(m.session.World().Level())
	m.scene.Render(m.screen, m.session, m.fx)

	return m.painter.Paint(m.screen) + "\n" + m.help.View(m.keys.ScreenHelp(m.session.State()))
}

// Run plays session in the terminal until the player quits.
func Run(session *game.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
