package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// State is the current screen of a session.
type State int

const (
	StateLevelSelect State = iota // Level menu, the first screen
	StatePlaying                  // World advancing every tick
	StateGameOver                 // Result dialog over the frozen world
	StateHelp                     // Rules dialog
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLevelSelect:
		return "LevelSelect"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Session drives the screens around the simulation. It owns the current
// world and switches state on the discrete actions of each frame.
type Session struct {
	levels   map[config.GameLevel]config.Level
	level    config.GameLevel // Level of the current world
	selected config.GameLevel // Highlighted menu entry, LevelNone if unset
	state    State
	world    *World
	seed     int64
	games    int64
	done     bool
	logger   *log.Logger
}

// NewSession creates a session on the level menu. The world for the first
// level is built up front so the game over dialog and the frame rate always
// have a world to refer to.
func NewSession(levels map[config.GameLevel]config.Level, seed int64, logger *log.Logger) (*Session, error) {
	for _, l := range config.AllLevels() {
		if _, ok := levels[l]; !ok {
			return nil, fmt.Errorf("level %s is not loaded", l)
		}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		levels: levels,
		level:  config.Velocity,
		state:  StateLevelSelect,
		seed:   seed,
		logger: logger,
	}
	s.world = s.newWorld(s.level)
	return s, nil
}

// State returns the current screen.
func (s *Session) State() State {
	return s.state
}

// World returns the current world.
func (s *Session) World() *World {
	return s.world
}

// Level returns the level of the current world.
func (s *Session) Level() config.GameLevel {
	return s.level
}

// Selected returns the highlighted level in the menu, or LevelNone.
func (s *Session) Selected() config.GameLevel {
	return s.selected
}

// Done reports whether the player has quit.
func (s *Session) Done() bool {
	return s.done
}

// FPS returns the tick rate the frame loop should run at.
func (s *Session) FPS() int {
	return s.world.FPS
}

// Start begins a game on level directly, skipping the menu.
func (s *Session) Start(level config.GameLevel) error {
	if _, ok := s.levels[level]; !ok {
		return fmt.Errorf("level %s is not loaded", level)
	}
	s.startGame(level)
	return nil
}

// Update processes one frame of input. The returned events come from the
// world step and are empty outside of play.
func (s *Session) Update(in core.InputFrame) StepResult {
	if s.done {
		return StepResult{}
	}
	if in.Has(core.ActionClose) {
		s.quit()
		return StepResult{}
	}

	switch s.state {
	case StatePlaying:
		return s.updatePlaying(in)
	case StateGameOver:
		s.updateGameOver(in)
	case StateLevelSelect:
		s.updateLevelSelect(in)
	case StateHelp:
		s.updateHelp(in)
	}
	return StepResult{}
}

func (s *Session) updatePlaying(in core.InputFrame) StepResult {
	res := s.world.Step(InputFromFrame(in))
	for _, e := range res.Events {
		switch e.Kind {
		case EventGameEnded:
			s.logger.Debug("game ended", "level", s.level, "result", e.Result, "tick", s.world.Tick())
			s.setState(StateGameOver)
		case EventQuitRequested:
			s.quit()
		case EventLevelSelectRequested:
			s.setState(StateLevelSelect)
		}
	}
	return res
}

func (s *Session) updateGameOver(in core.InputFrame) {
	if in.Has(core.ActionNewGame) {
		s.startGame(s.level)
		return
	}
	if in.Has(core.ActionQuit) {
		s.quit()
		return
	}
	if in.Has(core.ActionLevelSelect) {
		s.setState(StateLevelSelect)
	}
	if in.Has(core.ActionHelp) {
		s.setState(StateHelp)
	}
}

func (s *Session) updateLevelSelect(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionLevel1, core.ActionLevel2, core.ActionLevel3, core.ActionLevel4, core.ActionLevel5} {
		if !in.Has(a) {
			continue
		}
		if l, ok := config.LevelByNumber(a.LevelNumber()); ok {
			s.selected = l
		}
	}
	if in.Has(core.ActionConfirm) && s.selected != config.LevelNone {
		s.startGame(s.selected)
		return
	}
	if in.Has(core.ActionHelp) {
		s.setState(StateHelp)
	}
}

// updateHelp always returns to the level menu, whichever screen opened help.
func (s *Session) updateHelp(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionDismiss) {
		s.setState(StateLevelSelect)
	}
}

// startGame builds a fresh world for level and starts playing it.
func (s *Session) startGame(level config.GameLevel) {
	s.level = level
	s.selected = config.LevelNone
	s.world = s.newWorld(level)
	s.logger.Debug("starting game", "level", level, "game", s.games)
	s.setState(StatePlaying)
}

// newWorld builds a world with a seed unique to this game.
func (s *Session) newWorld(level config.GameLevel) *World {
	w := NewWorld(s.levels[level], s.seed+s.games)
	s.games++
	return w
}

func (s *Session) setState(state State) {
	if state != s.state {
		s.logger.Debug("state change", "from", s.state, "to", state)
	}
	s.state = state
}

func (s *Session) quit() {
	s.logger.Debug("quit requested", "state", s.state)
	s.done = true
}
