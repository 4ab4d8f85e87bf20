// Package game implements the Arkanoid simulation: the world built from a
// level config, the per-tick step with its collision rules, the session
// state machine around it, and a renderer into a core.Screen.
package game

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Pacing and effect constants.
const (
	InitialFPS      = 60  // Tick rate at the start of a game
	MaxFPS          = 100 // Tick rate never exceeds this
	FPSStep         = 2   // Tick rate gain per destroyed block
	SupermodeFactor = 8   // Ball speed multiplier in supermode
	ExplosionScale  = 3   // Explosion grows by this many ball sizes per axis
)

// Result is the terminal outcome of a game.
type Result int

const (
	ResultNone Result = iota // Still playing
	ResultWin                // All blocks cleared
	ResultLose               // Ball passed the floor outside supermode
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "None"
	case ResultWin:
		return "Win"
	case ResultLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// World is the live simulation state of one playthrough.
// It is built fresh for every game and owned by a single goroutine.
type World struct {
	Paddle    core.Rect
	Ball      core.Rect // Square collision box of the ball
	DX, DY    float64   // Direction; speed is a separate multiplier
	Supermode bool
	Blocks    []core.Rect
	Colors    []core.Color // Lockstep with Blocks
	FPS       int
	Result    Result

	cfg  config.Level
	rng  *RNG
	tick int
}

// NewWorld builds the initial world for a level. The seed drives block
// colors and paddle bounce angles.
func NewWorld(cfg config.Level, seed int64) *World {
	rng := NewRNG(seed)
	return &World{
		Paddle: NewPaddle(cfg),
		Ball:   NewBall(cfg),
		DX:     math.Cos(math.Pi / 6),
		DY:     -math.Sin(math.Pi / 6),
		Blocks: NewBlocks(cfg),
		Colors: NewColors(cfg, rng),
		FPS:    InitialFPS,
		cfg:    cfg,
		rng:    rng,
	}
}

// Level returns the config the world was built from.
func (w *World) Level() config.Level {
	return w.cfg
}

// Tick returns the number of steps simulated so far.
func (w *World) Tick() int {
	return w.tick
}

// Over reports whether the game has reached a terminal outcome.
func (w *World) Over() bool {
	return w.Result != ResultNone
}

// BlocksLeft returns the number of blocks still standing.
func (w *World) BlocksLeft() int {
	return len(w.Blocks)
}
