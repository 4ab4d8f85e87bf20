package game

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Input holds the control flags for a single tick.
type Input struct {
	Left         bool // Move paddle left
	Right        bool // Move paddle right
	SupermodeOn  bool
	SupermodeOff bool
	Quit         bool
	LevelSelect  bool
}

// InputFromFrame extracts the playing controls from an input frame.
func InputFromFrame(in core.InputFrame) Input {
	return Input{
		Left:         in.Has(core.ActionLeft),
		Right:        in.Has(core.ActionRight),
		SupermodeOn:  in.Has(core.ActionSupermodeOn),
		SupermodeOff: in.Has(core.ActionSupermodeOff),
		Quit:         in.Has(core.ActionQuit),
		LevelSelect:  in.Has(core.ActionLevelSelect),
	}
}

// EventKind identifies a side effect emitted by a step.
type EventKind int

const (
	EventBlockDestroyed       EventKind = iota + 1 // A block was removed
	EventBallBounced                               // The velocity changed this tick
	EventGameEnded                                 // Result was set
	EventQuitRequested                             // The player asked to quit
	EventLevelSelectRequested                      // The player asked for the level menu
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBlockDestroyed:
		return "BlockDestroyed"
	case EventBallBounced:
		return "BallBounced"
	case EventGameEnded:
		return "GameEnded"
	case EventQuitRequested:
		return "QuitRequested"
	case EventLevelSelectRequested:
		return "LevelSelectRequested"
	default:
		return "Unknown"
	}
}

// Event is a side effect for the presentation layer.
type Event struct {
	Kind      EventKind
	Block     core.Rect  // BlockDestroyed: the removed block
	Color     core.Color // BlockDestroyed: its color
	Explosion core.Rect  // BlockDestroyed: area to flash for one frame
	Result    Result     // GameEnded: the outcome
}

// StepResult contains the events produced by one tick.
type StepResult struct {
	Events []Event
}

// Has reports whether an event of the given kind was emitted.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Explosions returns the BlockDestroyed events of the tick.
func (r StepResult) Explosions() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == EventBlockDestroyed {
			out = append(out, e)
		}
	}
	return out
}

// Step advances the world by one tick.
//
// The order is fixed: move the ball, reflect off the side and top walls,
// bounce off the paddle, destroy at most one block, then check the floor and
// the win condition. A terminal check ends the tick early. Only a tick that
// runs to completion reports a bounce and applies the controls.
// Once a result is set, Step does nothing.
func (w *World) Step(in Input) StepResult {
	var res StepResult
	if w.Over() {
		return res
	}
	w.tick++

	oldDX, oldDY := w.DX, w.DY

	w.moveBall()
	w.collideWalls()
	w.collidePaddle()
	if e, ok := w.collideBlocks(); ok {
		res.Events = append(res.Events, e)
	}

	if w.Ball.Bottom() > w.cfg.Window.Height {
		if w.Supermode {
			w.DY = -1
			return res
		}
		w.DY = -w.DY
		w.Result = ResultLose
		res.Events = append(res.Events, Event{Kind: EventGameEnded, Result: w.Result})
		return res
	}
	if len(w.Blocks) == 0 {
		w.Result = ResultWin
		res.Events = append(res.Events, Event{Kind: EventGameEnded, Result: w.Result})
		return res
	}

	if w.DX != oldDX || w.DY != oldDY {
		res.Events = append(res.Events, Event{Kind: EventBallBounced})
	}

	w.applyInput(in, &res)
	return res
}

// moveBall integrates the ball position, truncating toward zero.
func (w *World) moveBall() {
	speed := float64(w.cfg.Ball.Speed)
	if w.Supermode {
		speed *= SupermodeFactor
	}
	w.Ball.X = int(float64(w.Ball.X) + speed*w.DX)
	w.Ball.Y = int(float64(w.Ball.Y) + speed*w.DY)
}

// collideWalls reflects off the side and top walls using the ball center.
func (w *World) collideWalls() {
	r := w.cfg.Ball.Radius
	if cx := w.Ball.CenterX(); cx < r || cx > w.cfg.Window.Width-r {
		w.DX = -w.DX
	}
	if w.Ball.CenterY() < r {
		w.DY = -w.DY
	}
}

// collidePaddle bounces off the paddle at a random angle, keeping the
// horizontal direction the resolver picked. Only a falling ball bounces.
func (w *World) collidePaddle() {
	if !w.Ball.Intersects(w.Paddle) || w.DY <= 0 {
		return
	}
	w.DX, w.DY = ResolveBounce(w.DX, w.DY, w.Ball, w.Paddle)

	delta := float64(w.rng.Range(2, 6))
	sign := 1.0
	if w.DX < 0 {
		sign = -1
	}
	w.DX = math.Cos(math.Pi/delta) * sign
	w.DY = -math.Sin(math.Pi / delta)
}

// collideBlocks removes the first block the ball overlaps.
func (w *World) collideBlocks() (Event, bool) {
	i := w.Ball.IntersectsAny(w.Blocks)
	if i < 0 {
		return Event{}, false
	}

	block, color := w.Blocks[i], w.Colors[i]
	w.Blocks = append(w.Blocks[:i], w.Blocks[i+1:]...)
	w.Colors = append(w.Colors[:i], w.Colors[i+1:]...)

	w.DX, w.DY = ResolveBounce(w.DX, w.DY, w.Ball, block)

	if w.FPS < MaxFPS {
		w.FPS += FPSStep
	}

	return Event{
		Kind:      EventBlockDestroyed,
		Block:     block,
		Color:     color,
		Explosion: block.Inflate(w.Ball.W*ExplosionScale, w.Ball.H*ExplosionScale),
	}, true
}

// applyInput moves the paddle, toggles supermode and forwards requests.
func (w *World) applyInput(in Input, res *StepResult) {
	maxX := w.cfg.Window.Width - w.Paddle.W
	if in.Left {
		w.Paddle.X = core.Clamp(w.Paddle.X-w.cfg.Paddle.Speed, 0, maxX)
	}
	if in.Right {
		w.Paddle.X = core.Clamp(w.Paddle.X+w.cfg.Paddle.Speed, 0, maxX)
	}
	if in.SupermodeOn {
		w.Supermode = true
	}
	if in.SupermodeOff {
		w.Supermode = false
	}
	if in.Quit {
		res.Events = append(res.Events, Event{Kind: EventQuitRequested})
	}
	if in.LevelSelect {
		res.Events = append(res.Events, Event{Kind: EventLevelSelectRequested})
	}
}
