package game

import "math"

// Snapshot contains the complete world state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	PaddleX   int
	BallX     int
	BallY     int
	DX        uint64 // IEEE 754 bits
	DY        uint64 // IEEE 754 bits
	Supermode bool
	FPS       int
	Result    int

	// Remaining blocks, 3 ints each: X, Y, packed RGB
	BlockCount int
	BlockData  []int

	RNGState uint64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	blockData := make([]int, 0, len(w.Blocks)*3)
	for i, b := range w.Blocks {
		c := w.Colors[i]
		rgb := int(c.R)<<16 | int(c.G)<<8 | int(c.B)
		blockData = append(blockData, b.X, b.Y, rgb)
	}

	return Snapshot{
		Tick:       uint64(w.tick), //#nosec G115 -- tick count is always positive
		PaddleX:    w.Paddle.X,
		BallX:      w.Ball.X,
		BallY:      w.Ball.Y,
		DX:         math.Float64bits(w.DX),
		DY:         math.Float64bits(w.DY),
		Supermode:  w.Supermode,
		FPS:        w.FPS,
		Result:     int(w.Result),
		BlockCount: len(w.Blocks),
		BlockData:  blockData,
		RNGState:   w.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)   //#nosec G115 -- hash computation
	h = h*31 + snap.DX
	h = h*31 + snap.DY
	if snap.Supermode {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.FPS)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Result)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
