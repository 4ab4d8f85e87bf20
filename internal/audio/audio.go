// Package audio plays the game's two sound cues: a short hit on every
// bounce and a background track that loops for the life of the process.
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// Player receives the sound cues of a session.
type Player interface {
	// Hit plays the bounce sound once.
	Hit()
	// StartMusic starts the background track. Later calls do nothing.
	StartMusic()
	// Close stops all sound and releases the output device.
	Close()
}

// Silent is a Player that makes no sound.
type Silent struct{}

func (Silent) Hit()        {}
func (Silent) StartMusic() {}
func (Silent) Close()      {}
