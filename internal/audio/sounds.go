package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

const hitDuration = 70 * time.Millisecond

// decodeFile opens a .wav or .mp3 file as a seekable stream.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, format, err = wav.Decode(f)
	case ".mp3":
		s, format, err = mp3.Decode(f)
	default:
		err = fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return s, format, nil
}

// loadBuffer decodes a whole file into memory at the output sample rate.
func loadBuffer(path string) (*beep.Buffer, error) {
	s, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	out := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(out)
	buf.Append(resample(s, format.SampleRate))
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio file %s is empty", path)
	}
	return buf, nil
}

func resample(s beep.Streamer, from beep.SampleRate) beep.Streamer {
	if from == sampleRate {
		return s
	}
	return beep.Resample(4, from, sampleRate, s)
}

// withVolume scales a stream linearly; 0 or less mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// HitGenerator synthesizes a short wooden "tock": a falling pitch under a
// fast exponential decay.
type HitGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewHitGenerator creates a hit sound generator.
func NewHitGenerator(sr beep.SampleRate) *HitGenerator {
	return &HitGenerator{sr: sr}
}

func (g *HitGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 60)
		freq := 520 - 2400*t
		sample := 0.4 * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HitGenerator) Err() error {
	return nil
}

// MusicGenerator synthesizes an endless arpeggio over a soft bass line.
type MusicGenerator struct {
	sr       beep.SampleRate
	pos      int
	noteLen  int
	notes    []float64
	bassNote []float64
}

// NewMusicGenerator creates a background music generator.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:       sr,
		noteLen:  sr.N(180 * time.Millisecond),
		notes:    []float64{440, 523.25, 659.25, 783.99, 659.25, 523.25, 392, 493.88},
		bassNote: []float64{110, 110, 98, 87.31},
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := g.pos / g.noteLen
		inNote := float64(g.pos%g.noteLen) / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)

		lead := g.notes[step%len(g.notes)]
		bass := g.bassNote[(step/len(g.notes))%len(g.bassNote)]

		env := math.Exp(-inNote * 6)
		sample := 0.08*env*math.Sin(2*math.Pi*lead*t) + 0.06*math.Sin(2*math.Pi*bass*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
