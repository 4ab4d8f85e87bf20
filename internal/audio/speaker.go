package audio

import (
	"errors"
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

// Speaker plays sounds through the system audio device.
type Speaker struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	hit     *beep.Buffer  // nil plays the synthesized hit
	music   beep.Streamer // Looping background track
	closer  io.Closer     // Open music file, if any
	ctrl    *beep.Ctrl    // Set once music starts
	volume  float64
	logger  *log.Logger
	running bool
}

// NewSpeaker opens the audio device and prepares both sounds. Sound files
// that are missing fall back to synthesized ones; files that exist but fail
// to decode are logged and also fall back.
func NewSpeaker(cfg config.AudioSettings, logger *log.Logger) (*Speaker, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		logger: logger,
	}

	if cfg.BrickHit != "" {
		buf, err := loadBuffer(cfg.BrickHit)
		switch {
		case err == nil:
			s.hit = buf
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("hit sound not found, using synthesized", "path", cfg.BrickHit)
		default:
			logger.Warn("failed to load hit sound", "path", cfg.BrickHit, "err", err)
		}
	}

	s.music = withVolume(NewMusicGenerator(sampleRate), s.volume)
	if cfg.BackgroundMusic != "" {
		stream, format, err := decodeFile(cfg.BackgroundMusic)
		switch {
		case err == nil:
			s.music = withVolume(resample(beep.Loop(-1, stream), format.SampleRate), s.volume)
			s.closer = stream
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("music not found, using synthesized", "path", cfg.BackgroundMusic)
		default:
			logger.Warn("failed to load music", "path", cfg.BackgroundMusic, "err", err)
		}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		if s.closer != nil {
			_ = s.closer.Close()
		}
		return nil, err
	}
	speaker.Play(s.mixer)
	s.running = true
	return s, nil
}

// Hit plays the bounce sound once.
func (s *Speaker) Hit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	var streamer beep.Streamer
	if s.hit != nil {
		streamer = s.hit.Streamer(0, s.hit.Len())
	} else {
		streamer = beep.Take(sampleRate.N(hitDuration), NewHitGenerator(sampleRate))
	}

	speaker.Lock()
	s.mixer.Add(withVolume(streamer, s.volume))
	speaker.Unlock()
}

// StartMusic starts the looping background track once.
func (s *Speaker) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.ctrl != nil {
		return
	}

	s.ctrl = &beep.Ctrl{Streamer: s.music}
	speaker.Lock()
	s.mixer.Add(s.ctrl)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	speaker.Lock()
	if s.ctrl != nil {
		s.ctrl.Paused = true
	}
	s.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	if s.closer != nil {
		_ = s.closer.Close()
	}
}
