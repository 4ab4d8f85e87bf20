package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings holds user preferences read from ~/.arkanoid/settings.toml.
type Settings struct {
	Audio AudioSettings `toml:"audio"`
	Game  GameSettings  `toml:"game"`
	Log   LogSettings   `toml:"log"`
}

// AudioSettings configures the two sound cues.
type AudioSettings struct {
	Enabled         bool    `toml:"enabled"`
	Volume          float64 `toml:"volume"`           // Linear gain, 1 is unchanged
	BrickHit        string  `toml:"brick_hit"`        // .wav or .mp3; synthesized if missing
	BackgroundMusic string  `toml:"background_music"` // .wav or .mp3; synthesized if missing
}

// GameSettings configures level lookup and the first screen.
type GameSettings struct {
	LevelsDir  string `toml:"levels_dir"`
	StartLevel string `toml:"start_level"` // Empty opens the level menu
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Empty discards logs while the TUI runs
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Audio: AudioSettings{
			Enabled:         true,
			Volume:          1,
			BrickHit:        "sounds/brick_hit.wav",
			BackgroundMusic: "sounds/background_music.mp3",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// DefaultSettingsPath returns ~/.arkanoid/settings.toml, or empty if home is unavailable.
func DefaultSettingsPath() string {
	return userConfigPath("settings.toml")
}

// LoadSettings reads settings from path on top of the defaults.
// A missing file yields the defaults; a malformed file is an error.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("settings %s: unknown key %q", path, undecoded[0].String())
	}

	if cfg.Audio.Volume < 0 {
		return cfg, fmt.Errorf("settings %s: audio.volume must not be negative", path)
	}
	if cfg.Game.StartLevel != "" {
		if _, err := ParseGameLevel(cfg.Game.StartLevel); err != nil {
			return cfg, fmt.Errorf("settings %s: game.start_level: %w", path, err)
		}
	}
	return cfg, nil
}
