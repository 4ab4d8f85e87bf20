package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettingsMissingFile(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultSettings() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := writeSettings(t, `
[audio]
enabled = false
volume = 0.5
brick_hit = "/tmp/hit.wav"

[game]
levels_dir = "/srv/levels"
start_level = "nexus"

[log]
level = "debug"
`)

	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}
	if cfg.Audio.Volume != 0.5 {
		t.Errorf("volume = %v, expected 0.5", cfg.Audio.Volume)
	}
	if cfg.Audio.BrickHit != "/tmp/hit.wav" {
		t.Errorf("brick_hit = %q", cfg.Audio.BrickHit)
	}
	if cfg.Audio.BackgroundMusic != DefaultSettings().Audio.BackgroundMusic {
		t.Errorf("background_music should keep its default, got %q", cfg.Audio.BackgroundMusic)
	}
	if cfg.Game.LevelsDir != "/srv/levels" || cfg.Game.StartLevel != "nexus" {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "[audio\nenabled = true\n"},
		{"wrong type", "[audio]\nenabled = \"yes\"\n"},
		{"unknown key", "[audio]\npitch = 3\n"},
		{"bad start level", "[game]\nstart_level = \"Arcade\"\n"},
		{"negative volume", "[audio]\nvolume = -0.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSettings(writeSettings(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadSettingsEmptyPath(t *testing.T) {
	cfg, err := LoadSettings("")
	if err != nil || cfg != DefaultSettings() {
		t.Errorf("LoadSettings(\"\") = %+v, %v", cfg, err)
	}
}
