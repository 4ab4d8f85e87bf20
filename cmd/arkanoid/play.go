package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/game"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var (
	flagLevel string
	flagSeed  int64
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the level menu, or directly on a level with --level.

Controls:
  Left/Right  - Move the paddle
  Space       - Supermode (eight times faster, the floor bounces the ball)
  Esc         - Normal speed
  S           - Level menu
  Q           - Quit
  1-5, Enter  - Choose a level on the menu
  H           - Rules
  Ctrl+C      - Exit from anywhere

Examples:
  arkanoid play
  arkanoid play --level odyssey
  arkanoid play --level 3 --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevel, "level", "", "Start on this level (name or 1-5), skipping the menu")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs go to a file or nowhere.
	e, err := loadEnv(io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	levels, err := e.loadLevels()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := game.NewSession(levels, seed, e.logger)
	if err != nil {
		return err
	}

	start := e.settings.Game.StartLevel
	if flagLevel != "" {
		start = flagLevel
	}
	if start != "" {
		level, err := config.ParseGameLevel(start)
		if err != nil {
			return err
		}
		if err := session.Start(level); err != nil {
			return err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player := newPlayer(e.settings.Audio, flagMute, e.logger)
	defer player.Close()

	e.logger.Info("starting", "seed", seed, "start", start)
	return tui.Run(session, tui.Options{
		Width:  width,
		Height: height,
		Player: player,
		Logger: e.logger,
	})
}

// newPlayer opens the speaker, or returns a silent player when sound is off
// or no audio device is available.
func newPlayer(cfg config.AudioSettings, mute bool, logger *log.Logger) audio.Player {
	if mute || !cfg.Enabled {
		return audio.Silent{}
	}
	sp, err := audio.NewSpeaker(cfg, logger)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return audio.Silent{}
	}
	return sp
}
