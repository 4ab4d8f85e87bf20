// arkanoid is a Breakout game for the terminal.
//
// Usage:
//
//	arkanoid                  - Open the level menu and play
//	arkanoid play             - Same, with --level, --seed and --mute
//	arkanoid levels           - Show the five levels and their sizes
//	arkanoid check [file...]  - Validate level files
//	arkanoid serve            - Start SSH server for remote play
//
// Global flags:
//
//	--settings <path>    - Settings file (default: ~/.arkanoid/settings.toml)
//	--levels-dir <dir>   - Directory searched first for level files
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/logging"
)

var (
	// Global flags
	flagSettings  string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break the blocks in your terminal",
	Long: `Arkanoid is a terminal Breakout game. Bounce the ball off the paddle,
clear every block, and do not let the ball reach the floor.

Available commands:
  play     - Play (the default command)
  levels   - Show the level table
  check    - Validate level files
  serve    - Start SSH server for remote play

Examples:
  arkanoid
  arkanoid play --level nexus
  arkanoid check ./levels/*.yaml
  arkanoid serve --ssh :2222`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings file (default ~/.arkanoid/settings.toml)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory searched first for level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}

// env is what every command needs: settings with flags applied, and a logger.
type env struct {
	settings config.Settings
	logger   *log.Logger
	closer   io.Closer
}

// loadEnv reads the settings file and opens the logger. Logs go to the
// configured file, or to fallback when no file is set.
func loadEnv(fallback io.Writer) (*env, error) {
	path := flagSettings
	if path == "" {
		path = config.DefaultSettingsPath()
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}

	if flagLevelsDir != "" {
		settings.Game.LevelsDir = flagLevelsDir
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		settings.Log.File = flagLogFile
	}

	logger, closer, err := logging.Open(logging.Options{
		Level:  settings.Log.Level,
		File:   settings.Log.File,
		Prefix: "arkanoid",
	}, fallback)
	if err != nil {
		return nil, err
	}
	logger.Debug("settings loaded", "path", path)

	return &env{settings: settings, logger: logger, closer: closer}, nil
}

// loadLevels loads and validates all five levels.
func (e *env) loadLevels() (map[config.GameLevel]config.Level, error) {
	return config.NewLoader(e.settings.Game.LevelsDir, e.logger).LoadAll()
}

func (e *env) Close() error {
	return e.closer.Close()
}
