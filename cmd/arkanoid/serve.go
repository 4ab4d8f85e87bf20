package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Arkanoid SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game starting on the level menu.
Remote sessions play without sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arkanoid/host_key

Examples:
  arkanoid serve                           # Listen on :23234 with auto-generated key
  arkanoid serve --ssh :2222               # Listen on port 2222
  arkanoid serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(os.Stderr)
	if err != nil {
		return err
	}
	defer e.Close()

	levels, err := e.loadLevels()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Levels:      levels,
	}
	if name := e.settings.Game.StartLevel; name != "" {
		if cfg.StartLevel, err = config.ParseGameLevel(name); err != nil {
			return err
		}
	}

	server, err := tui.NewSSHServer(cfg, e.logger.WithPrefix("arkanoid-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Starting Arkanoid SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
