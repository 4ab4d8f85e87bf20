package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the levels",
	Long: `Shows the five levels with their window, paddle, ball and block grid
sizes, after applying level files from --levels-dir, ~/.arkanoid/levels
and ./levels.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv(os.Stderr)
	if err != nil {
		return err
	}
	defer e.Close()

	levels, err := e.loadLevels()
	if err != nil {
		return err
	}

	printLevels(cmd.OutOrStdout(), levels)
	return nil
}

// printLevels writes the level table in menu order.
func printLevels(w io.Writer, levels map[config.GameLevel]config.Level) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Level", "Window", "Paddle", "Ball", "Blocks")

	for _, id := range config.AllLevels() {
		l, ok := levels[id]
		if !ok {
			continue
		}
		t.Row(
			strconv.Itoa(int(id)),
			id.String(),
			fmt.Sprintf("%dx%d", l.Window.Width, l.Window.Height),
			fmt.Sprintf("%dx%d speed %d", l.Paddle.Width, l.Paddle.Height, l.Paddle.Speed),
			fmt.Sprintf("r%d speed %d", l.Ball.Radius, l.Ball.Speed),
			fmt.Sprintf("%dx%d (%d)", l.Block.N, l.Block.M, l.Block.Count()),
		)
	}

	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arkanoid play --level <name>' to start on a level.")
}
