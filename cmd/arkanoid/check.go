package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate level files",
	Long: `Parses and validates level files, printing every field error.

Without arguments, checks the five levels as the game would load them.
Exits with a non-zero status if any level is invalid.

Examples:
  arkanoid check
  arkanoid check ./levels/Nexus.yaml
  arkanoid check --levels-dir ./my-levels`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(os.Stderr)
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		return checkFiles(out, args)
	}

	loader := config.NewLoader(e.settings.Game.LevelsDir, e.logger)
	failed := 0
	for _, id := range config.AllLevels() {
		_, err := loader.Load(id)
		if !report(out, id.String(), err) {
			failed++
		}
	}
	return checkResult(failed)
}

// checkFiles validates each file and reports the outcome per file.
func checkFiles(w io.Writer, paths []string) error {
	failed := 0
	for _, path := range paths {
		_, err := config.LoadFile(path)
		if !report(w, path, err) {
			failed++
		}
	}
	return checkResult(failed)
}

// report prints the outcome for one level and reports whether it passed.
func report(w io.Writer, name string, err error) bool {
	if err == nil {
		fmt.Fprintf(w, "ok    %s\n", name)
		return true
	}
	fmt.Fprintf(w, "FAIL  %s\n", name)
	for _, e := range flatten(err) {
		fmt.Fprintf(w, "      %v\n", e)
	}
	return false
}

// flatten expands errors joined with errors.Join into their parts.
func flatten(err error) []error {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, flatten(e)...)
	}
	return out
}

func checkResult(failed int) error {
	if failed > 0 {
		return fmt.Errorf("%d level(s) failed validation", failed)
	}
	return nil
}
