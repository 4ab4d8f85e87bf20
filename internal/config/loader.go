package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Loader resolves level documents from disk with embedded fallbacks.
// Search order per level: Dir -> ~/.arkanoid/levels -> ./levels -> embedded default.
type Loader struct {
	Dir    string // Custom levels directory, may be empty
	Logger *log.Logger
}

// NewLoader creates a loader for the given custom directory.
func NewLoader(dir string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Dir: dir, Logger: logger}
}

// Load loads and validates the config for a single level.
// A file that exists but fails to parse is an error; it never falls through
// to the next location.
func (l *Loader) Load(level GameLevel) (Level, error) {
	if !level.Valid() {
		return Level{}, fmt.Errorf("unknown level %d", int(level))
	}

	for _, candidate := range l.candidates(level) {
		data, err := os.ReadFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Level{}, fmt.Errorf("failed to read config %s: %w", candidate, err)
		}
		l.Logger.Debug("loading level", "level", level, "path", candidate)
		lvl, err := ParseLevel(candidate, data)
		if err != nil {
			return Level{}, err
		}
		lvl.Name = level.String()
		return lvl, nil
	}

	l.Logger.Debug("loading level", "level", level, "path", "embedded")
	lvl, err := ParseLevel(level.String(), DefaultLevelYAML(level))
	if err != nil {
		return Level{}, fmt.Errorf("embedded default: %w", err)
	}
	return lvl, nil
}

// LoadAll loads every named level, failing on the first invalid one.
func (l *Loader) LoadAll() (map[GameLevel]Level, error) {
	levels := make(map[GameLevel]Level, len(AllLevels()))
	for _, level := range AllLevels() {
		lvl, err := l.Load(level)
		if err != nil {
			return nil, err
		}
		levels[level] = lvl
	}
	return levels, nil
}

// LoadFile parses an arbitrary level document from disk.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseLevel(path, data)
}

// candidates lists the on-disk paths to try for a level, in order.
func (l *Loader) candidates(level GameLevel) []string {
	var paths []string
	if l.Dir != "" {
		paths = append(paths, filepath.Join(l.Dir, level.FileName()))
	}
	if dir := userConfigPath("levels"); dir != "" {
		paths = append(paths, filepath.Join(dir, level.FileName()))
	}
	paths = append(paths, filepath.Join("levels", level.FileName()))
	return paths
}

// userConfigPath returns a path under ~/.arkanoid, or empty if home is unavailable.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", name)
}
