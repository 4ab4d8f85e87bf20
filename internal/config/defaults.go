package config

import (
	"embed"
	"path"
)

//go:embed defaults/*.yaml
var defaultLevels embed.FS

// DefaultLevelYAML returns the embedded default document for a level,
// or nil if the level is unknown.
func DefaultLevelYAML(level GameLevel) []byte {
	if !level.Valid() {
		return nil
	}
	data, err := defaultLevels.ReadFile(path.Join("defaults", level.FileName()))
	if err != nil {
		return nil
	}
	return data
}
