// Package config provides YAML-based level configuration loading and the
// TOML user settings for the game.
package config

import (
	"fmt"
	"math"
	"strings"
)

// Level contains the immutable numeric parameters of one playable level.
// It is loaded once per level selection and never mutated during play.
type Level struct {
	Name   string       `yaml:"-"`
	Window WindowConfig `yaml:"window"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Block  BlockConfig  `yaml:"block"`
}

// WindowConfig defines the playfield size in pixels and its backdrop.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // Image file path
}

// PaddleConfig defines the paddle size and per-tick speed.
type PaddleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// BallConfig defines the ball radius and base per-tick speed.
type BallConfig struct {
	Radius int `yaml:"radius"`
	Speed  int `yaml:"speed"`
}

// RectSize returns the side of the square collision box for the ball:
// floor(radius * sqrt(2)). The rendered circle of the given radius is
// inscribed in it with some slack; the oversize is intentional.
func (b BallConfig) RectSize() int {
	return int(float64(b.Radius) * math.Sqrt2)
}

// BlockConfig defines the block grid: padding, block size and n columns by m rows.
type BlockConfig struct {
	PadW   int `yaml:"pad_w"`
	PadH   int `yaml:"pad_h"`
	BlockW int `yaml:"block_w"`
	BlockH int `yaml:"block_h"`
	N      int `yaml:"n"`
	M      int `yaml:"m"`
}

// Count returns the number of blocks in the grid.
func (b BlockConfig) Count() int {
	return b.N * b.M
}

// GameLevel identifies one of the built-in named levels.
type GameLevel int

const (
	LevelNone GameLevel = iota
	Velocity
	Cascade
	Nexus
	Inferno
	Odyssey
)

// levelNames is indexed by GameLevel.
var levelNames = [...]string{"", "Velocity", "Cascade", "Nexus", "Inferno", "Odyssey"}

// AllLevels returns every named level in menu order.
func AllLevels() []GameLevel {
	return []GameLevel{Velocity, Cascade, Nexus, Inferno, Odyssey}
}

// String returns the level name, which is also its config file stem.
func (l GameLevel) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return fmt.Sprintf("GameLevel(%d)", int(l))
}

// Valid reports whether l is one of the named levels.
func (l GameLevel) Valid() bool {
	return l >= Velocity && l <= Odyssey
}

// FileName returns the config file name for the level.
func (l GameLevel) FileName() string {
	return l.String() + ".yaml"
}

// LevelByNumber returns the level for a 1-based menu number.
func LevelByNumber(n int) (GameLevel, bool) {
	l := GameLevel(n)
	return l, l.Valid()
}

// ParseGameLevel resolves a level by case-insensitive name or menu number.
func ParseGameLevel(s string) (GameLevel, error) {
	s = strings.TrimSpace(s)
	for _, l := range AllLevels() {
		if strings.EqualFold(s, l.String()) || s == fmt.Sprint(int(l)) {
			return l, nil
		}
	}
	return LevelNone, fmt.Errorf("unknown level %q (want one of %s)", s, strings.Join(levelNames[1:], ", "))
}
