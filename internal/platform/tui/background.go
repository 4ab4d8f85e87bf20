package tui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/game"
)

// ImageBackdrop is a picture stretched over the game window.
type ImageBackdrop struct {
	img    image.Image
	width  int // Window size in pixels
	height int
}

// LoadBackdrop decodes a PNG or JPEG file to cover a window of the given size.
func LoadBackdrop(path string, width, height int) (*ImageBackdrop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return NewImageBackdrop(img, width, height), nil
}

// NewImageBackdrop stretches img over a window of the given size.
func NewImageBackdrop(img image.Image, width, height int) *ImageBackdrop {
	return &ImageBackdrop{img: img, width: max(width, 1), height: max(height, 1)}
}

// ColorAt samples the picture at window pixel (x, y).
func (b *ImageBackdrop) ColorAt(x, y int) core.Color {
	bounds := b.img.Bounds()
	if bounds.Empty() {
		return core.ColorDefault
	}
	sx := bounds.Min.X + core.Clamp(x, 0, b.width-1)*bounds.Dx()/b.width
	sy := bounds.Min.Y + core.Clamp(y, 0, b.height-1)*bounds.Dy()/b.height
	return toColor(b.img.At(sx, sy))
}

// toColor converts any color to 8-bit RGB, undoing alpha premultiplication.
func toColor(c color.Color) core.Color {
	r, g, bl, a := c.RGBA()
	if a == 0 {
		return core.ColorBlack
	}
	return core.RGB(uint8(r*0xff/a), uint8(g*0xff/a), uint8(bl*0xff/a))
}

// Backdrops loads each level's background image once. A missing or broken
// image is logged and the level falls back to the plain backdrop.
type Backdrops struct {
	cache  map[backdropKey]game.Backdrop
	logger *log.Logger
}

// NewBackdrops creates an empty backdrop cache.
func NewBackdrops(logger *log.Logger) *Backdrops {
	return &Backdrops{
		cache:  make(map[backdropKey]game.Backdrop),
		logger: logger,
	}
}

type backdropKey struct {
	path          string
	width, height int
}

// For returns the backdrop of lvl, or nil for the plain one.
func (b *Backdrops) For(lvl config.Level) game.Backdrop {
	path := lvl.Window.Background
	if path == "" {
		return nil
	}
	k := backdropKey{path, lvl.Window.Width, lvl.Window.Height}
	if bd, ok := b.cache[k]; ok {
		return bd
	}

	img, err := LoadBackdrop(path, lvl.Window.Width, lvl.Window.Height)
	if err != nil {
		switch {
		case b.logger == nil:
		case errors.Is(err, fs.ErrNotExist):
			b.logger.Debug("background image not found, using plain backdrop", "path", path)
		default:
			b.logger.Warn("failed to load background image", "path", path, "err", err)
		}
		b.cache[k] = nil
		return nil
	}
	b.cache[k] = img
	return img
}
