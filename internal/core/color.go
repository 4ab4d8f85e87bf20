package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell.
// The zero value with Set == false means "terminal default".
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB creates a color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Predefined colors for game elements.
var (
	ColorDefault    = Color{}
	ColorWhite      = RGB(255, 255, 255)
	ColorRed        = RGB(255, 0, 0)
	ColorDarkOrange = RGB(255, 140, 0)
	ColorOrange     = RGB(255, 165, 0)
	ColorBlack      = RGB(0, 0, 0)
	ColorGray       = RGB(138, 138, 138)
)

// Hex returns the color as "#rrggbb", or "" for the terminal default.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes c toward other by alpha (0 keeps c, 255 yields other).
// Unset colors are treated as black.
func (c Color) Blend(other Color, alpha uint8) Color {
	mix := func(a, b uint8) uint8 {
		return uint8((int(a)*(255-int(alpha)) + int(b)*int(alpha)) / 255)
	}
	return RGB(mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B))
}
