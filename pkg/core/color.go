package core

import (
	"image/color"
	"math"
)

// Color is a linear RGB triple with no upper bound.
// Nothing is clamped until the final conversion to 8-bit channels.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the background color
var Black = Color{}

// Scale multiplies every channel by s
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul modulates c by other, channel by channel
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// IsBlack reports whether every channel is exactly zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// ToChannel converts a linear value to an 8-bit channel.
// The value is clamped to [0, 1], scaled by 255 and truncated; NaN maps to 0.
func ToChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Pixel converts the color to an opaque 8-bit pixel
func (c Color) Pixel() color.RGBA {
	return color.RGBA{
		R: ToChannel(c.R),
		G: ToChannel(c.G),
		B: ToChannel(c.B),
		A: 255,
	}
}
