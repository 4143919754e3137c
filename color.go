package raytracer

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple. Internally it rides on colorful.Color's
// float64 [0,1] channels so every op (modulate, saturating add/sub, scalar
// scale) is a plain float op followed by Clamped(), rather than hand-rolled
// per-channel clamping logic.
type Color struct {
	c colorful.Color
}

// NewColor builds a Color from 8-bit channels.
func NewColor(r, g, b uint8) Color {
	return Color{c: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}}
}

// Gray builds a neutral gray Color from a single 8-bit level.
func Gray(level uint8) Color {
	return NewColor(level, level, level)
}

var (
	White = NewColor(255, 255, 255)
	Black = NewColor(0, 0, 0)

	// SkyColor is the scene's default background.
	SkyColor = NewColor(50, 120, 170)

	// DefaultAmbient is the scene's default ambient light color.
	DefaultAmbient = Gray(127)
)

// RGB8 quantizes the Color back down to 8-bit channels, clamping to [0,1]
// first so out-of-gamut intermediate sums saturate rather than wrap.
func (c Color) RGB8() (r, g, b uint8) {
	clamped := c.c.Clamped()
	return quantize(clamped.R), quantize(clamped.G), quantize(clamped.B)
}

func quantize(channel float64) uint8 {
	v := math32.Round(float32(channel) * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Mul modulates two colors componentwise in [0,1] space, clamped back.
func (c Color) Mul(o Color) Color {
	return Color{c: colorful.Color{
		R: c.c.R * o.c.R,
		G: c.c.G * o.c.G,
		B: c.c.B * o.c.B,
	}.Clamped()}
}

// MulScalar scales each channel by s, clamped back to [0,1].
func (c Color) MulScalar(s float32) Color {
	return Color{c: colorful.Color{
		R: c.c.R * float64(s),
		G: c.c.G * float64(s),
		B: c.c.B * float64(s),
	}.Clamped()}
}

// Add is a saturating per-channel sum.
func (c Color) Add(o Color) Color {
	return Color{c: colorful.Color{
		R: c.c.R + o.c.R,
		G: c.c.G + o.c.G,
		B: c.c.B + o.c.B,
	}.Clamped()}
}

// Sub is a saturating per-channel difference.
func (c Color) Sub(o Color) Color {
	return Color{c: colorful.Color{
		R: c.c.R - o.c.R,
		G: c.c.G - o.c.G,
		B: c.c.B - o.c.B,
	}.Clamped()}
}
