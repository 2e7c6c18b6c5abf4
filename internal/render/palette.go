package render

import (
	"image/color"

	"contagion/internal/core"
)

// Palette maps health states to the fixed three-color scheme: blue for
// susceptible, red for infected, gray for removed.
var Palette = [...]color.RGBA{
	core.Susceptible: {R: 66, G: 135, B: 245, A: 255},
	core.Infected:    {R: 235, G: 64, B: 52, A: 255},
	core.Removed:     {R: 80, G: 80, B: 80, A: 255},
}

// HaloColor is the translucent contagion-zone outline around infected
// agents.
var HaloColor = color.RGBA{R: 255, G: 255, B: 255, A: 20}

// EradicatedColor highlights the banner once no infected agents remain.
var EradicatedColor = color.RGBA{R: 0, G: 200, B: 0, A: 255}

// StateColor returns the palette entry for a health state.
func StateColor(s core.HealthState) color.RGBA {
	if int(s) >= len(Palette) {
		return Palette[core.Removed]
	}
	return Palette[s]
}

// Camera maps world coordinates, which span [-size/2, size/2] on both
// axes, onto a square viewport with the origin at its center.
type Camera struct {
	WorldSize float64
	Viewport  float64
}

// Scale returns world-to-screen units.
func (c Camera) Scale() float64 {
	if c.WorldSize <= 0 {
		return 1
	}
	return c.Viewport / c.WorldSize
}

// ToScreen converts a world position to viewport pixels.
func (c Camera) ToScreen(x, y float64) (float64, float64) {
	s := c.Scale()
	return (x + c.WorldSize/2) * s, (y + c.WorldSize/2) * s
}
