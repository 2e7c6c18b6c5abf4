//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"contagion/internal/core"
	"contagion/internal/render"
)

const (
	hudMarginX = 8
	hudLine    = 14
)

var (
	hudText = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	hudDim  = color.RGBA{R: 140, G: 140, B: 140, A: 255}
)

// HUD renders the text overlay: tick-rate readout, epoch, speed limit,
// the live tally, the eradication banner and the run configuration.
type HUD struct {
	sim  core.Sim
	face font.Face
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, face: basicfont.Face7x13}
}

// Draw paints the overlay in the top-left corner of the screen.
func (h *HUD) Draw(screen *ebiten.Image, fs FrameStats) {
	y := hudLine

	if fs.RateOK {
		h.line(screen, y, fmt.Sprintf("%.1f tps  %.2f mspt", fs.TickRate, fs.TickMillis), hudText)
	} else {
		h.line(screen, y, "rate unavailable", hudDim)
	}
	y += hudLine
	h.line(screen, y, fmt.Sprintf("epoch %d", fs.Epoch), hudText)
	y += hudLine
	h.line(screen, y, fmt.Sprintf("speed limit %d", fs.SpeedLimit), hudText)
	y += hudLine

	tally := h.sim.Tally()
	for _, s := range []core.HealthState{core.Susceptible, core.Infected, core.Removed} {
		h.line(screen, y, fmt.Sprintf("%s: %d", s, tally[s]), render.StateColor(s))
		y += hudLine
	}

	if tally[core.Infected] == 0 {
		h.line(screen, y, "ERADICATED", render.EradicatedColor)
		y += hudLine
	}

	if provider, ok := h.sim.(core.ParameterProvider); ok {
		y += hudLine / 2
		for _, group := range provider.Parameters().Groups {
			h.line(screen, y, group.Name, hudDim)
			y += hudLine
			for _, param := range group.Params {
				h.line(screen, y, fmt.Sprintf("  %s %s", param.Label, param.Value), hudDim)
				y += hudLine
			}
		}
	}
}

func (h *HUD) line(screen *ebiten.Image, y int, s string, col color.Color) {
	text.Draw(screen, s, h.face, hudMarginX, y, col)
}
