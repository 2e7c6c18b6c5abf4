//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"contagion/internal/core"
)

// agentRadius is the drawn body radius of one agent, in world units.
const agentRadius = 20

// AgentPainter draws the population onto the screen: a filled circle per
// agent in its state color, with infected agents wrapped in a translucent
// halo spanning the contagion radius.
type AgentPainter struct {
	cam  Camera
	halo float64
}

// NewAgentPainter constructs a painter for the given world, viewport and
// infection radius.
func NewAgentPainter(worldSize, viewport, infectionRadius float64) *AgentPainter {
	return &AgentPainter{
		cam:  Camera{WorldSize: worldSize, Viewport: viewport},
		halo: infectionRadius,
	}
}

// Draw paints every agent. Halos go down first so bodies stay readable
// in dense clusters.
func (ap *AgentPainter) Draw(dst *ebiten.Image, agents []core.AgentState) {
	scale := ap.cam.Scale()

	for _, a := range agents {
		if a.State != core.Infected {
			continue
		}
		x, y := ap.cam.ToScreen(a.X, a.Y)
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(ap.halo*scale), HaloColor, true)
	}

	for _, a := range agents {
		x, y := ap.cam.ToScreen(a.X, a.Y)
		r := float32(agentRadius * scale)
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), r, StateColor(a.State), true)
	}
}
