package epidemic

import (
	"github.com/aquilax/go-perlin"

	rng "contagion/pkg/core"
)

// headingJitter bounds the per-tick heading change in radians.
const headingJitter = 0.2

// Perlin field shape. The spatial scale stretches the noise so that
// nearby agents drift coherently instead of flickering.
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinDepth = 3
	perlinScale = 1.0 / 600.0
)

// driftFunc produces the per-tick heading change for one agent.
type driftFunc func(a *Agent) float64

// uniformDrift is the classic model: independent jitter per agent per tick.
func uniformDrift(r *rng.RNG) driftFunc {
	return func(*Agent) float64 {
		return r.Float(-headingJitter, headingJitter)
	}
}

// perlinDrift samples a fixed noise field at the agent's position, so the
// drift varies smoothly across the world.
func perlinDrift(seed int64) driftFunc {
	field := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, seed)
	return func(a *Agent) float64 {
		return field.Noise2D(a.x*perlinScale, a.y*perlinScale) * headingJitter
	}
}

// driftFor selects the drift mode from the configuration.
func driftFor(cfg Config, r *rng.RNG, seed int64) driftFunc {
	if cfg.Wander == WanderPerlin {
		return perlinDrift(seed)
	}
	return uniformDrift(r)
}
