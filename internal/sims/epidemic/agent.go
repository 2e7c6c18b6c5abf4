package epidemic

import (
	"math"
	"time"

	"contagion/internal/core"
	rng "contagion/pkg/core"
)

// Agent is one simulated individual. Agents live in the population's
// arena and never reference each other or the shared tally; everything a
// tick needs arrives through tickEnv, and state changes leave as
// Transition values for the population to apply.
type Agent struct {
	x, y    float64
	heading float64
	speed   float64
	state   core.HealthState

	// infectedAt is the time of the last transition into Infected.
	infectedAt time.Time
}

// Transition records one health-state change produced during a tick:
// either an infected agent converting a susceptible neighbor, or an agent
// recovering.
type Transition struct {
	Agent    int
	From, To core.HealthState
}

// tickEnv carries the per-tick context shared by every agent.
type tickEnv struct {
	agents []Agent
	half   float64
	now    time.Time
	rng    *rng.RNG
	cfg    *Config
	drift  driftFunc
}

// tick advances one agent: drift the heading, move with per-axis
// clamping, infect nearby susceptible neighbors, and recover once the
// infection has run its course. The neighbor scan walks the arena in
// insertion order; earlier agents in the same pass have already had
// their transitions applied, so a freshly infected agent is seen as
// infected by everyone ticked after it.
func (a *Agent) tick(self int, env *tickEnv, out []Transition) []Transition {
	a.heading += env.drift(a)
	a.x = core.Clamp(a.x+math.Sin(a.heading)*a.speed, env.half)
	a.y = core.Clamp(a.y+math.Cos(a.heading)*a.speed, env.half)

	if a.state != core.Infected {
		return out
	}

	radiusSq := env.cfg.InfectionRadius * env.cfg.InfectionRadius
	for i := range env.agents {
		victim := &env.agents[i]
		if victim.state != core.Susceptible {
			continue
		}
		// A fresh trial is drawn per candidate, before the distance test,
		// matching the contact model: most draws are spent on agents that
		// turn out to be far away.
		if env.rng.Trial() >= env.cfg.InfectionChance {
			continue
		}
		if core.DistSq(a.x, a.y, victim.x, victim.y) < radiusSq {
			out = append(out, Transition{Agent: i, From: core.Susceptible, To: core.Infected})
		}
	}

	if env.now.Sub(a.infectedAt) > env.cfg.InfectionDuration {
		out = append(out, Transition{Agent: self, From: core.Infected, To: core.Removed})
	}
	return out
}

// View returns the render-boundary snapshot of this agent.
func (a *Agent) View() core.AgentState {
	return core.AgentState{X: a.x, Y: a.y, State: a.state}
}
