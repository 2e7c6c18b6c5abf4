package epidemic

import (
	"fmt"
	"time"

	"contagion/internal/core"
	rng "contagion/pkg/core"
)

// Population owns every agent of a run in one contiguous arena, together
// with the shared tally and the recorded tally history. Agents mutate
// nothing but themselves; their ticks return transitions which the
// population applies to the arena and the tally. Transitions are applied
// immediately after each agent's tick rather than buffered for the whole
// pass, so an agent infected early in a pass already acts infected when
// its own turn comes later in the same pass.
type Population struct {
	cfg   Config
	world core.World

	rng   *rng.RNG
	drift driftFunc

	agents  []Agent
	tally   core.Tally
	history []core.Tally

	view    []core.AgentState
	scratch []Transition
}

// New constructs a population per the configuration: all agents start
// susceptible at uniform random positions, then agent 0 is force-infected
// and moved to the world origin as patient zero.
func New(cfg Config) (*Population, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Population{
		cfg:    cfg,
		world:  core.World{Size: cfg.WorldSize},
		agents: make([]Agent, cfg.Count),
		view:   make([]core.AgentState, cfg.Count),
	}
	p.populate(cfg.Seed)
	return p, nil
}

// populate (re)builds the arena from scratch using the given seed, with 0
// falling back to the configured seed and finally to the wall clock.
func (p *Population) populate(seed int64) {
	if seed == 0 {
		seed = p.cfg.Seed
	}
	if seed == 0 {
		p.rng = rng.NewTimeRNG()
	} else {
		p.rng = rng.NewRNG(seed)
	}
	p.drift = driftFor(p.cfg, p.rng, seed)

	half := p.world.Half()
	for i := range p.agents {
		p.agents[i] = Agent{
			x:       p.rng.Float(-half, half),
			y:       p.rng.Float(-half, half),
			heading: p.rng.Float(-1000, 1000),
			speed:   p.cfg.Speed,
			state:   core.Susceptible,
		}
	}
	p.tally = core.Tally{}
	p.tally[core.Susceptible] = len(p.agents)
	p.history = nil

	p.Infect(0, time.Now())
	p.PlaceAgent(0, 0, 0)
	p.refreshView()
}

// Name returns the scenario identifier.
func (p *Population) Name() string { return p.cfg.Name }

// WorldSize returns the side length of the bounded world.
func (p *Population) WorldSize() float64 { return p.cfg.WorldSize }

// PopulationCount returns the fixed number of agents.
func (p *Population) PopulationCount() int { return len(p.agents) }

// InfectionRadius returns the contagion radius, used by the render
// adapter to size the halo around infected agents.
func (p *Population) InfectionRadius() float64 { return p.cfg.InfectionRadius }

// Config returns the configuration the population was built with.
func (p *Population) Config() Config { return p.cfg }

// Reset rebuilds the run from the provided seed. The history restarts
// empty.
func (p *Population) Reset(seed int64) {
	p.populate(seed)
}

// Tick advances the simulation by one pass over the arena. now is the
// wall-clock time of this tick and stamps any infection that occurs
// during it.
func (p *Population) Tick(now time.Time) {
	env := tickEnv{
		agents: p.agents,
		half:   p.world.Half(),
		now:    now,
		rng:    p.rng,
		cfg:    &p.cfg,
		drift:  p.drift,
	}
	for i := range p.agents {
		p.scratch = p.agents[i].tick(i, &env, p.scratch[:0])
		for _, t := range p.scratch {
			p.apply(t, now)
		}
	}
	p.refreshView()
}

// apply commits one transition to the arena and the tally. A transition
// whose From no longer matches the agent's state is stale and dropped;
// the tally only moves when the state actually changes.
func (p *Population) apply(t Transition, now time.Time) {
	a := &p.agents[t.Agent]
	if a.state != t.From || t.From == t.To {
		return
	}
	a.state = t.To
	if t.To == core.Infected {
		a.infectedAt = now
	}
	p.tally.Apply(t.From, t.To)
}

// Infect force-transitions an agent to Infected and restarts its
// recovery clock. Calling it on an already infected agent only restarts
// the clock; the tally is untouched because the state does not change.
func (p *Population) Infect(i int, now time.Time) {
	a := &p.agents[i]
	p.tally.Apply(a.state, core.Infected)
	a.state = core.Infected
	a.infectedAt = now
}

// PlaceAgent moves an agent to an explicit position, clamped to the
// world bounds.
func (p *Population) PlaceAgent(i int, x, y float64) {
	half := p.world.Half()
	p.agents[i].x = core.Clamp(x, half)
	p.agents[i].y = core.Clamp(y, half)
}

// RecordStats appends a copy of the current tally to the history. The
// driver calls this on a fixed wall-clock cadence, not per tick.
func (p *Population) RecordStats() {
	if !p.cfg.RecordHistory {
		return
	}
	p.history = append(p.history, p.tally)
}

// Tally returns the current per-state counts.
func (p *Population) Tally() core.Tally { return p.tally }

// History returns the recorded tally snapshots, oldest first.
func (p *Population) History() []core.Tally { return p.history }

// Agents returns the render-boundary view of the arena, refreshed on
// every tick. The slice is reused between frames.
func (p *Population) Agents() []core.AgentState { return p.view }

func (p *Population) refreshView() {
	for i := range p.agents {
		p.view[i] = p.agents[i].View()
	}
}

// Parameters exposes the run configuration for the HUD. Display only.
func (p *Population) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "disease",
				Params: []core.Parameter{
					{Key: "radius", Label: "radius", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%g", p.cfg.InfectionRadius)},
					{Key: "chance", Label: "chance", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%g", p.cfg.InfectionChance)},
					{Key: "duration", Label: "duration", Type: core.ParamTypeString, Value: p.cfg.InfectionDuration.String()},
				},
			},
			{
				Name: "world",
				Params: []core.Parameter{
					{Key: "size", Label: "size", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%g", p.cfg.WorldSize)},
					{Key: "count", Label: "count", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", len(p.agents))},
					{Key: "speed", Label: "speed", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%g", p.cfg.Speed)},
					{Key: "wander", Label: "wander", Type: core.ParamTypeString, Value: p.cfg.Wander},
				},
			},
		},
	}
}

func init() {
	core.Register("classic", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(DefaultConfig(), cfg))
	})
	core.Register("village", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(VillageConfig(), cfg))
	})
}
