package core

import "time"

// HealthState enumerates the compartments of the SIR model.
type HealthState uint8

const (
	// Susceptible agents can catch the infection from nearby carriers.
	Susceptible HealthState = iota
	// Infected agents transmit the infection and eventually recover.
	Infected
	// Removed agents have recovered and take no further part. Terminal.
	Removed

	stateCount
)

// String returns the lowercase compartment name.
func (s HealthState) String() string {
	switch s {
	case Susceptible:
		return "susceptible"
	case Infected:
		return "infected"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// Tally counts agents per health state. It always sums to the population
// size of the simulation that owns it.
type Tally [stateCount]int

// Apply moves one agent from one bucket to another. Equal states are a
// no-op so that restarting an infection clock cannot corrupt the counts.
func (t *Tally) Apply(from, to HealthState) {
	if from == to {
		return
	}
	t[from]--
	t[to]++
}

// Total returns the sum over all buckets.
func (t Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// AgentState is the render-boundary view of a single agent.
type AgentState struct {
	X, Y  float64
	State HealthState
}

// Sim defines the contract an agent simulation must implement for the
// driver and render adapter.
type Sim interface {
	Name() string
	WorldSize() float64
	PopulationCount() int
	InfectionRadius() float64
	Reset(seed int64)
	Tick(now time.Time)
	Agents() []AgentState
	Tally() Tally
	History() []Tally
	RecordStats()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available scenario factories.
func Sims() map[string]Factory {
	return sims
}
