package epidemic

import (
	"fmt"
	"strconv"
	"time"
)

// Wander modes for per-tick heading drift.
const (
	// WanderUniform draws heading jitter uniformly from [-0.2, 0.2).
	WanderUniform = "uniform"
	// WanderPerlin derives heading drift from a Perlin noise field sampled
	// at the agent's position, giving smoother flow-like motion.
	WanderPerlin = "perlin"
)

// Config controls a single epidemic run. Values are fixed once the
// population is constructed.
type Config struct {
	Name string

	Count     int
	WorldSize float64

	Speed             float64
	InfectionRadius   float64
	InfectionChance   float64
	InfectionDuration time.Duration

	Wander string

	RecordHistory bool
	SampleEvery   time.Duration

	// Seed 0 means seed from the wall clock.
	Seed int64
}

// DefaultConfig returns the classic scenario: the large sparse world.
func DefaultConfig() Config {
	return Config{
		Name:              "classic",
		Count:             2500,
		WorldSize:         8000,
		Speed:             4,
		InfectionRadius:   80,
		InfectionChance:   0.01,
		InfectionDuration: 5 * time.Second,
		Wander:            WanderUniform,
		RecordHistory:     true,
		SampleEvery:       250 * time.Millisecond,
	}
}

// VillageConfig returns a small dense scenario where the outbreak burns
// through the whole population quickly.
func VillageConfig() Config {
	c := DefaultConfig()
	c.Name = "village"
	c.Count = 400
	c.WorldSize = 2000
	return c
}

// Validate reports configuration that cannot produce a well-formed
// population. Called before any simulation state is allocated.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("epidemic: population count must be positive, got %d", c.Count)
	}
	if c.WorldSize <= 0 {
		return fmt.Errorf("epidemic: world size must be positive, got %g", c.WorldSize)
	}
	return nil
}

// FromMap overlays flag-style key/value pairs onto a base configuration.
// Unknown keys and unparseable values are ignored.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Count = parsed
		}
	}
	if v, ok := cfg["world"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.WorldSize = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.InfectionRadius = parsed
		}
	}
	if v, ok := cfg["chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.InfectionChance = parsed
		}
	}
	if v, ok := cfg["duration"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.InfectionDuration = time.Duration(parsed * float64(time.Second))
		}
	}
	if v, ok := cfg["wander"]; ok {
		if v == WanderUniform || v == WanderPerlin {
			c.Wander = v
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RecordHistory = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
