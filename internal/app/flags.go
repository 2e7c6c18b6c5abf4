package app

import (
	"flag"
	"strconv"
	"strings"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scenario string
	Window   int
	TPS      int
	Seed     int64
	Sample   time.Duration
	Set      string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scenario: "classic",
		Window:   1000,
		TPS:      60,
		Sample:   250 * time.Millisecond,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "scenario to run")
	fs.IntVar(&c.Window, "window", c.Window, "window size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "initial speed limit in ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "simulation seed, 0 for time-based")
	fs.DurationVar(&c.Sample, "sample", c.Sample, "history sampling interval")
	fs.StringVar(&c.Set, "set", c.Set, "comma-separated key=value scenario overrides")
}

// Overrides turns the -set flag and the seed into the key/value map the
// scenario factories consume.
func (c *Config) Overrides() map[string]string {
	m := map[string]string{}
	for _, pair := range strings.Split(c.Set, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}
		m[key] = value
	}
	if c.Seed != 0 {
		m["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return m
}
