package app

import (
	"flag"
	"testing"
	"time"
)

func TestBindDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-scenario", "village", "-window", "800", "-sample", "500ms"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scenario != "village" || cfg.Window != 800 || cfg.Sample != 500*time.Millisecond {
		t.Fatalf("flags not bound: %+v", cfg)
	}
	if cfg.TPS != 60 || cfg.Seed != 0 {
		t.Fatalf("defaults clobbered: %+v", cfg)
	}
}

func TestOverrides(t *testing.T) {
	cfg := NewConfig()
	cfg.Set = "count=10, chance=0.5,,bad, =5"
	cfg.Seed = 99

	m := cfg.Overrides()
	if m["count"] != "10" || m["chance"] != "0.5" {
		t.Fatalf("overrides = %v", m)
	}
	if m["seed"] != "99" {
		t.Fatalf("seed not propagated: %v", m)
	}
	if len(m) != 3 {
		t.Fatalf("malformed pairs leaked: %v", m)
	}
}

func TestOverridesEmpty(t *testing.T) {
	cfg := NewConfig()
	if m := cfg.Overrides(); len(m) != 0 {
		t.Fatalf("expected no overrides, got %v", m)
	}
}
