package core

import (
	"testing"
	"time"
)

func TestTallyApply(t *testing.T) {
	var tally Tally
	tally[Susceptible] = 10

	tally.Apply(Susceptible, Infected)
	if tally[Susceptible] != 9 || tally[Infected] != 1 {
		t.Fatalf("tally after S->I = %v", tally)
	}
	tally.Apply(Infected, Removed)
	if tally[Infected] != 0 || tally[Removed] != 1 {
		t.Fatalf("tally after I->R = %v", tally)
	}
	if tally.Total() != 10 {
		t.Fatalf("total = %d, want 10", tally.Total())
	}

	// Same-state applications must be no-ops, otherwise restarting an
	// infection clock would corrupt the counts.
	before := tally
	tally.Apply(Removed, Removed)
	if tally != before {
		t.Fatalf("same-state apply changed tally: %v -> %v", before, tally)
	}
}

func TestHealthStateString(t *testing.T) {
	cases := map[HealthState]string{
		Susceptible:    "susceptible",
		Infected:       "infected",
		Removed:        "removed",
		HealthState(9): "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}

func TestWorldClampAndContains(t *testing.T) {
	w := World{Size: 100}
	if w.Half() != 50 {
		t.Fatalf("half = %g", w.Half())
	}
	if got := Clamp(120, w.Half()); got != 50 {
		t.Fatalf("clamp high = %g", got)
	}
	if got := Clamp(-120, w.Half()); got != -50 {
		t.Fatalf("clamp low = %g", got)
	}
	if got := Clamp(7, w.Half()); got != 7 {
		t.Fatalf("clamp inside = %g", got)
	}
	if !w.Contains(50, -50) {
		t.Fatal("boundary positions are inside the world")
	}
	if w.Contains(50.001, 0) {
		t.Fatal("position past the boundary reported inside")
	}
}

func TestDistSq(t *testing.T) {
	if got := DistSq(0, 0, 3, 4); got != 25 {
		t.Fatalf("DistSq = %g, want 25", got)
	}
	if got := DistSq(-1, -1, -1, -1); got != 0 {
		t.Fatalf("DistSq of identical points = %g", got)
	}
}

func TestIntervalCadence(t *testing.T) {
	const (
		sample = 250 * time.Millisecond
		poll   = 10 * time.Millisecond
		run    = 2 * time.Second
	)
	iv := NewInterval(sample)

	now := time.Unix(0, 0)
	fired := 0
	for elapsed := time.Duration(0); elapsed <= run; elapsed += poll {
		if iv.Ready(now.Add(elapsed)) {
			fired++
		}
	}

	want := int(run / sample)
	if fired < want-1 || fired > want+1 {
		t.Fatalf("fired %d times over %v at %v cadence, want %d +/- 1", fired, run, sample, want)
	}
}

func TestIntervalFirstPollArms(t *testing.T) {
	iv := NewInterval(time.Millisecond)
	if iv.Ready(time.Unix(100, 0)) {
		t.Fatal("interval fired on the arming poll")
	}
	if !iv.Ready(time.Unix(101, 0)) {
		t.Fatal("interval did not fire after the period elapsed")
	}
}

func TestTicksPerSecond(t *testing.T) {
	if _, ok := TicksPerSecond(0); ok {
		t.Fatal("zero elapsed must report no rate")
	}
	if _, ok := TicksPerSecond(-time.Millisecond); ok {
		t.Fatal("negative elapsed must report no rate")
	}
	rate, ok := TicksPerSecond(100 * time.Millisecond)
	if !ok || rate != 10 {
		t.Fatalf("rate = %g ok=%v, want 10 true", rate, ok)
	}
}

func TestRegistry(t *testing.T) {
	called := false
	Register("registry-test", func(cfg map[string]string) (Sim, error) {
		called = true
		return nil, nil
	})
	factory, ok := Sims()["registry-test"]
	if !ok {
		t.Fatal("registered factory not found")
	}
	if _, err := factory(nil); err != nil || !called {
		t.Fatal("factory not invoked")
	}

	Register("", factory)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
}
