//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"contagion/internal/app"
	"contagion/internal/core"
	_ "contagion/internal/sims/epidemic"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Scenario]
	if !ok {
		log.Fatalf("unknown scenario %q", cfg.Scenario)
	}

	sim, err := factory(cfg.Overrides())
	if err != nil {
		log.Fatalf("create scenario %q: %v", cfg.Scenario, err)
	}
	log.Printf("created simulation with %d agents", sim.PopulationCount())

	game := app.New(sim, cfg.Window, cfg.TPS, cfg.Seed, cfg.Sample)

	ebiten.SetWindowTitle("contagion — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Window, cfg.Window)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
