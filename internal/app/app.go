//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"contagion/internal/core"
	"contagion/internal/render"
	"contagion/internal/ui"
)

const (
	speedLimitStep = 20
	minSpeedLimit  = 20

	chartMargin = 8
)

// Game adapts a core simulation to the ebiten.Game interface. It runs
// exactly one simulation tick per update, samples the history on a
// wall-clock cadence, and feeds the HUD and painters.
type Game struct {
	sim     core.Sim
	painter *render.AgentPainter
	hud     *ui.HUD

	sample      *core.Interval
	sampleEvery time.Duration

	chart     *ebiten.Image
	showChart bool

	window     int
	seed       int64
	epoch      int
	speedLimit int
	paused     bool
	tickOnce   bool

	lastTick time.Time
	stats    ui.FrameStats
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, window, tps int, seed int64, sampleEvery time.Duration) *Game {
	return &Game{
		sim:         sim,
		painter:     render.NewAgentPainter(sim.WorldSize(), float64(window), sim.InfectionRadius()),
		hud:         ui.NewHUD(sim),
		sample:      core.NewInterval(sampleEvery),
		sampleEvery: sampleEvery,
		showChart:   true,
		window:      window,
		seed:        seed,
		speedLimit:  tps,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.sample = core.NewInterval(g.sampleEvery)
	g.chart = nil
	g.epoch = 0
	g.tickOnce = false
	g.lastTick = time.Time{}
	g.stats = ui.FrameStats{SpeedLimit: g.speedLimit}
}

// Update handles input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showChart = !g.showChart
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.setSpeedLimit(g.speedLimit + speedLimitStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.setSpeedLimit(g.speedLimit - speedLimitStep)
	}

	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false

	now := time.Now()
	elapsed := time.Duration(0)
	if !g.lastTick.IsZero() {
		elapsed = now.Sub(g.lastTick)
	}
	g.lastTick = now

	g.sim.Tick(now)
	g.epoch++

	if g.sample.Ready(now) {
		g.sim.RecordStats()
		g.rebuildChart()
	}

	rate, ok := core.TicksPerSecond(elapsed)
	g.stats = ui.FrameStats{
		TickRate:   rate,
		TickMillis: float64(elapsed) / float64(time.Millisecond),
		RateOK:     ok,
		Epoch:      g.epoch,
		SpeedLimit: g.speedLimit,
	}
	return nil
}

// Draw renders the world, the history chart and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Draw(screen, g.sim.Agents())
	if g.showChart && g.chart != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(chartMargin, float64(g.window-g.chart.Bounds().Dy()-chartMargin))
		screen.DrawImage(g.chart, op)
	}
	g.hud.Draw(screen, g.stats)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window, g.window
}

func (g *Game) setSpeedLimit(limit int) {
	if limit < minSpeedLimit {
		limit = minSpeedLimit
	}
	g.speedLimit = limit
	ebiten.SetTPS(limit)
}

func (g *Game) rebuildChart() {
	img, err := render.HistoryChart(g.sim.History(), g.sim.PopulationCount())
	if err != nil {
		log.Printf("history chart: %v", err)
		return
	}
	if img != nil {
		g.chart = ebiten.NewImageFromImage(img)
	}
}
