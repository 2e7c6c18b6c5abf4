package render

import (
	"testing"

	"contagion/internal/core"
)

func TestCameraTransform(t *testing.T) {
	cam := Camera{WorldSize: 100, Viewport: 200}
	if cam.Scale() != 2 {
		t.Fatalf("scale = %g, want 2", cam.Scale())
	}
	if x, y := cam.ToScreen(0, 0); x != 100 || y != 100 {
		t.Fatalf("origin maps to (%g, %g), want viewport center", x, y)
	}
	if x, y := cam.ToScreen(-50, -50); x != 0 || y != 0 {
		t.Fatalf("world corner maps to (%g, %g), want (0, 0)", x, y)
	}
	if x, y := cam.ToScreen(50, 50); x != 200 || y != 200 {
		t.Fatalf("world corner maps to (%g, %g), want (200, 200)", x, y)
	}
}

func TestStateColor(t *testing.T) {
	if StateColor(core.Susceptible) != Palette[core.Susceptible] {
		t.Fatal("susceptible color mismatch")
	}
	if StateColor(core.HealthState(42)) != Palette[core.Removed] {
		t.Fatal("out-of-range state must fall back to the removed color")
	}
}

func TestHistoryChartNeedsTwoSamples(t *testing.T) {
	if img, err := HistoryChart(nil, 10); img != nil || err != nil {
		t.Fatalf("empty history: img=%v err=%v", img, err)
	}
	one := []core.Tally{{9, 1, 0}}
	if img, err := HistoryChart(one, 10); img != nil || err != nil {
		t.Fatalf("single sample: img=%v err=%v", img, err)
	}
	two := []core.Tally{{9, 1, 0}, {8, 2, 0}}
	if img, err := HistoryChart(two, 0); img != nil || err != nil {
		t.Fatalf("zero population: img=%v err=%v", img, err)
	}
}

func TestHistoryChartDimensions(t *testing.T) {
	history := make([]core.Tally, 30)
	for i := range history {
		infected := i / 3
		history[i] = core.Tally{10 - infected, infected, 0}
	}

	img, err := HistoryChart(history, 10)
	if err != nil {
		t.Fatalf("HistoryChart: %v", err)
	}
	if img == nil {
		t.Fatal("expected an image")
	}
	bounds := img.Bounds()
	if bounds.Dx() != SampleWidth*len(history) || bounds.Dy() != ChartHeight {
		t.Fatalf("chart is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), SampleWidth*len(history), ChartHeight)
	}
}

func TestHistoryChartMinimumWidth(t *testing.T) {
	history := []core.Tally{{9, 1, 0}, {8, 2, 0}}
	img, err := HistoryChart(history, 10)
	if err != nil {
		t.Fatalf("HistoryChart: %v", err)
	}
	if img.Bounds().Dx() != minChartWidth {
		t.Fatalf("width = %d, want the %dpx floor", img.Bounds().Dx(), minChartWidth)
	}
}
