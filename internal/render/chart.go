package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"contagion/internal/core"
)

// Chart geometry. Each recorded sample occupies a fixed horizontal span,
// so the chart grows with the history.
const (
	SampleWidth = 10
	ChartHeight = 200

	minChartWidth = 120
)

// HistoryChart renders the recorded tally history as a stacked
// proportional area chart: susceptible at the bottom, infected above it,
// removed filling the rest. It returns nil without error while there are
// fewer than two samples, since no area can be drawn yet.
func HistoryChart(history []core.Tally, population int) (image.Image, error) {
	if len(history) < 2 || population <= 0 {
		return nil, nil
	}

	xs := make([]float64, len(history))
	susceptible := make([]float64, len(history))
	infected := make([]float64, len(history))
	full := make([]float64, len(history))
	for i, t := range history {
		xs[i] = float64(i)
		s := float64(t[core.Susceptible]) / float64(population)
		in := float64(t[core.Infected]) / float64(population)
		susceptible[i] = s
		infected[i] = s + in
		full[i] = 1
	}

	width := SampleWidth * len(history)
	if width < minChartWidth {
		width = minChartWidth
	}

	// Draw order builds the stack: the full-height removed band first,
	// then susceptible+infected over it, then susceptible alone on top.
	graph := chart.Chart{
		Width:  width,
		Height: ChartHeight,
		XAxis:  chart.XAxis{Style: chart.Hidden()},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Background: chart.Style{Padding: chart.Box{IsSet: true}},
		Canvas:     chart.Style{FillColor: drawing.Color{R: 0, G: 0, B: 0, A: 160}},
		Series: []chart.Series{
			areaSeries(xs, full, Palette[core.Removed]),
			areaSeries(xs, infected, Palette[core.Infected]),
			areaSeries(xs, susceptible, Palette[core.Susceptible]),
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func areaSeries(xs, ys []float64, col color.RGBA) chart.Series {
	c := drawing.Color{R: col.R, G: col.G, B: col.B, A: col.A}
	return chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: c,
			StrokeWidth: 1,
			FillColor:   c,
		},
	}
}
