// Package render turns the heat curve and the experimental table into a line chart
// using go-chart. It owns axis layout, styling, tooltip text and output encoding;
// the numbers themselves come from package heat.
package render

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/HydrogenSpecificHeat/src/heat"
)

// Axis domains and tick positions of the chart.
const (
	XMin = heat.RangeStart
	XMax = heat.RangeEnd
	YMin = 1.5
	YMax = 2.5
)

var (
	xTickValues = []float64{0, 50, 100, 150, 200, 250, 300}
	yTickValues = []float64{1.5, 2.0, 2.5}
)

// Series names, also shown in the legend.
const (
	SeriesModel        = "Model (sigmoid)"
	SeriesExperimental = "Experimental"
	SeriesReference    = "Reference (spline)"
)

// Default chart size and padding (image pixels).
const (
	DefaultWidth  = 1100
	DefaultHeight = 440
)

var chartPadding = chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}

var (
	colorModel        = drawing.ColorBlack
	colorExperimental = drawing.ColorFromHex("444444")
	colorReference    = drawing.ColorFromHex("2f6fb0")
	colorGrid         = drawing.ColorFromHex("d0d0d0")
)

// Options controls the rendered artifact. The curve itself is not configurable.
type Options struct {
	Width            int
	Height           int
	Title            string
	Caption          string // drawn onto PNG output near the bottom-left; empty for none
	ShowExperimental bool
	ShowReference    bool
}

// DefaultOptions returns the standard chart: model plus experimental points.
func DefaultOptions() Options {
	return Options{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Title:            "Molar specific heat of hydrogen vs temperature",
		ShowExperimental: true,
	}
}

// pointStyle renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: width,
	}
}

func gridStyle() chart.Style {
	return chart.Style{StrokeColor: colorGrid, StrokeWidth: 1}
}

// buildGridLines places a major line at every interior tick. go-chart's generated
// grid alternates major and minor lines, which would drop every other tick.
func buildGridLines(values []float64) []chart.GridLine {
	if len(values) < 3 {
		return nil
	}
	lines := make([]chart.GridLine, 0, len(values)-2)
	for _, v := range values[1 : len(values)-1] {
		lines = append(lines, chart.GridLine{Value: v, Style: gridStyle()})
	}
	return lines
}

// samplesToSeries splits samples into the parallel X/Y slices go-chart wants.
func samplesToSeries(name string, samples []heat.Sample, st chart.Style) chart.ContinuousSeries {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.Temperature
		ys[i] = s.SpecificHeat
	}
	return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: st}
}

func buildTicks(values []float64, format func(float64) string) []chart.Tick {
	ticks := make([]chart.Tick, len(values))
	for i, v := range values {
		ticks[i] = chart.Tick{Value: v, Label: format(v)}
	}
	return ticks
}

func formatXTick(v float64) string { return fmt.Sprintf("%.0f", v) }
func formatYTick(v float64) string { return fmt.Sprintf("%.1f", v) }

// BuildChart assembles the chart definition: model curve, optional experimental points
// and reference spline, fixed axes with gridlines, and a legend.
func BuildChart(opts Options) (chart.Chart, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return chart.Chart{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	series := []chart.Series{
		samplesToSeries(SeriesModel, heat.Curve(), lineStyle(colorModel, 2)),
	}
	if opts.ShowExperimental {
		series = append(series, samplesToSeries(SeriesExperimental, heat.ExperimentalPoints(), pointStyle(colorExperimental)))
	}
	if opts.ShowReference {
		ref, err := heat.ReferenceCurve(heat.RangeStart, heat.RangeEnd, heat.RangeStep)
		if err != nil {
			return chart.Chart{}, fmt.Errorf("reference curve: %w", err)
		}
		series = append(series, samplesToSeries(SeriesReference, ref, lineStyle(colorReference, 1)))
	}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chartPadding},
		XAxis: chart.XAxis{
			Name:           "Temperature (K)",
			Range:          &chart.ContinuousRange{Min: XMin, Max: XMax},
			Ticks:          buildTicks(xTickValues, formatXTick),
			GridLines:      buildGridLines(xTickValues),
			GridMajorStyle: gridStyle(),
			GridMinorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "C/R",
			Range:          &chart.ContinuousRange{Min: YMin, Max: YMax},
			Ticks:          buildTicks(yTickValues, formatYTick),
			GridLines:      buildGridLines(yTickValues),
			GridMajorStyle: gridStyle(),
			GridMinorStyle: gridStyle(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch, nil
}
