package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

// Geometry maps between data space (K, C/R) and image pixels inside the plot box.
type Geometry struct {
	Plot chart.Box
}

// NewGeometry wraps the plot box captured while rendering.
func NewGeometry(plot chart.Box) Geometry { return Geometry{Plot: plot} }

// Valid reports whether the plot box has a usable area.
func (g Geometry) Valid() bool {
	return g.Plot.Right > g.Plot.Left && g.Plot.Bottom > g.Plot.Top
}

// Contains reports whether the image pixel (x, y) lies inside the plot box.
func (g Geometry) Contains(x, y float64) bool {
	if !g.Valid() {
		return false
	}
	return x >= float64(g.Plot.Left) && x <= float64(g.Plot.Right) &&
		y >= float64(g.Plot.Top) && y <= float64(g.Plot.Bottom)
}

// TemperatureAt converts an image X coordinate into a temperature, clamped to the axis domain.
func (g Geometry) TemperatureAt(x float64) float64 {
	if !g.Valid() {
		return XMin
	}
	f := (x - float64(g.Plot.Left)) / float64(g.Plot.Right-g.Plot.Left)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return XMin + f*(XMax-XMin)
}

// PixelX converts a temperature to an image X coordinate.
func (g Geometry) PixelX(t float64) float64 {
	return float64(g.Plot.Left) + (t-XMin)/(XMax-XMin)*float64(g.Plot.Right-g.Plot.Left)
}

// PixelY converts a C/R value to an image Y coordinate (larger values are higher up).
func (g Geometry) PixelY(v float64) float64 {
	return float64(g.Plot.Bottom) - (v-YMin)/(YMax-YMin)*float64(g.Plot.Bottom-g.Plot.Top)
}
