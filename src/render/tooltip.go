package render

import (
	"fmt"
	"strconv"

	"github.com/iafilius/HydrogenSpecificHeat/src/heat"
)

// FormatValue renders a C/R value with two decimals.
func FormatValue(v float64) string { return fmt.Sprintf("%.2f", v) }

// FormatTemperature labels an x-axis value with its unit, e.g. "150 K".
func FormatTemperature(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + " K"
}

// Tooltip is the hover text for one sample.
func Tooltip(s heat.Sample) string {
	return FormatTemperature(s.Temperature) + "\nC/R: " + FormatValue(s.SpecificHeat)
}

// Hover resolves an image-space X coordinate to the nearest sample and its tooltip.
func Hover(g Geometry, samples []heat.Sample, x float64) (heat.Sample, string, bool) {
	if !g.Valid() {
		return heat.Sample{}, "", false
	}
	s, ok := heat.Nearest(samples, g.TemperatureAt(x))
	if !ok {
		return heat.Sample{}, "", false
	}
	return s, Tooltip(s), true
}
