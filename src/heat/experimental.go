package heat

import (
	"math"
	"sort"
)

// experimentalPoints is the reference table the curve is compared against (0–300 K).
var experimentalPoints = []Sample{
	{0, 1.5},
	{50, 1.5},
	{75, 1.57},
	{100, 1.67},
	{125, 1.83},
	{150, 2.0},
	{175, 2.13},
	{200, 2.22},
	{225, 2.29},
	{250, 2.35},
	{275, 2.39},
	{300, 2.42},
}

// ExperimentalPoints returns a copy of the experimental table in ascending temperature order.
func ExperimentalPoints() []Sample {
	out := make([]Sample, len(experimentalPoints))
	copy(out, experimentalPoints)
	return out
}

// Residual is the model-minus-measurement difference at one experimental temperature.
type Residual struct {
	Temperature float64
	Measured    float64
	Model       float64
	Delta       float64
}

// Residuals evaluates p at every point and returns model minus measured values.
func Residuals(p Params, points []Sample) []Residual {
	out := make([]Residual, 0, len(points))
	for _, pt := range points {
		m := p.SpecificHeat(pt.Temperature)
		out = append(out, Residual{
			Temperature: pt.Temperature,
			Measured:    pt.SpecificHeat,
			Model:       m,
			Delta:       m - pt.SpecificHeat,
		})
	}
	return out
}

// RMS returns the root mean square of the residual deltas (0 for an empty slice).
func RMS(rs []Residual) float64 {
	if len(rs) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rs {
		sum += r.Delta * r.Delta
	}
	return math.Sqrt(sum / float64(len(rs)))
}

// Nearest returns the sample whose temperature is closest to t. samples must be sorted
// by ascending temperature. Ties resolve to the lower temperature.
func Nearest(samples []Sample, t float64) (Sample, bool) {
	if len(samples) == 0 || math.IsNaN(t) {
		return Sample{}, false
	}
	i := sort.Search(len(samples), func(i int) bool { return samples[i].Temperature >= t })
	switch {
	case i == 0:
		return samples[0], true
	case i == len(samples):
		return samples[len(samples)-1], true
	}
	lo, hi := samples[i-1], samples[i]
	if t-lo.Temperature <= hi.Temperature-t {
		return lo, true
	}
	return hi, true
}
