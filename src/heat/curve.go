// Package heat models the molar specific heat ratio C/R of hydrogen gas as a smooth
// sigmoid between the translational plateau (3/2) and a fitted upper value.
//
// The curve parameters and the experimental table are fixed literals; nothing here
// fits or adjusts them at runtime.
package heat

import (
	"errors"
	"math"
)

// BaseValue is the low-temperature plateau of C/R (translational degrees of freedom only).
const BaseValue = 1.5

// Fixed sampling domain used by the chart.
const (
	RangeStart = 0.0
	RangeEnd   = 300.0
	RangeStep  = 1.0
)

var (
	ErrZeroWidth    = errors.New("heat: width must be non-zero")
	ErrNonFinite    = errors.New("heat: parameters must be finite")
	ErrInvalidStep  = errors.New("heat: step must be positive and finite")
	ErrInvalidRange = errors.New("heat: end must not be before start")

	ErrTooManySamples = errors.New("heat: range holds too many samples")
)

// MaxSamples caps a single sampling call.
const MaxSamples = 1 << 20

// Params parameterizes the sigmoid transform.
type Params struct {
	Midpoint  float64 // K, where the curve is halfway between BaseValue and MaxValue
	Width     float64 // K, normalization of the temperature offset; must be non-zero
	Steepness float64
	MaxValue  float64 // high-temperature asymptote of C/R
}

// DefaultParams are the hand-tuned constants the chart uses.
var DefaultParams = Params{
	Midpoint:  150,
	Width:     120,
	Steepness: 3.5,
	MaxValue:  2.42,
}

// Sample is one (temperature, C/R) pair.
type Sample struct {
	Temperature  float64 `json:"temperature"`
	SpecificHeat float64 `json:"specific_heat"`
}

// Validate reports parameter sets the transform cannot evaluate meaningfully.
func (p Params) Validate() error {
	for _, v := range []float64{p.Midpoint, p.Width, p.Steepness, p.MaxValue} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	if p.Width == 0 {
		return ErrZeroWidth
	}
	return nil
}

// SpecificHeat evaluates C/R at temperature t (kelvin). Total over all real t:
// for large |z| math.Exp saturates and the result settles on BaseValue or MaxValue.
// Requires p.Width != 0.
func (p Params) SpecificHeat(t float64) float64 {
	z := (t - p.Midpoint) / p.Width
	s := 1 / (1 + math.Exp(-z*p.Steepness))
	return BaseValue + (p.MaxValue-BaseValue)*s
}

// SpecificHeat evaluates the default curve at t.
func SpecificHeat(t float64) float64 { return DefaultParams.SpecificHeat(t) }

// SampleCurve evaluates the curve at start, start+step, ... up to end (inclusive when
// end-start is a multiple of step). Temperatures are computed as start+i*step so the
// last sample does not drift from accumulated rounding.
func (p Params) SampleCurve(start, end, step float64) ([]Sample, error) {
	n, err := sampleCount(start, end, step)
	if err != nil {
		return nil, err
	}
	out := make([]Sample, n)
	for i := range out {
		t := start + float64(i)*step
		out[i] = Sample{Temperature: t, SpecificHeat: p.SpecificHeat(t)}
	}
	return out, nil
}

// SampleCurve samples the default curve.
func SampleCurve(start, end, step float64) ([]Sample, error) {
	return DefaultParams.SampleCurve(start, end, step)
}

// Curve returns the fixed 0..300 K unit-step sampling of the default curve (301 samples).
func Curve() []Sample {
	s, _ := DefaultParams.SampleCurve(RangeStart, RangeEnd, RangeStep)
	return s
}

// sampleCount returns how many grid points start+i*step fall within [start, end].
func sampleCount(start, end, step float64) (int, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return 0, ErrInvalidStep
	}
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return 0, ErrInvalidRange
	}
	if end < start {
		return 0, ErrInvalidRange
	}
	q := (end - start) / step
	if math.IsNaN(q) || math.IsInf(q, 0) || q >= MaxSamples {
		return 0, ErrTooManySamples
	}
	// tolerance keeps exact multiples (e.g. 0.1 steps) from losing the endpoint
	steps := math.Floor(q + 1e-9)
	if steps+1 > MaxSamples {
		return 0, ErrTooManySamples
	}
	return int(steps) + 1, nil
}
