package heat

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Tabulated C/R every 20 K, read off a published hydrogen heat-capacity curve.
// Used only as an optional visual reference next to the sigmoid.
var (
	referenceTemps = []float64{0, 20, 40, 60, 80, 100, 120, 140, 160, 180, 200, 220, 240, 260, 280, 300}
	referenceCR    = []float64{1.50, 1.50, 1.51, 1.53, 1.60, 1.75, 1.95, 2.12, 2.25, 2.33, 2.38, 2.41, 2.44, 2.46, 2.48, 2.49}
)

// ReferencePoints returns the tabulated knots of the reference curve.
func ReferencePoints() []Sample {
	out := make([]Sample, len(referenceTemps))
	for i := range referenceTemps {
		out[i] = Sample{Temperature: referenceTemps[i], SpecificHeat: referenceCR[i]}
	}
	return out
}

// ReferenceCurve samples a not-a-knot cubic spline through the reference knots.
// Temperatures outside 0..300 K are clamped to the end knots by the spline.
func ReferenceCurve(start, end, step float64) ([]Sample, error) {
	n, err := sampleCount(start, end, step)
	if err != nil {
		return nil, err
	}
	var spline interp.NotAKnotCubic
	if err := spline.Fit(referenceTemps, referenceCR); err != nil {
		return nil, fmt.Errorf("fit reference spline: %w", err)
	}
	out := make([]Sample, n)
	for i := range out {
		t := start + float64(i)*step
		out[i] = Sample{Temperature: t, SpecificHeat: spline.Predict(t)}
	}
	return out, nil
}
