package lattice

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// EstimateSpacing refines an initial guess (the stone size) into the
// pixel distance between adjacent grid lines. Each sampled distance
// spans an unknown integer number of grid units; dividing by the
// nearest-integer count yields a one-unit estimate, and averaging over
// all samples dampens per-stone jitter. Fixed point is declared when an
// update moves the estimate by less than a pixel.
func EstimateSpacing(samples []float64, initial float64, p Params) float64 {
	estimate := initial
	deltas := make([]float64, len(samples))

	for iter := 0; iter < p.MaxIterations; iter++ {
		for i, d := range samples {
			k := math.Max(1, math.Round(d/estimate))
			deltas[i] = d/k - estimate
		}
		shift := stat.Mean(deltas, nil)
		estimate += shift
		if math.Abs(shift) < 1.0 {
			break
		}
	}

	return estimate
}
