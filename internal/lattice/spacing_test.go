package lattice

import (
	"testing"

	"go.viam.com/test"
)

func TestEstimateSpacingExactGrid(t *testing.T) {
	samples := make([]float64, 9)
	for i := range samples {
		samples[i] = 30
	}

	spacing := EstimateSpacing(samples, 27, DefaultParams())

	test.That(t, spacing, test.ShouldEqual, 30.0)
}

func TestEstimateSpacingMultiSpan(t *testing.T) {
	// distances spanning 1..10 grid units with bounded jitter
	offsets := []float64{3, -3, 5, -5, 2, -2, 4, -4, 0, 0}
	samples := make([]float64, len(offsets))
	for i, off := range offsets {
		samples[i] = float64(i+1)*50 + off
	}

	for _, initial := range []float64{47, 50} {
		spacing := EstimateSpacing(samples, initial, DefaultParams())
		test.That(t, spacing, test.ShouldBeBetween, 49.0, 51.0)
	}
}

func TestEstimateSpacingIterationCap(t *testing.T) {
	// a single sample two units wide: the first update lands on the
	// fixed point, so one iteration is all the cap needs to allow
	spacing := EstimateSpacing([]float64{30}, 20, Params{MaxIterations: 1})
	test.That(t, spacing, test.ShouldEqual, 15.0)

	// a zero cap returns the initial estimate untouched
	spacing = EstimateSpacing([]float64{30}, 20, Params{})
	test.That(t, spacing, test.ShouldEqual, 20.0)
}
