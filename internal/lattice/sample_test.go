package lattice

import (
	"testing"

	"go.viam.com/test"

	"goban-parser/pkg/geometry"
)

func TestSampleDistancesPairing(t *testing.T) {
	// three collinear stones: i=0 pairs (0,1), (0,2), and (0,1) again
	// as the mid-span reference
	centers := []geometry.PointInt{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 80, Y: 0}}

	samples := SampleDistances(centers, 5)

	test.That(t, samples, test.ShouldResemble, []float64{40, 80, 40})
}

func TestSampleDistancesSquare(t *testing.T) {
	centers := []geometry.PointInt{
		{X: 10, Y: 10}, {X: 40, Y: 10},
		{X: 10, Y: 40}, {X: 40, Y: 40},
	}

	samples := SampleDistances(centers, 5)

	// every emitted separation in this layout is one grid unit
	test.That(t, len(samples), test.ShouldEqual, 9)
	for _, d := range samples {
		test.That(t, d, test.ShouldEqual, 30.0)
	}
}

func TestSampleDistancesSuppression(t *testing.T) {
	centers := []geometry.PointInt{
		{X: 10, Y: 10}, {X: 40, Y: 10},
		{X: 10, Y: 40}, {X: 40, Y: 40},
	}

	// separations not exceeding the stone size are noise, not geometry
	samples := SampleDistances(centers, 35)

	test.That(t, len(samples), test.ShouldEqual, 0)
}

func TestSampleDistancesAxisSplit(t *testing.T) {
	centers := []geometry.PointInt{{X: 0, Y: 0}, {X: 30, Y: 4}, {X: 60, Y: 8}}

	samples := SampleDistances(centers, 10)

	// vertical separations stay below the stone size and are dropped
	test.That(t, samples, test.ShouldResemble, []float64{30, 60, 30})
}

func TestSampleDistancesTooFewCenters(t *testing.T) {
	centers := []geometry.PointInt{{X: 0, Y: 0}, {X: 50, Y: 0}}
	test.That(t, len(SampleDistances(centers, 5)), test.ShouldEqual, 0)
}
