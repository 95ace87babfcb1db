package lattice

import (
	"goban-parser/pkg/geometry"
)

// SampleDistances records horizontal and vertical pixel separations for
// a bounded set of stone pairs. Centers must be in extraction order
// (row-major over the photograph), which the pairing exploits:
//
//   - (i, i+1) is a likely near-neighbor on the same row,
//   - (i, N-1-i) likely spans most of the board,
//   - (i, i+N/2) for i < N/2 is a mid-span reference.
//
// Each pair contributes |dx| and |dy| independently, and only when the
// separation exceeds stoneSize. Row-aligned pairs therefore contribute
// no vertical sample and column-aligned pairs no horizontal one, which
// keeps near-zero separations from dragging the spacing estimate down.
func SampleDistances(centers []geometry.PointInt, stoneSize float64) []float64 {
	n := len(centers)
	var samples []float64

	record := func(a, b geometry.PointInt) {
		dx := float64(absInt(a.X - b.X))
		dy := float64(absInt(a.Y - b.Y))
		if dx > stoneSize {
			samples = append(samples, dx)
		}
		if dy > stoneSize {
			samples = append(samples, dy)
		}
	}

	for i := 0; i < n-2; i++ {
		record(centers[i], centers[i+1])
		record(centers[i], centers[n-1-i])
		if i < n/2 {
			record(centers[i], centers[i+n/2])
		}
	}

	return samples
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
