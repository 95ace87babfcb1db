package stone

import (
	"sort"

	"goban-parser/pkg/geometry"
)

// FilterBySize estimates the characteristic stone dimensions as the
// median blob width and height, then keeps only blobs whose dimensions
// fall strictly inside the acceptance window around those medians.
// Extraction order is preserved. The returned stone size is the mean of
// the two medians and seeds the lattice spacing estimate downstream.
//
// The median is a robust size estimate here: in a late-game photograph
// stones dominate the dark-pixel mass, so lettering, shadows and board
// edges land outside the window.
func FilterBySize(blobs []geometry.RectInt) (stoneSize float64, accepted []geometry.RectInt) {
	if len(blobs) == 0 {
		return 0, nil
	}

	widths := make([]int, len(blobs))
	heights := make([]int, len(blobs))
	for i, b := range blobs {
		widths[i] = b.Width()
		heights[i] = b.Height()
	}
	wMed := float64(medianInt(widths))
	hMed := float64(medianInt(heights))

	for _, b := range blobs {
		w, h := float64(b.Width()), float64(b.Height())
		if sizeWindowLo*wMed < w && w < sizeWindowHi*wMed &&
			sizeWindowLo*hMed < h && h < sizeWindowHi*hMed {
			accepted = append(accepted, b)
		}
	}

	return (wMed + hMed) / 2, accepted
}

// medianInt sorts a copy and indexes at len/2, so even-length inputs
// take the upper of the two middle elements.
func medianInt(values []int) int {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}
