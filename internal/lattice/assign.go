package lattice

import (
	"math"

	"goban-parser/pkg/geometry"
)

// Coord is a signed grid coordinate relative to the reference stone.
type Coord struct {
	Col int8
	Row int8
}

// Placement records where a stone landed and how well it fit the grid.
type Placement struct {
	Center   geometry.PointInt
	FitError float64
}

// Assign snaps stone centers onto integer grid coordinates. The
// reference stone, the one closest to the centroid of all centers, is
// placed at (0,0); every other stone's pixel offset from it is divided
// by spacing and rounded. Stones are dropped when they land outside
// MaxRadius or when their fractional offset deviates too far from the
// grid. When two stones claim the same coordinate the one with the
// lower fit error keeps it.
func Assign(centers []geometry.PointInt, spacing float64, p Params) map[Coord]Placement {
	if len(centers) == 0 {
		return nil
	}

	centroid := geometry.Centroid(centers)
	refIdx := 0
	best := math.MaxFloat64
	for i, c := range centers {
		if d := c.ToFloat().Distance(centroid); d < best {
			best = d
			refIdx = i
		}
	}
	ref := centers[refIdx]

	board := map[Coord]Placement{
		{Col: 0, Row: 0}: {Center: ref, FitError: 0},
	}

	for i, c := range centers {
		if i == refIdx {
			continue
		}

		dx := float64(c.X - ref.X)
		dy := float64(c.Y - ref.Y)
		qx := math.Abs(dx / spacing)
		qy := math.Abs(dy / spacing)
		if qx > p.MaxRadius || qy > p.MaxRadius {
			continue
		}

		fitErr := 1 - math.Abs(0.5-frac(qy)) - math.Abs(0.5-frac(qx))
		if fitErr > p.MaxFitError {
			continue
		}

		coord := Coord{
			Col: int8(sign(dx) * math.Round(qx)),
			Row: int8(sign(dy) * math.Round(qy)),
		}
		if prev, taken := board[coord]; taken && prev.FitError <= fitErr {
			continue
		}
		board[coord] = Placement{Center: c, FitError: fitErr}
	}

	return board
}

func frac(z float64) float64 {
	return z - math.Floor(z)
}

// sign maps zero to +1 so axis-aligned stones land on positive
// coordinates deterministically.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
